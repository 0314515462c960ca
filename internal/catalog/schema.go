package catalog

// fileConfig is the on-disk configuration schema. The field layout matches
// OpenCC config files so existing configurations load unmodified.
type fileConfig struct {
	Name            string      `json:"name"`
	Segmentation    segmenter   `json:"segmentation"`
	ConversionChain []chainLink `json:"conversion_chain"`
}

type segmenter struct {
	Type string  `json:"type"`
	Dict dictRef `json:"dict"`
}

type chainLink struct {
	Dict dictRef `json:"dict"`
}

// dictRef names either a file-backed dictionary ("text", "ocd2", "zcd") or a
// "group" of nested references queried at equal priority.
type dictRef struct {
	Type  string    `json:"type"`
	File  string    `json:"file,omitempty"`
	Dicts []dictRef `json:"dicts,omitempty"`
}
