package data

import (
	"encoding/json"
	"io/fs"
	"slices"
	"testing"
)

func TestNames(t *testing.T) {
	want := []string{
		"hk2s", "hk2t", "jp2t",
		"s2hk", "s2t", "s2tw", "s2twp",
		"t2hk", "t2jp", "t2s", "t2tw",
		"tw2s", "tw2sp", "tw2t",
	}
	got := Names()
	if !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestConfigPath(t *testing.T) {
	if got := ConfigPath("s2t"); got != "configs/s2t.json" {
		t.Errorf("ConfigPath(s2t) = %q", got)
	}
}

func TestEmbeddedConfigsWellFormed(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			raw, err := fs.ReadFile(FS, ConfigPath(name))
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			var cfg struct {
				Name         string `json:"name"`
				Segmentation struct {
					Type string `json:"type"`
				} `json:"segmentation"`
				ConversionChain []json.RawMessage `json:"conversion_chain"`
			}
			if err := json.Unmarshal(raw, &cfg); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if cfg.Name == "" {
				t.Error("name is empty")
			}
			if cfg.Segmentation.Type == "" {
				t.Error("segmentation type is empty")
			}
			if len(cfg.ConversionChain) == 0 {
				t.Error("conversion chain is empty")
			}
		})
	}
}

func TestEmbeddedDictsReferenced(t *testing.T) {
	ents, err := fs.ReadDir(FS, "dicts")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	referenced := make(map[string]bool)
	for _, name := range Names() {
		raw, err := fs.ReadFile(FS, ConfigPath(name))
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		var cfg struct {
			Segmentation struct {
				Dict json.RawMessage `json:"dict"`
			} `json:"segmentation"`
			ConversionChain []struct {
				Dict json.RawMessage `json:"dict"`
			} `json:"conversion_chain"`
		}
		if err := json.Unmarshal(raw, &cfg); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		collectFiles(t, cfg.Segmentation.Dict, referenced)
		for _, link := range cfg.ConversionChain {
			collectFiles(t, link.Dict, referenced)
		}
	}
	for _, e := range ents {
		if !referenced[e.Name()] {
			t.Errorf("embedded dictionary %s is referenced by no configuration", e.Name())
		}
	}
}

func collectFiles(t *testing.T, raw json.RawMessage, out map[string]bool) {
	t.Helper()
	var ref struct {
		File  string            `json:"file"`
		Dicts []json.RawMessage `json:"dicts"`
	}
	if err := json.Unmarshal(raw, &ref); err != nil {
		t.Fatalf("dict ref: %v", err)
	}
	if ref.File != "" {
		out[ref.File] = true
	}
	for _, d := range ref.Dicts {
		collectFiles(t, d, out)
	}
}
