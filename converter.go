package zhconv

import (
	"io/fs"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/dshills/zhconv/internal/catalog"
	"github.com/dshills/zhconv/internal/data"
	"github.com/dshills/zhconv/internal/pipeline"
	"github.com/dshills/zhconv/internal/segment"
)

// Converter applies one conversion configuration to text. It is immutable
// after construction and safe for concurrent use without locking.
type Converter struct {
	name string
	id   string
	pipe *pipeline.Pipeline
	seg  *segment.MaxMatch
}

// New builds a Converter for a named configuration such as "s2t" or
// "tw2sp". Names resolve against the embedded catalog; Builtins lists
// them. With WithResourceDir, configurations and dictionaries in that
// directory shadow the embedded ones.
func New(config string, opts ...Option) (*Converter, error) {
	o := applyOptions(opts)
	fsys := fs.FS(data.FS)
	if o.resourceDir != "" {
		fsys = catalog.Layered(os.DirFS(o.resourceDir), data.FS)
	}
	return build(fsys, data.ConfigPath(config), o.logger)
}

// NewFromFS builds a Converter from a configuration file in an arbitrary
// filesystem, such as an os.DirFS or an embed.FS holding custom
// dictionaries. Dictionary references resolve relative to the
// configuration file, then against the filesystem root and its dicts
// directory.
func NewFromFS(fsys fs.FS, configFile string, opts ...Option) (*Converter, error) {
	o := applyOptions(opts)
	if o.resourceDir != "" {
		fsys = catalog.Layered(os.DirFS(o.resourceDir), fsys)
	}
	return build(fsys, configFile, o.logger)
}

func build(fsys fs.FS, configPath string, logger *slog.Logger) (*Converter, error) {
	built, err := catalog.Build(fsys, configPath, logger)
	if err != nil {
		return nil, err
	}
	return &Converter{
		name: built.Name,
		id:   uuid.NewString(),
		pipe: built.Pipeline,
		seg:  segment.NewMaxMatch(built.Segmenter),
	}, nil
}

// Convert rewrites text through the conversion chain and returns the
// result. It never fails; text the dictionaries do not cover is returned
// unchanged.
func (c *Converter) Convert(text string) string {
	return c.pipe.Convert(text)
}

// Segment splits text into words using the configuration's segmentation
// dictionary. Runs of text not covered by the dictionary split into
// single-rune segments.
func (c *Converter) Segment(text string) []string {
	return c.seg.Segment(text)
}

// Name returns the configuration's descriptive name, such as
// "Simplified Chinese to Traditional Chinese".
func (c *Converter) Name() string {
	return c.name
}

// ID returns an identifier unique to this Converter instance.
func (c *Converter) ID() string {
	return c.id
}

// Stages returns the number of rewrite passes in the conversion chain.
func (c *Converter) Stages() int {
	return c.pipe.Len()
}
