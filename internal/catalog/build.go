package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/dshills/zhconv/internal/dict"
	"github.com/dshills/zhconv/internal/pipeline"
)

// Built is a fully assembled configuration, ready to convert.
type Built struct {
	Name      string
	Pipeline  *pipeline.Pipeline
	Segmenter dict.Matcher
}

// Build loads the configuration at configPath from fsys and assembles its
// pipeline and segmentation dictionary. A nil logger disables load
// diagnostics.
func Build(fsys fs.FS, configPath string, logger *slog.Logger) (*Built, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	raw, err := fs.ReadFile(fsys, configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", configPath, ErrConfigNotFound)
		}
		return nil, fmt.Errorf("reading configuration %s: %w", configPath, err)
	}
	var cfg fileConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", configPath, err, ErrInvalidConfig)
	}

	b := &builder{
		fsys:    fsys,
		baseDir: path.Dir(configPath),
		log:     logger,
		cache:   make(map[string]*dict.Dict),
	}

	seg, err := b.segmenter(cfg.Segmentation)
	if err != nil {
		return nil, fmt.Errorf("%s: segmentation: %w", configPath, err)
	}
	stages := make([]pipeline.Stage, 0, len(cfg.ConversionChain))
	for i, link := range cfg.ConversionChain {
		m, err := b.matcher(link.Dict)
		if err != nil {
			return nil, fmt.Errorf("%s: conversion chain stage %d: %w", configPath, i, err)
		}
		stages = append(stages, pipeline.NewStage(m))
	}

	logger.Debug("built configuration",
		"config", configPath,
		"name", cfg.Name,
		"stages", len(stages),
		"dictionaries", len(b.cache))
	return &Built{
		Name:      cfg.Name,
		Pipeline:  pipeline.New(stages),
		Segmenter: seg,
	}, nil
}

// builder resolves dictionary references for one Build call, loading each
// distinct file once.
type builder struct {
	fsys    fs.FS
	baseDir string
	log     *slog.Logger
	cache   map[string]*dict.Dict
}

func (b *builder) segmenter(s segmenter) (dict.Matcher, error) {
	switch s.Type {
	case "mm", "mmseg":
		return b.matcher(s.Dict)
	case "":
		return nil, fmt.Errorf("missing type: %w", ErrInvalidConfig)
	default:
		return nil, fmt.Errorf("unsupported segmentation type %q: %w", s.Type, ErrInvalidConfig)
	}
}

func (b *builder) matcher(ref dictRef) (dict.Matcher, error) {
	switch ref.Type {
	case "text", "ocd2", "zcd":
		if ref.File == "" {
			return nil, fmt.Errorf("dictionary reference missing file: %w", ErrInvalidConfig)
		}
		return b.load(ref.File)
	case "group":
		if len(ref.Dicts) == 0 {
			return nil, fmt.Errorf("empty dictionary group: %w", ErrInvalidConfig)
		}
		members := make([]dict.Matcher, 0, len(ref.Dicts))
		for _, sub := range ref.Dicts {
			m, err := b.matcher(sub)
			if err != nil {
				return nil, err
			}
			members = append(members, m)
		}
		return dict.NewGroup(members), nil
	case "":
		return nil, fmt.Errorf("dictionary reference missing type: %w", ErrInvalidConfig)
	default:
		return nil, fmt.Errorf("unsupported dictionary type %q: %w", ref.Type, ErrInvalidConfig)
	}
}

// load resolves file against the search paths and builds its dictionary.
func (b *builder) load(file string) (*dict.Dict, error) {
	for _, p := range b.candidates(file) {
		if d, ok := b.cache[p]; ok {
			return d, nil
		}
		entries, found, err := b.loadAt(p)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		d, err := dict.New(entries)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		b.cache[p] = d
		return d, nil
	}
	return nil, fmt.Errorf("dictionary %s: %w", file, ErrDictNotFound)
}

// candidates returns the search paths for a dictionary reference: relative
// to the config file, as given, then under dicts/.
func (b *builder) candidates(file string) []string {
	var out []string
	seen := make(map[string]bool, 3)
	add := func(p string) {
		p = path.Clean(p)
		if p != "" && p != "." && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	if b.baseDir != "" && b.baseDir != "." {
		add(path.Join(b.baseDir, file))
	}
	add(file)
	add(path.Join("dicts", file))
	return out
}

// loadAt reads the dictionary at p, preferring a compiled sibling that is at
// least as new as the text source. found is false when neither form exists
// at this path.
func (b *builder) loadAt(p string) (entries []dict.Entry, found bool, err error) {
	compiled := p
	if !strings.HasSuffix(p, dict.CompiledExt) {
		compiled = strings.TrimSuffix(p, path.Ext(p)) + dict.CompiledExt
	}

	compInfo, compErr := fs.Stat(b.fsys, compiled)
	textInfo, textErr := compInfo, compErr
	if compiled != p {
		textInfo, textErr = fs.Stat(b.fsys, p)
	}

	useCompiled := compErr == nil &&
		(compiled == p || textErr != nil || !compInfo.ModTime().Before(textInfo.ModTime()))
	switch {
	case useCompiled:
		data, err := fs.ReadFile(b.fsys, compiled)
		if err != nil {
			return nil, false, fmt.Errorf("reading %s: %w", compiled, err)
		}
		entries, err := dict.LoadCompiled(data)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", compiled, err)
		}
		b.log.Debug("loaded dictionary", "path", compiled, "entries", len(entries), "compiled", true)
		return entries, true, nil
	case textErr == nil:
		f, err := b.fsys.Open(p)
		if err != nil {
			return nil, false, fmt.Errorf("reading %s: %w", p, err)
		}
		defer f.Close()
		entries, err := dict.ParseText(f)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", p, err)
		}
		b.log.Debug("loaded dictionary", "path", p, "entries", len(entries), "compiled", false)
		return entries, true, nil
	default:
		return nil, false, nil
	}
}
