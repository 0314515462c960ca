package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/dshills/zhconv/internal/dict"
)

var compileFlags struct {
	outputDir string
	watch     bool
}

var compileCmd = &cobra.Command{
	Use:   "compile <dict.txt>...",
	Short: "Precompile text dictionaries",
	Long: `Compile tab-separated dictionary files into the compressed binary form
loaded at engine construction. A compiled dictionary sits beside its text
source with the ` + dict.CompiledExt + ` extension and is preferred while at least as
new as the text.

Examples:
  # Compile dictionaries in place
  zhconv compile dicts/*.txt

  # Compile into a separate directory
  zhconv compile -o build/ dicts/*.txt

  # Keep compiled forms fresh while editing
  zhconv compile --watch dicts/*.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&compileFlags.outputDir, "output-dir", "o", "", "directory for compiled files (default: beside sources)")
	compileCmd.Flags().BoolVarP(&compileFlags.watch, "watch", "w", false, "recompile when source files change")
}

func runCompile(cmd *cobra.Command, args []string) error {
	for _, p := range args {
		if err := compileFile(p); err != nil {
			return err
		}
	}
	if compileFlags.watch {
		return watchAndCompile(args)
	}
	return nil
}

// compiledPath returns where the compiled form of src is written.
func compiledPath(src string) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + dict.CompiledExt
	if compileFlags.outputDir != "" {
		return filepath.Join(compileFlags.outputDir, base)
	}
	return filepath.Join(filepath.Dir(src), base)
}

func compileFile(src string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	compiled, err := dict.CompileText(data)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	dst := compiledPath(src)
	if err := os.WriteFile(dst, compiled, 0o644); err != nil {
		return err
	}
	fmt.Printf("compiled %s -> %s\n", src, dst)
	return nil
}

func watchAndCompile(paths []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// fsnotify watches directories more reliably than files, since many
	// editors replace files on save rather than writing in place.
	sources := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		sources[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for d := range dirs {
		if err := w.Add(d); err != nil {
			return err
		}
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	// Editors produce bursts of events per save; recompile once per
	// quiet period instead.
	const debounce = 200 * time.Millisecond
	pending := make(map[string]bool)
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	fmt.Printf("watching %d files, Ctrl-C to stop\n", len(sources))
	for {
		select {
		case <-sig:
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !sources[abs] {
				continue
			}
			pending[abs] = true
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)

		case <-timer.C:
			for p := range pending {
				if err := compileFile(p); err != nil {
					slog.Error("compile failed", "path", p, "error", err)
				}
				delete(pending, p)
			}
		}
	}
}
