package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/transform"

	"github.com/dshills/zhconv"
)

var convertFlags struct {
	conversion string
	output     string
}

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert text through a named configuration",
	Long: `Convert text through a named configuration such as s2t or tw2sp.

Reads the given files in order, or standard input when no files are
named, and writes converted text to standard output or --output. Input
streams through the converter, so file size is not bounded by memory.

Examples:
  # Convert a file, Simplified to Traditional
  zhconv convert -c s2t book.txt

  # Convert stdin
  echo 头发 | zhconv convert -c s2t

  # Taiwan standard with idiom conversion, into a file
  zhconv convert -c s2twp -o out.txt book.txt`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertFlags.conversion, "conversion", "c", "", "configuration name (see: zhconv configs)")
	convertCmd.Flags().StringVarP(&convertFlags.output, "output", "o", "", "output file (default stdout)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	name := convertFlags.conversion
	if name == "" {
		name = toolCfg.DefaultConversion
	}
	if name == "" {
		return fmt.Errorf("no conversion named: use --conversion or set default_conversion in the config file")
	}

	conv, err := newConverter(name)
	if err != nil {
		return fmt.Errorf("building %s: %w", name, err)
	}

	out := io.Writer(os.Stdout)
	var f *os.File
	if convertFlags.output != "" {
		f, err = os.Create(convertFlags.output)
		if err != nil {
			return err
		}
		out = f
	}

	err = convertSources(conv, out, args)
	if f != nil {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func convertSources(conv *zhconv.Converter, w io.Writer, paths []string) error {
	if len(paths) == 0 {
		return convertStream(conv, w, os.Stdin)
	}
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return err
		}
		err = convertStream(conv, w, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func convertStream(conv *zhconv.Converter, w io.Writer, r io.Reader) error {
	_, err := io.Copy(w, transform.NewReader(r, conv.Transformer()))
	return err
}
