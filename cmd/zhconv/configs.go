package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/zhconv"
)

var configsCmd = &cobra.Command{
	Use:   "configs",
	Short: "List built-in configurations",
	Long: `List every built-in configuration with its stage count and
description. Names given here are accepted by convert --conversion.`,
	RunE: runConfigs,
}

func init() {
	rootCmd.AddCommand(configsCmd)
}

func runConfigs(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, name := range zhconv.Builtins() {
		conv, err := newConverter(name)
		if err != nil {
			return fmt.Errorf("building %s: %w", name, err)
		}
		fmt.Fprintf(tw, "%s\t%d stage(s)\t%s\n", name, conv.Stages(), conv.Name())
	}
	return tw.Flush()
}
