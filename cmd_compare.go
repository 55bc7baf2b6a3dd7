package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyver-dev/pyver/pkg/cliutil"
)

func init() {
	var flags struct {
		Strict bool
	}
	cmd := &cobra.Command{
		Use:   "compare [flags] VERSION1 VERSION2",
		Short: "Compare two versions",
		Long: "Compare two versions in the standard ordering, printing \"<\", \"==\", " +
			"or \">\".",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			vers, err := parseInputs(args, flags.Strict)
			if err != nil {
				return err
			}
			var str string
			switch d := vers[0].Compare(vers[1]); {
			case d < 0:
				str = "<"
			case d > 0:
				str = ">"
			default:
				str = "=="
			}
			fmt.Fprintln(cmd.OutOrStdout(), str)
			return nil
		},
	}
	cmd.Flags().BoolVar(&flags.Strict, "strict", false,
		"Error out on non-conforming version strings, instead of treating them as legacy versions")
	argparser.AddCommand(cmd)
}
