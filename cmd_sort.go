package main

import (
	"fmt"
	"sort"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/pyver-dev/pyver/pkg/pep440"
)

func init() {
	var flags struct {
		Strict    bool
		Reverse   bool
		Normalize bool
	}
	cmd := &cobra.Command{
		Use:   "sort [flags] [VERSION...]",
		Short: "Sort versions",
		Long: "Sort the given VERSIONs (or each line of stdin, if no VERSIONs are " +
			"given) in the standard ordering, lowest first.  Non-conforming " +
			"version strings sort below all conforming ones.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			strs, err := gatherInputs(cmd, args)
			if err != nil {
				return err
			}
			vers, err := parseInputs(strs, flags.Strict)
			if err != nil {
				return err
			}
			for _, ver := range vers {
				if _, legacy := ver.(pep440.LegacyVersion); legacy {
					dlog.Warnf(ctx, "non-conforming version %q", ver.String())
				}
			}

			sort.SliceStable(vers, func(i, j int) bool {
				if flags.Reverse {
					i, j = j, i
				}
				return vers[i].Compare(vers[j]) < 0
			})

			for _, ver := range vers {
				str := ver.String()
				if !flags.Normalize {
					if mod, ok := ver.(pep440.Version); ok {
						str = mod.Original()
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), str)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&flags.Strict, "strict", false,
		"Error out on non-conforming version strings, instead of treating them as legacy versions")
	cmd.Flags().BoolVarP(&flags.Reverse, "reverse", "r", false,
		"Sort highest first")
	cmd.Flags().BoolVar(&flags.Normalize, "normalize", false,
		"Print normalized forms instead of the versions as given")
	argparser.AddCommand(cmd)
}
