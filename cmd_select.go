package main

import (
	"fmt"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/pyver-dev/pyver/pkg/cliutil"
	"github.com/pyver-dev/pyver/pkg/pep440"
)

func init() {
	var flags struct {
		Pre   bool
		Allow []string
	}
	cmd := &cobra.Command{
		Use:   "select [flags] SPECIFIER [VERSION...]",
		Short: "Select the best version satisfying a specifier",
		Long: "Out of the given VERSIONs (or each line of stdin, if no VERSIONs are " +
			"given), print the highest one that satisfies SPECIFIER.  " +
			"Pre-release and developmental-release versions are chosen only if " +
			"no other version satisfies the specifier, unless --pre is given.",
		Args: cliutil.WrapPositionalArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			spec, err := pep440.ParseSpecifier(args[0])
			if err != nil {
				return err
			}
			strs, err := gatherInputs(cmd, args[1:])
			if err != nil {
				return err
			}
			vers, err := parseInputs(strs, false)
			if err != nil {
				return err
			}

			var behavior pep440.ExclusionBehavior
			if flags.Pre {
				behavior = pep440.AllowAll{}
			} else {
				allowList, err := parseInputs(flags.Allow, true)
				if err != nil {
					return err
				}
				behavior = pep440.ExcludePreReleases{AllowList: allowList}
			}

			best := spec.Select(vers, behavior)
			if best == nil {
				return fmt.Errorf("no version satisfies %q", spec.String())
			}
			if pre, ok := best.(pep440.Version); ok && pre.IsPreRelease() && !flags.Pre {
				dlog.Warnf(ctx, "only a pre-release satisfies %q", spec.String())
			}
			fmt.Fprintln(cmd.OutOrStdout(), best.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&flags.Pre, "pre", false,
		"Consider pre-release and developmental-release versions on equal footing with final releases")
	cmd.Flags().StringSliceVar(&flags.Allow, "allow", nil,
		"Pre-release versions to consider anyway (repeatable), such as ones already installed")
	argparser.AddCommand(cmd)
}
