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
		Pre bool
	}
	cmd := &cobra.Command{
		Use:   "check [flags] SPECIFIER [VERSION...]",
		Short: "Check versions against a specifier",
		Long: "Check each VERSION (or each line of stdin, if no VERSIONs are given) " +
			"against SPECIFIER, printing the ones that satisfy it.  The exit " +
			"status is 0 when at least one version satisfies the specifier.",
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

			prereleases := flags.Pre || spec.Prereleases()
			any := false
			for _, ver := range vers {
				if !spec.MatchWith(ver, prereleases) {
					dlog.Debugf(ctx, "rejected %q", ver.String())
					continue
				}
				any = true
				fmt.Fprintln(cmd.OutOrStdout(), ver.String())
			}
			if !any {
				return fmt.Errorf("no version satisfies %q", spec.String())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&flags.Pre, "pre", false,
		"Consider pre-release and developmental-release versions, even if the specifier doesn't name one")
	argparser.AddCommand(cmd)
}
