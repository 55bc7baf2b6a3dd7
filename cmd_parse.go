package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/pyver-dev/pyver/pkg/cliutil"
	"github.com/pyver-dev/pyver/pkg/pep440"
)

type versionReport struct {
	Input      string `json:"input"                yaml:"input"`
	Normalized string `json:"normalized,omitempty" yaml:"normalized,omitempty"`
	Legacy     bool   `json:"legacy,omitempty"     yaml:"legacy,omitempty"`

	Epoch   string   `json:"epoch,omitempty"   yaml:"epoch,omitempty"`
	Release []string `json:"release,omitempty" yaml:"release,omitempty"`
	Pre     string   `json:"pre,omitempty"     yaml:"pre,omitempty"`
	Post    string   `json:"post,omitempty"    yaml:"post,omitempty"`
	Dev     string   `json:"dev,omitempty"     yaml:"dev,omitempty"`
	Local   []string `json:"local,omitempty"   yaml:"local,omitempty"`

	IsFinal      bool `json:"final"      yaml:"final"`
	IsPreRelease bool `json:"prerelease" yaml:"prerelease"`
}

func report(ver pep440.AnyVersion) versionReport {
	mod, ok := ver.(pep440.Version)
	if !ok {
		return versionReport{
			Input:  ver.String(),
			Legacy: true,
		}
	}
	ret := versionReport{
		Input:        mod.Original(),
		Normalized:   mod.String(),
		IsFinal:      mod.IsFinal(),
		IsPreRelease: mod.IsPreRelease(),
	}
	if mod.Epoch != nil {
		ret.Epoch = mod.Epoch.String()
	}
	for _, seg := range mod.Release {
		ret.Release = append(ret.Release, seg.String())
	}
	if mod.Pre != nil {
		ret.Pre = fmt.Sprintf("%s%s", mod.Pre.L, mod.Pre.N)
	}
	if mod.Post != nil {
		ret.Post = mod.Post.String()
	}
	if mod.Dev != nil {
		ret.Dev = mod.Dev.String()
	}
	for _, seg := range mod.Local {
		ret.Local = append(ret.Local, seg.String())
	}
	return ret
}

func init() {
	var flags struct {
		Strict bool
		Format string
	}
	cmd := &cobra.Command{
		Use:   "parse [flags] [VERSION...]",
		Short: "Parse and normalize version strings",
		Long: "Parse each VERSION (or each line of stdin, if no VERSIONs are given), " +
			"and print its normalized form.  With --output=yaml or --output=json, " +
			"print the parsed segments instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			strs, err := gatherInputs(cmd, args)
			if err != nil {
				return err
			}
			vers, err := parseInputs(strs, flags.Strict)
			if err != nil {
				return err
			}

			switch flags.Format {
			case "text":
				for _, ver := range vers {
					fmt.Fprintln(cmd.OutOrStdout(), ver.String())
				}
			case "yaml":
				reports := make([]versionReport, 0, len(vers))
				for _, ver := range vers {
					reports = append(reports, report(ver))
				}
				bs, err := yaml.Marshal(reports)
				if err != nil {
					return err
				}
				if _, err := cmd.OutOrStdout().Write(bs); err != nil {
					return err
				}
			case "json":
				reports := make([]versionReport, 0, len(vers))
				for _, ver := range vers {
					reports = append(reports, report(ver))
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(reports); err != nil {
					return err
				}
			default:
				return cliutil.FlagErrorFunc(cmd,
					fmt.Errorf("invalid --output format: %q", flags.Format))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&flags.Strict, "strict", false,
		"Error out on non-conforming version strings, instead of treating them as legacy versions")
	cmd.Flags().StringVarP(&flags.Format, "output", "o", "text",
		`Output format: one of "text", "yaml", or "json"`)
	argparser.AddCommand(cmd)
}
