package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pyver-dev/pyver/pkg/pep440"
)

// gatherInputs returns the version strings to operate on: the positional
// arguments if there are any, otherwise one per line on stdin (blank lines
// skipped).  A lone "-" argument forces stdin.
func gatherInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return args, nil
	}
	var ret []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ret = append(ret, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return ret, nil
}

// parseInputs parses version strings for commands that operate on lists.
// In strict mode a non-conforming string is an error; otherwise it becomes
// a LegacyVersion, same as everywhere else.
func parseInputs(strs []string, strict bool) ([]pep440.AnyVersion, error) {
	ret := make([]pep440.AnyVersion, 0, len(strs))
	for _, str := range strs {
		if strict {
			ver, err := pep440.ParseVersion(str)
			if err != nil {
				return nil, err
			}
			ret = append(ret, *ver)
			continue
		}
		ret = append(ret, pep440.Parse(str))
	}
	return ret, nil
}
