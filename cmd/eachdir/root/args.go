// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package root

import (
	"strings"
	"unicode"

	"github.com/urfave/cli/v3"
)

const endOfFlags = "--"

// SplitArgs prepares osArgs for cmd.Run.
//
// It inserts "--" before the first positional argument so that the command
// template is passed through untouched, even when its own tokens look like
// flags (eachdir ls -la). Clusters of short flags are expanded, so "-it 4"
// becomes "-i -t 4" and "-t4" becomes "-t 4".
//
// osArgs[0] is the program name. Everything after an existing "--" is kept as is.
// osArgs is not modified.
func SplitArgs(cmd *cli.Command, osArgs []string) []string {
	if len(osArgs) == 0 {
		return []string{}
	}

	known, takesValue := flagNames(cmd)
	out := []string{osArgs[0]}

	for i := 1; i < len(osArgs); i++ {
		tok := osArgs[i]

		switch {
		case tok == endOfFlags:
			return append(out, osArgs[i:]...)

		case strings.HasPrefix(tok, "--"):
			out = append(out, tok)

			name := strings.TrimPrefix(tok, "--")
			if !strings.Contains(name, "=") && takesValue[name] && i+1 < len(osArgs) {
				i++
				out = append(out, osArgs[i])
			}

		case isShortFlag(tok):
			name := tok[1:]

			if known[name] || strings.Contains(name, "=") {
				out = append(out, tok)

				if takesValue[name] && i+1 < len(osArgs) {
					i++
					out = append(out, osArgs[i])
				}

				continue
			}

			expanded, needsNext := expandCluster(name, takesValue)
			out = append(out, expanded...)

			if needsNext && i+1 < len(osArgs) {
				i++
				out = append(out, osArgs[i])
			}

		default:
			out = append(out, endOfFlags)
			return append(out, osArgs[i:]...)
		}
	}

	return out
}

// isShortFlag matches the tokens the cli parser treats as flags: a dash then a letter.
func isShortFlag(tok string) bool {
	return len(tok) > 1 && tok[0] == '-' && unicode.IsLetter(rune(tok[1]))
}

// expandCluster splits "it" into "-i", "-t". The first flag that takes a value
// ends the cluster: the rest of the cluster is its value, or, when nothing is
// left, the following argument is.
func expandCluster(cluster string, takesValue map[string]bool) ([]string, bool) {
	var out []string

	for j, r := range cluster {
		out = append(out, "-"+string(r))

		if !takesValue[string(r)] {
			continue
		}

		if rest := cluster[j+len(string(r)):]; rest != "" {
			return append(out, rest), false
		}

		return out, true
	}

	return out, false
}

// flagNames returns every name and alias of cmd's flags, and those of the
// flags that take a value.
func flagNames(cmd *cli.Command) (map[string]bool, map[string]bool) {
	known := make(map[string]bool)
	takesValue := make(map[string]bool)

	for _, f := range cmd.Flags {
		_, isBool := f.(*cli.BoolFlag)

		for _, n := range f.Names() {
			known[n] = true
			takesValue[n] = !isBool
		}
	}

	return known, takesValue
}

