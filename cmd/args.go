package cmd

import "strings"

// expandListFlags rewrites "--name a b c" (or "--name=a b c") into
// "--name a --name b --name c" for the given list flags, so space separated lists work the same as
// repeated or comma separated flags. Everything after "--" is left alone.
func expandListFlags(args []string, names ...string) []string {
	lists := make(map[string]bool, len(names))
	for _, name := range names {
		lists["--"+name] = true
	}

	out := make([]string, 0, len(args))
	current := ""

	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}

		if strings.HasPrefix(arg, "-") {
			name, _, _ := strings.Cut(arg, "=")

			current = ""
			if lists[name] {
				current = name
			}

			out = append(out, arg)

			continue
		}

		if current != "" && i > 0 && args[i-1] != current {
			out = append(out, current)
		}

		out = append(out, arg)
	}

	return out
}
