package main

import "strings"

// Long flags which may also be spelled with a single dash, as in
// "generator -size SMALL -output data"
var singleDashFlags = []string{"size", "output", "seed", "manifest", "json", "progress", "version"}

// Flags that always consume the following argument as their value
var valueFlags = []string{"size", "output", "seed", "manifest"}

func isOneOf(name string, names []string) bool {
	for _, n := range names {
		if name == n {
			return true
		}
	}
	return false
}

// Rewrite long flags into the double dash form kong expects. A value flag
// without "=" is glued to the argument after it, so values that start with a
// dash (like an output file named "-data") still reach the flag.
// Anything else is passed through untouched so kong can complain about it.
func normalizeArgs(args []string) []string {
	result := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			result = append(result, arg)
			continue
		}
		trimmed := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
		name, _, hasValue := strings.Cut(trimmed, "=")
		if !isOneOf(name, singleDashFlags) {
			result = append(result, arg)
			continue
		}
		arg = "--" + trimmed
		if !hasValue && isOneOf(name, valueFlags) && i+1 < len(args) {
			i++
			arg += "=" + args[i]
		}
		result = append(result, arg)
	}
	return result
}
