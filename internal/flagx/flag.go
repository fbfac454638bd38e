// Package flagx lets several loaders share os.Args without tripping over each
// other's flags.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// flagName strips the leading dashes and any "=value" suffix:
// "--config=a.json" and "-config" both yield "config".
func flagName(arg string) string {
	name := strings.TrimLeft(arg, "-")
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	return name
}

func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

// FilterArgs keeps only the flags named in allowed (without dashes) and
// their values. A value is either attached with '=' or the following argument
// when that argument does not itself start with '-'.
func FilterArgs(args []string, allowed ...string) []string {
	keep := make(map[string]bool, len(allowed))
	for _, name := range allowed {
		keep[name] = true
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !isFlag(arg) || !keep[flagName(arg)] {
			continue
		}
		filtered = append(filtered, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		if i+1 < len(args) && !isFlag(args[i+1]) {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigPath returns the JSON config file given with -c or -config, or "".
// When both are present the last one wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, "c", "config"))

	return path
}
