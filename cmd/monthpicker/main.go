package main

import (
	"os"
	"strings"

	"monthpicker/internal/cli"
)

// isMaskText reports whether s looks like typed mask text ("04/2015", "2015.04", "__/2015").
func isMaskText(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return false
	}
	slots := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '_':
			slots++
		case r == '/' || r == '.' || r == '-':
		default:
			return false
		}
	}
	return slots >= 2
}

// rewriteMaskArgs turns `monthpicker <mask>` into `monthpicker parse <mask>`. Cobra treats the
// first positional token as a subcommand, so argv is rewritten before parsing. Persistent flags
// may come first, so the first positional is searched for rather than assumed at argv[1].
func rewriteMaskArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--config":     true,
		"--lang":       true,
		"--min":        true,
		"--max":        true,
		"--max-year":   true,
		"--start-year": true,
		"--year":       true,
		"--month":      true,
		"--mode":       true,
		"--format":     true,
		"--log-file":   true,
		"--log-level":  true,
	}

	insertAt := func(i int) []string {
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:i]...)
		out = append(out, "parse")
		return append(out, argv[i:]...)
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isMaskText(argv[i+1]) {
				return insertAt(i + 1)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		if isMaskText(a) {
			return insertAt(i)
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteMaskArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
