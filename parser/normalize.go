package parser

import "strings"

// NormalizeText drops the trailing whois server banner from raw.
//
// The last line starting with "#" opens the banner; it and everything after
// it are removed and the remaining lines are trimmed. Text without such a
// line is returned untouched.
func NormalizeText(raw string) string {
	lines := strings.Split(raw, "\n")

	cut := -1
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(lines[i], "#") {
			cut = i
			break
		}
	}
	if cut < 0 {
		return raw
	}

	kept := make([]string, cut)
	for i, line := range lines[:cut] {
		kept[i] = strings.TrimSpace(line)
	}
	return strings.Join(kept, "\n")
}
