package common

import "strings"

// SplitList expands comma-separated values, trimming whitespace and dropping
// empty items while preserving order. Duplicates are kept.
func SplitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		for _, s := range strings.Split(v, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			out = append(out, s)
		}
	}
	return out
}
