package convert

import "strings"

// SplitCompound splits a multi-valued field encoded as one comma-space-joined
// string ("ORAL, TOPICAL"). A comma whose following word is "delayed" or
// "extended" belongs to a release qualifier ("capsule, delayed release") and
// is not a list separator. Go's regexp has no negative lookahead, so the
// guard is a hand-rolled scan.
func SplitCompound(raw string) []string {
	var parts []string
	start := 0
	for i := 0; i+1 < len(raw); i++ {
		if raw[i] != ',' || raw[i+1] != ' ' {
			continue
		}
		rest := strings.ToLower(raw[i+2:])
		if strings.HasPrefix(rest, "delayed") || strings.HasPrefix(rest, "extended") {
			continue
		}
		parts = append(parts, raw[start:i])
		start = i + 2
		i++
	}
	return append(parts, raw[start:])
}
