package parselimit

import "strconv"

// Parse interprets a limit/offset query parameter. Empty means the default,
// anything non-numeric or negative is rejected as -1.
func Parse(s string, def int) int {
	if s == "" {
		return def
	}

	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return -1
	}

	return v
}
