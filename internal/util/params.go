package util

import (
	"strconv"
	"strings"
)

// ParseHL parses a line selection like "3,5-7" into a set. Bad parts are
// skipped, reversed ranges are swapped.
func ParseHL(s string) map[int]bool {
	hl := map[int]bool{}
	if s == "" {
		return hl
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			a, errA := strconv.Atoi(strings.TrimSpace(lo))
			b, errB := strconv.Atoi(strings.TrimSpace(hi))
			if errA != nil || errB != nil {
				continue
			}
			if a > b {
				a, b = b, a
			}
			for i := max(a, 1); i <= b && i-a < maxRange; i++ {
				hl[i] = true
			}
		} else if n, err := strconv.Atoi(part); err == nil && n > 0 {
			hl[n] = true
		}
	}
	return hl
}

// caps a single range so ?hl=1-999999999 cannot allocate a huge map
const maxRange = 10000

func IsTruthy(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "on" || s == "yes"
}
