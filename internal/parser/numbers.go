package parser

import (
	"strconv"
	"strings"
)

// ParseCompactNumber parses abbreviated counts like "1.2k", "3m" or
// "452" into an integer. Thousands separators are tolerated. The second
// return value is false when the token does not parse; callers treat
// that as absence, never as an error.
func ParseCompactNumber(token string) (int64, bool) {
	token = strings.TrimSpace(strings.ReplaceAll(token, ",", ""))
	if token == "" {
		return 0, false
	}

	multiplier := 1.0
	switch token[len(token)-1] {
	case 'k', 'K':
		multiplier = 1_000
		token = token[:len(token)-1]
	case 'm', 'M':
		multiplier = 1_000_000
		token = token[:len(token)-1]
	}

	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return int64(value * multiplier), true
}
