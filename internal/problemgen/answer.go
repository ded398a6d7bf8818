package problemgen

import (
	"strconv"
	"strings"
)

// ParseAnswer interprets player input as an integer answer.
//
// Normalization rules:
// - Whitespace is trimmed
// - A single leading sign is accepted
// - Leading zeros are ignored (e.g., "007" is 7)
// - Thousands separators are accepted (e.g., "1,024")
//
// Anything else, including decimals, is not an answer.
func ParseAnswer(input string) (int, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, false
	}
	if strings.Contains(s, ",") {
		if !validGrouping(strings.TrimLeft(s, "+-")) {
			return 0, false
		}
		s = strings.ReplaceAll(s, ",", "")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// CheckAnswer reports whether input parses to the question's answer.
func CheckAnswer(input string, q Question) bool {
	n, ok := ParseAnswer(input)
	return ok && n == q.Answer
}

// validGrouping reports whether s uses commas as three-digit group
// separators, like "12,345".
func validGrouping(s string) bool {
	groups := strings.Split(s, ",")
	if len(groups[0]) == 0 || len(groups[0]) > 3 {
		return false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return false
		}
	}
	return true
}
