package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts various types to int using explicit type switching.
// Strings are read like a lenient integer parser: surrounding space is
// ignored and parsing stops at the first non-digit, so "15 " and "15abc"
// yield 15 and "abc" yields 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint:
		return int(v)
	case uint32:
		return int(v)
	case float64:
		return int(v)
	case string:
		return leadingInt(v)
	case []byte:
		return leadingInt(string(v))
	default:
		return leadingInt(fmt.Sprintf("%v", v))
	}
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	i, _ := strconv.Atoi(s[:end])
	return i
}

// ToFloat parses a decimal string, returning 0 when it is not a number.
func ToFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// ToBool converts various types to bool.
// It handles bool, integers (1=true), and strings ("1", "true").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, uint, uint32:
		return ToInt(v) == 1
	case string:
		s := strings.TrimSpace(v)
		return s == "1" || strings.EqualFold(s, "true")
	default:
		return false
	}
}

// SplitList splits a comma separated value, trimming entries and dropping
// empty ones. An empty input yields an empty, non-nil slice.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
