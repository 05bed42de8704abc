package utils

import "strings"

func StringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}

func Float64Ptr(v float64) *float64 {
	return &v
}

// TrimBom strips a UTF-8 byte order mark if the spreadsheet export
// carries one on its first header cell.
func TrimBom(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
