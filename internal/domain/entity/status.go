package entity

import (
	"strings"

	"golang.org/x/text/cases"
)

// foldStatus normalises a status string for comparison ("Open", "OPEN", " open " are the same).
// A Caser keeps state, so one is built per call.
func foldStatus(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// sameStatus compares two status strings case-insensitively.
func sameStatus(a, b string) bool {
	return foldStatus(a) == foldStatus(b)
}
