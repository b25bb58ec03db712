// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

// Package textnorm normalizes Unicode strings for exact, case-insensitive
// name comparison.
//
// # Usage
//
// Position and major names arrive in both Mongolian Cyrillic and English, with
// inconsistent casing and composition forms. Fold produces a canonical key so
// that "Программ Хангамжийн Инженер" and "программ хангамжийн инженер" compare
// equal, while "Software Engineer" and "Software Engineers" do not.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Fold converts a string into its canonical comparison key.
//
// # Transformation Pipeline
//
// 1. Trims surrounding whitespace.
// 2. Normalizes to NFC (composes combining sequences into single code points).
// 3. Lowercases (full Unicode case mapping, covers Cyrillic).
func Fold(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// FoldSet builds a set of comparison keys from the provided names.
// Blank entries are skipped.
func FoldSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		key := Fold(name)
		if key == "" {
			continue
		}
		set[key] = true
	}
	return set
}
