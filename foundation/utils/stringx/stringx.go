// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the string operations the ICEL toolchain relies
//              on: blank/empty checks for input validation, Unicode-safe
//              truncation and padding for log and table output, line
//              splitting for the file runner, and ASCII letter/digit
//              predicates shared by the lexer and variable validation.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-08
// Modified: 2025-08-08
//
// Change History:
// - 2025-08-08 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string is empty (length 0)
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsNotEmpty returns true if the string is not empty
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsASCIILetter returns true if b is an ASCII letter (a-z, A-Z)
func IsASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// IsASCIIDigit returns true if b is an ASCII decimal digit (0-9)
func IsASCIIDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// IsAlpha returns true if s is non-empty and consists only of ASCII letters.
// Variable names in ICEL expressions are exactly such letter runs.
func IsAlpha(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsASCIILetter(s[i]) {
			return false
		}
	}
	return true
}

// Truncate truncates a string to maxLen runes, appending the ellipsis when
// content was cut. Unicode-aware; never breaks multi-byte characters. If the
// string already fits, it is returned unchanged.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		// No room for the ellipsis, truncate hard
		return string([]rune(s)[:maxLen])
	}

	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// PadLeft pads s to width runes with the pad character on the left.
// Strings already at or beyond width are returned unchanged.
func PadLeft(s string, width int, pad rune) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	var builder strings.Builder
	builder.Grow(width)
	for i := 0; i < width-runeCount; i++ {
		builder.WriteRune(pad)
	}
	builder.WriteString(s)
	return builder.String()
}

// PadRight pads s to width runes with the pad character on the right.
// Strings already at or beyond width are returned unchanged.
func PadRight(s string, width int, pad rune) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	var builder strings.Builder
	builder.Grow(width)
	builder.WriteString(s)
	for i := 0; i < width-runeCount; i++ {
		builder.WriteRune(pad)
	}
	return builder.String()
}

// SplitLines splits a string into lines, handling \n, \r\n, and \r endings
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// FromBlankDefault returns defaultValue when s is blank, otherwise s
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}
