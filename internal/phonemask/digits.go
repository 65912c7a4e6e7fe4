package phonemask

import "strings"

// Digits drops every character except ASCII 0-9.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// guessPrefix, ülke tahmini için kullanılan ilk (en fazla) maxGuessDigits haneyi döndürür.
func guessPrefix(digits string) string {
	if len(digits) > maxGuessDigits {
		return digits[:maxGuessDigits]
	}
	return digits
}
