// Package phonemask turns partially typed phone numbers into display masks
// while inferring the most likely country from the leading digits.
//
// The work is split in two: GuessCountry picks a record from a country.Table
// by longest dial code prefix (ties broken by priority), and Render lays the
// digits over that country's format pattern. Formatter composes both. All of
// it is total: any input yields a string, never an error.
package phonemask
