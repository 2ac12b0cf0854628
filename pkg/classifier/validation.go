package classifier

import (
	"strings"
)

// Bech32 data charset (excludes 1, b, i, o)
const bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// Base58 charset (excludes 0, O, I, l)
const base58Charset = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// IsValidBech32Char checks if a character is in the lowercase Bech32 data charset.
func IsValidBech32Char(c rune) bool {
	return strings.ContainsRune(bech32Charset, c)
}

// IsValidBase58Char checks if a character is valid in Base58 encoding.
func IsValidBase58Char(c rune) bool {
	return strings.ContainsRune(base58Charset, c)
}

// InvalidBase58Chars returns invalid Base58 characters in the input.
func InvalidBase58Chars(s string) []rune {
	var invalid []rune
	for _, c := range s {
		if !IsValidBase58Char(c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}

// InvalidBech32Chars returns invalid characters in the data part of a Bech32
// string, i.e. everything after the last '1' separator. Without a separator
// the whole input is checked.
func InvalidBech32Chars(s string) []rune {
	if i := strings.LastIndexByte(s, '1'); i >= 0 {
		s = s[i+1:]
	}
	var invalid []rune
	for _, c := range s {
		if !IsValidBech32Char(c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}
