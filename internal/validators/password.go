package validators

import "unicode"

const MinPasswordLength = 8

// IsPasswordValid requires at least MinPasswordLength characters including a
// letter, a digit and a symbol.
func IsPasswordValid(password string) bool {
	if len([]rune(password)) < MinPasswordLength {
		return false
	}

	var letter, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return letter && digit && symbol
}
