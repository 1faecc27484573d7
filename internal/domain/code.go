package domain

import "strings"

// MaxCodeLength matches the width of the code columns.
const MaxCodeLength = 50

// NormalizeCode trims surrounding whitespace from a product code and checks
// that what remains is a non-empty run of ASCII digits.
func NormalizeCode(raw string) (string, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return "", NewValidationError("code", "required")
	}
	if len(code) > MaxCodeLength {
		return "", NewValidationError("code", "max 50 characters")
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return "", NewValidationError("code", "digits only")
		}
	}
	return code, nil
}
