package domain

// MinPhoneDigits is the number of digits a phone number needs to be considered valid.
const MinPhoneDigits = 10

// DefaultPhone is the sample number checked when none is given.
const DefaultPhone = "+1-555-123-4567"

// ValidPhone reports whether s carries at least MinPhoneDigits ASCII digits.
// Separators, spaces and a leading + are ignored.
func ValidPhone(s string) bool {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n >= MinPhoneDigits
}
