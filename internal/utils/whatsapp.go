package utils

import (
	"strings"
)

// WhatsAppURL builds the wa.me deep link for a phone number. Returns ""
// when no number is set so callers can hide the contact affordance.
func WhatsAppURL(phone string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if cleaned == "" {
		return ""
	}
	return "https://wa.me/" + cleaned
}
