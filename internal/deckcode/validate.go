package deckcode

import (
	"regexp"
	"strings"
)

// MaxCodeLength bounds pasted input before any decoding is attempted.
const MaxCodeLength = 2000

var simpleTokenRe = regexp.MustCompile(`^[A-Z]{2}-\d+$`)

// ValidateCode gates raw pasted text before decoding. Rules run in a fixed
// order and the first failure wins, so diagnostics are deterministic:
// empty-code, then too-long, then malformed-format (doubled, leading or
// trailing delimiter). A nil return means the input may be handed to a
// decoder.
func ValidateCode(raw string) *ValidationError {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return &ValidationError{Reason: ReasonEmptyCode}
	}
	if len(raw) > MaxCodeLength {
		return &ValidationError{Reason: ReasonTooLong}
	}
	if strings.Contains(trimmed, "//") ||
		strings.HasPrefix(trimmed, "/") ||
		strings.HasSuffix(trimmed, "/") {
		return &ValidationError{Reason: ReasonMalformedFormat}
	}
	return nil
}

// ValidateSimpleCode runs ValidateCode and then checks every slash-separated
// token against the simple-form identifier pattern, reporting the first
// offender.
func ValidateSimpleCode(raw string) *ValidationError {
	if verr := ValidateCode(raw); verr != nil {
		return verr
	}
	for _, tok := range strings.Split(strings.TrimSpace(raw), "/") {
		if !simpleTokenRe.MatchString(tok) {
			return &ValidationError{Reason: ReasonInvalidToken, Token: tok}
		}
	}
	return nil
}
