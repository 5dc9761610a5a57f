package deckcode

import "fmt"

// DecodeReason classifies structural decode failures of the packed form.
type DecodeReason string

const (
	ReasonBadPrefix     DecodeReason = "bad-prefix"
	ReasonMalformedBody DecodeReason = "malformed-body"
)

// DecodeError reports a structural failure while decoding a packed code.
// Pos is a byte offset into the full code string.
type DecodeError struct {
	Reason DecodeReason
	Pos    int
	Detail string
}

func (e *DecodeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("decode deck code: %s", e.Reason)
	}
	return fmt.Sprintf("decode deck code: %s at %d: %s", e.Reason, e.Pos, e.Detail)
}

// EncodeError reports an identifier that cannot be represented in the packed form.
type EncodeError struct {
	ID     string
	Detail string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode deck code: identifier %q: %s", e.ID, e.Detail)
}

// ValidationReason classifies pre-decode rejections of pasted input.
type ValidationReason string

const (
	ReasonEmptyCode       ValidationReason = "empty-code"
	ReasonTooLong         ValidationReason = "too-long"
	ReasonMalformedFormat ValidationReason = "malformed-format"
	ReasonInvalidToken    ValidationReason = "invalid-token"
)

// ValidationError is produced by the import validator. Token is set only for
// invalid-token.
type ValidationError struct {
	Reason ValidationReason
	Token  string
}

func (e *ValidationError) Error() string {
	if e.Reason == ReasonInvalidToken {
		return fmt.Sprintf("invalid deck code: %s: %s", e.Reason, e.Token)
	}
	return fmt.Sprintf("invalid deck code: %s", e.Reason)
}
