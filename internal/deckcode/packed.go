// Package deckcode converts decks to and from their shareable text forms.
//
// Two encodings exist. The packed form is a dense, prefix-tagged string
// ("KCG-...") holding one digit group per physical card copy; it is the
// form embedded in URLs and QR codes. The simple form joins card ids with
// slashes, one token per copy, and survives hand editing.
package deckcode

import (
	"math/big"
	"strings"
)

// PackedPrefix tags every packed deck code.
const PackedPrefix = "KCG-"

// MaxPackedIDLen bounds the identifiers EncodePacked accepts.
const MaxPackedIDLen = 64

// The packed body alphabet. A code character carries a base-32 digit plus a
// one-bit flag: characters from contAlphabet continue the current group,
// characters from lastAlphabet close it. Groups are therefore self-delimiting
// with no separator character.
const (
	contAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
	lastAlphabet = "WXYZabcdefghijklmnopqrstuvwxyz?!"
)

// Identifier characters representable by the packed form.
const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

var (
	contIndex [128]int8
	lastIndex [128]int8
	idIndex   [128]int8

	base32 = big.NewInt(32)
	base63 = big.NewInt(63)
	bigOne = big.NewInt(1)
)

func init() {
	for i := range contIndex {
		contIndex[i] = -1
		lastIndex[i] = -1
		idIndex[i] = -1
	}
	for i := 0; i < len(contAlphabet); i++ {
		contIndex[contAlphabet[i]] = int8(i)
	}
	for i := 0; i < len(lastAlphabet); i++ {
		lastIndex[lastAlphabet[i]] = int8(i)
	}
	for i := 0; i < len(idAlphabet); i++ {
		idIndex[idAlphabet[i]] = int8(i)
	}
}

// EncodePacked packs the flattened identifier sequence (one entry per copy,
// caller-ordered) into a packed deck code. It is deterministic and
// order-preserving; an empty sequence encodes to the bare prefix. Callers that
// want a canonical code for a deck sort the cards with SortForEncode first.
//
// Identifiers are read as bijective base-63 numerals over idAlphabet, and the
// resulting integer is written as a bijective base-32 numeral over the body
// alphabet, least significant digit first, with the closing digit drawn from
// lastAlphabet. Bijective numeration in both directions makes DecodePacked an
// exact inverse: every structurally valid body re-encodes byte for byte.
func EncodePacked(ids []string) (string, error) {
	var b strings.Builder
	b.WriteString(PackedPrefix)
	for _, id := range ids {
		if err := appendPackedID(&b, id); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func appendPackedID(b *strings.Builder, id string) error {
	if id == "" {
		return &EncodeError{ID: id, Detail: "empty identifier"}
	}
	if len(id) > MaxPackedIDLen {
		return &EncodeError{ID: id, Detail: "identifier too long"}
	}

	// id -> integer, bijective base-63, most significant character first.
	n := new(big.Int)
	d := new(big.Int)
	for i := 0; i < len(id); i++ {
		c := id[i]
		if c >= 0x80 || idIndex[c] < 0 {
			return &EncodeError{ID: id, Detail: "character outside code alphabet"}
		}
		n.Mul(n, base63)
		n.Add(n, d.SetInt64(int64(idIndex[c])+1))
	}

	// integer -> body digits, bijective base-32, least significant first.
	var digits []byte
	q, r := new(big.Int), new(big.Int)
	for n.Sign() > 0 {
		q.QuoRem(n, base32, r)
		v := r.Int64()
		if v == 0 {
			v = 32
			q.Sub(q, bigOne)
		}
		digits = append(digits, byte(v-1))
		n.Set(q)
	}
	for i, p := range digits {
		if i == len(digits)-1 {
			b.WriteByte(lastAlphabet[p])
		} else {
			b.WriteByte(contAlphabet[p])
		}
	}
	return nil
}

// DecodePacked recovers the flattened identifier sequence from a packed code.
// It is purely structural: identifiers are not checked against any catalog.
// The bare prefix decodes to an empty sequence.
func DecodePacked(code string) ([]string, error) {
	if !strings.HasPrefix(code, PackedPrefix) {
		return nil, &DecodeError{Reason: ReasonBadPrefix}
	}
	body := code[len(PackedPrefix):]

	ids := []string{}
	var group []byte
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < 0x80 {
			if p := contIndex[c]; p >= 0 {
				group = append(group, byte(p))
				continue
			}
			if p := lastIndex[c]; p >= 0 {
				group = append(group, byte(p))
				ids = append(ids, decodeGroup(group))
				group = group[:0]
				continue
			}
		}
		return nil, &DecodeError{
			Reason: ReasonMalformedBody,
			Pos:    len(PackedPrefix) + i,
			Detail: "character outside code alphabet",
		}
	}
	if len(group) > 0 {
		return nil, &DecodeError{
			Reason: ReasonMalformedBody,
			Pos:    len(code),
			Detail: "truncated identifier group",
		}
	}
	return ids, nil
}

func decodeGroup(payloads []byte) string {
	// digits -> integer; payloads are least significant first.
	n := new(big.Int)
	d := new(big.Int)
	for i := len(payloads) - 1; i >= 0; i-- {
		n.Mul(n, base32)
		n.Add(n, d.SetInt64(int64(payloads[i])+1))
	}

	// integer -> identifier, emitting least significant character first.
	var buf []byte
	q, r := new(big.Int), new(big.Int)
	for n.Sign() > 0 {
		q.QuoRem(n, base63, r)
		v := r.Int64()
		if v == 0 {
			v = 63
			q.Sub(q, bigOne)
		}
		buf = append(buf, idAlphabet[v-1])
		n.Set(q)
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}
