package deckcode

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackedRoundTrip(t *testing.T) {
	cases := [][]string{
		{"OP01-001"},
		{"OP01-001", "OP01-001", "OP01-001", "OP01-001"},
		{"ST01-001", "ST01-002", "ST01-003", "ST01-004", "ST01-005"},
		{"A"},
		{"0"},
		{"-"},
		{"a-very-long-identifier-with-many-characters-in-it-0123456789"},
		{"EB01-061", "EB01-061", "OP09-119", "P-041", "ST13-014"},
	}
	for _, ids := range cases {
		t.Run(strings.Join(ids, ","), func(t *testing.T) {
			code, err := EncodePacked(ids)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(code, PackedPrefix))

			got, err := DecodePacked(code)
			require.NoError(t, err)
			assert.Equal(t, ids, got)

			// one re-encode is byte identical
			again, err := EncodePacked(got)
			require.NoError(t, err)
			assert.Equal(t, code, again)
		})
	}
}

func TestPackedRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		n := rng.Intn(51)
		ids := make([]string, n)
		for j := range ids {
			l := 1 + rng.Intn(16)
			b := make([]byte, l)
			for k := range b {
				b[k] = idAlphabet[rng.Intn(len(idAlphabet))]
			}
			ids[j] = string(b)
		}

		code, err := EncodePacked(ids)
		require.NoError(t, err)
		got, err := DecodePacked(code)
		require.NoError(t, err)
		require.Equal(t, ids, got, "code %q", code)
	}
}

func TestPackedEmptyDeck(t *testing.T) {
	code, err := EncodePacked(nil)
	require.NoError(t, err)
	assert.Equal(t, PackedPrefix, code)

	ids, err := DecodePacked(PackedPrefix)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestPackedKnownCode(t *testing.T) {
	// a code in circulation: decoding and re-encoding must reproduce it
	const code = "KCG-vWuDyYIu6k7yPBQRbfJRPSB5okg3Ve5orLixJH2IhD6ggKoH81d"

	ids, err := DecodePacked(code)
	require.NoError(t, err)
	require.NotEmpty(t, ids)

	again, err := EncodePacked(ids)
	require.NoError(t, err)
	assert.Equal(t, code, again)
}

func TestPackedBadPrefix(t *testing.T) {
	for _, code := range []string{"", "K", "KCG", "kcg-AA", "XYZ-vWuD", "AA-1/AA-1"} {
		t.Run(code, func(t *testing.T) {
			_, err := DecodePacked(code)
			var derr *DecodeError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, ReasonBadPrefix, derr.Reason)
		})
	}
}

func TestPackedMalformedBody(t *testing.T) {
	cases := map[string]string{
		"truncated group":   "KCG-AB",     // no closing digit
		"trailing partial":  "KCG-vW1",    // valid group then open group
		"character outside": "KCG-vW/uD",  // '/' not in body alphabet
		"space in body":     "KCG-vW uD",  // ' ' not in body alphabet
		"unicode in body":   "KCG-vW\xc3", // non-ASCII byte
	}
	for name, code := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodePacked(code)
			var derr *DecodeError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, ReasonMalformedBody, derr.Reason)
		})
	}
}

func TestPackedEncodeErrors(t *testing.T) {
	_, err := EncodePacked([]string{""})
	var eerr *EncodeError
	require.True(t, errors.As(err, &eerr))

	_, err = EncodePacked([]string{"カード"})
	require.True(t, errors.As(err, &eerr))

	_, err = EncodePacked([]string{"AA_1"})
	require.True(t, errors.As(err, &eerr))

	_, err = EncodePacked([]string{strings.Repeat("A", MaxPackedIDLen+1)})
	require.True(t, errors.As(err, &eerr))

	_, err = EncodePacked([]string{strings.Repeat("A", MaxPackedIDLen)})
	assert.NoError(t, err)
}

func TestPackedDeterminism(t *testing.T) {
	ids := []string{"OP01-001", "OP01-016", "OP01-016", "ST01-005"}
	a, err := EncodePacked(ids)
	require.NoError(t, err)
	b, err := EncodePacked(ids)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPackedBodyIsURLSafeASCII(t *testing.T) {
	ids := []string{"OP01-001", "P-041", strings.Repeat("z", 20)}
	code, err := EncodePacked(ids)
	require.NoError(t, err)
	for i := 0; i < len(code); i++ {
		c := code[i]
		assert.True(t, c > 0x20 && c < 0x7f, "byte %#x at %d", c, i)
	}
}
