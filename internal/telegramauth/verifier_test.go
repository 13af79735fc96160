package telegramauth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/entity"
)

const botToken = "123456:TEST-token"

var verifiedAt = time.Unix(1_700_100_000, 0)

// sign reproduces the widget's signature independently of Verifier.
func sign(t *testing.T, fields map[string]string) Assertion {
	t.Helper()

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	lines := make([]string, 0, len(keys))
	sort.Strings(keys)
	for _, key := range keys {
		lines = append(lines, key+"="+fields[key])
	}

	secret := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(strings.Join(lines, "\n")))

	assertion := Assertion{FieldHash: hex.EncodeToString(mac.Sum(nil))}
	for key, value := range fields {
		assertion[key] = value
	}
	return assertion
}

func fieldsIssuedAgo(age time.Duration) map[string]string {
	return map[string]string{
		"id":         "42",
		"first_name": "Anna",
		"username":   "anna",
		"auth_date":  formatUnix(verifiedAt.Add(-age)),
	}
}

func formatUnix(ts time.Time) string {
	return strconv.FormatInt(ts.Unix(), 10)
}

func newVerifier(t *testing.T) *Verifier {
	t.Helper()

	verifier, err := NewVerifier(botToken, DefaultMaxAge, func() time.Time { return verifiedAt })
	require.NoError(t, err)

	return verifier
}

func TestVerifier_Verify(t *testing.T) {
	t.Run("Accepts a correct signature issued 86000 seconds ago", func(t *testing.T) {
		// Given: a signed assertion just under a day old
		verifier := newVerifier(t)
		assertion := sign(t, fieldsIssuedAgo(86_000*time.Second))

		// When: verifying it
		player, err := verifier.Verify(assertion)

		// Then: the player is returned
		require.NoError(t, err)
		assert.Equal(t, &entity.Player{ID: "42", FirstName: "Anna", Username: "anna"}, player)
		assert.True(t, verifier.Valid(assertion))
	})

	t.Run("Accepts an assertion exactly at the freshness limit", func(t *testing.T) {
		verifier := newVerifier(t)

		_, err := verifier.Verify(sign(t, fieldsIssuedAgo(86_400*time.Second)))

		require.NoError(t, err)
	})

	t.Run("Ignores sub-second clock precision at the freshness limit", func(t *testing.T) {
		// Given: a clock half a second past a whole second
		verifier, err := NewVerifier(botToken, DefaultMaxAge, func() time.Time {
			return verifiedAt.Add(500 * time.Millisecond)
		})
		require.NoError(t, err)

		// When: verifying assertions issued 86400 and 86401 seconds ago
		_, errAtLimit := verifier.Verify(sign(t, fieldsIssuedAgo(86_400*time.Second)))
		_, errStale := verifier.Verify(sign(t, fieldsIssuedAgo(86_401*time.Second)))

		// Then: only the stale one is rejected
		require.NoError(t, errAtLimit)
		require.ErrorIs(t, errStale, apperror.ErrAssertionExpired)
	})

	t.Run("Rejects an assertion issued 86401 seconds ago", func(t *testing.T) {
		// Given: a correctly signed but stale assertion
		verifier := newVerifier(t)
		assertion := sign(t, fieldsIssuedAgo(86_401*time.Second))

		// When: verifying it
		_, err := verifier.Verify(assertion)

		// Then: it is rejected as expired
		require.ErrorIs(t, err, apperror.ErrAssertionExpired)
		require.ErrorIs(t, err, apperror.ErrInvalidAssertion)
		assert.False(t, verifier.Valid(assertion))
	})

	t.Run("Rejects a tampered field", func(t *testing.T) {
		// Given: a signed assertion whose id is changed afterwards
		verifier := newVerifier(t)
		assertion := sign(t, fieldsIssuedAgo(time.Minute))
		assertion["id"] = "43"

		// When: verifying it
		_, err := verifier.Verify(assertion)

		// Then: the signature no longer matches
		require.ErrorIs(t, err, apperror.ErrInvalidAssertion)
		assert.NotErrorIs(t, err, apperror.ErrAssertionExpired)
	})

	t.Run("Rejects an added field", func(t *testing.T) {
		verifier := newVerifier(t)
		assertion := sign(t, fieldsIssuedAgo(time.Minute))
		assertion["photo_url"] = "https://example.com/a.png"

		assert.False(t, verifier.Valid(assertion))
	})

	t.Run("Rejects a signature from another bot", func(t *testing.T) {
		other, err := NewVerifier("654321:OTHER-token", DefaultMaxAge, func() time.Time { return verifiedAt })
		require.NoError(t, err)

		assert.False(t, other.Valid(sign(t, fieldsIssuedAgo(time.Minute))))
	})

	t.Run("Compares the hex digest exactly", func(t *testing.T) {
		verifier := newVerifier(t)
		assertion := sign(t, fieldsIssuedAgo(time.Minute))
		assertion[FieldHash] = strings.ToUpper(assertion[FieldHash].(string))

		assert.False(t, verifier.Valid(assertion))
	})

	t.Run("Rejects a missing hash", func(t *testing.T) {
		verifier := newVerifier(t)
		assertion := sign(t, fieldsIssuedAgo(time.Minute))
		delete(assertion, FieldHash)

		_, err := verifier.Verify(assertion)

		require.ErrorIs(t, err, apperror.ErrInvalidAssertion)
	})

	t.Run("Rejects a signed assertion without auth_date", func(t *testing.T) {
		verifier := newVerifier(t)
		fields := fieldsIssuedAgo(time.Minute)
		delete(fields, FieldAuthDate)

		_, err := verifier.Verify(sign(t, fields))

		require.ErrorIs(t, err, apperror.ErrInvalidAssertion)
	})

	t.Run("Accepts numbers decoded from JSON verbatim", func(t *testing.T) {
		// Given: the widget payload as raw JSON with numeric id and auth_date
		verifier := newVerifier(t)
		signed := sign(t, map[string]string{
			"id":         "9007199254740993",
			"first_name": "Anna",
			"auth_date":  formatUnix(verifiedAt.Add(-time.Hour)),
		})
		raw := `{"id":9007199254740993,"first_name":"Anna","auth_date":` +
			formatUnix(verifiedAt.Add(-time.Hour)) + `,"hash":"` + signed[FieldHash].(string) + `"}`

		// When: parsing and verifying it
		assertion, err := ParseAssertion([]byte(raw))
		require.NoError(t, err)
		player, err := verifier.Verify(assertion)

		// Then: the large id survives and the signature matches
		require.NoError(t, err)
		assert.Equal(t, "9007199254740993", player.ID)
	})
}

func TestCheckString(t *testing.T) {
	assertion := Assertion{
		"username":   "anna",
		"id":         json.Number("42"),
		"hash":       "ignored",
		"auth_date":  json.Number("1700000000"),
		"first_name": "Anna",
	}

	assert.Equal(t, "auth_date=1700000000\nfirst_name=Anna\nid=42\nusername=anna", CheckString(assertion))
}

func TestParseAssertion(t *testing.T) {
	_, err := ParseAssertion([]byte(`{"id":`))

	require.ErrorIs(t, err, apperror.ErrInvalidAssertion)
}

func TestNewVerifier(t *testing.T) {
	for _, token := range []string{"", "  ", "CHANGEME", "your_bot_token"} {
		_, err := NewVerifier(token, 0, nil)
		require.ErrorIs(t, err, ErrInsecureSecret, "token %q", token)
	}

	verifier, err := NewVerifier(botToken, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxAge, verifier.maxAge)
}
