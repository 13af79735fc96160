// Package telegramauth checks Telegram Login Widget payloads.
//
// The widget signs every field it returns with HMAC-SHA256. The key is the SHA-256 of the
// bot token, the message is the "key=value" pairs of all fields except "hash", sorted by
// key and joined with newlines, and the signature is sent hex-encoded in "hash".
package telegramauth

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/entity"
)

const (
	FieldHash     = "hash"
	FieldAuthDate = "auth_date"

	DefaultMaxAge = 24 * time.Hour
)

var ErrInsecureSecret = errors.New("bot token is empty or a placeholder")

var placeholderTokens = []string{"changeme", "your_bot_token", "bot_token", "xxx"}

// Assertion is the login payload exactly as the identity provider sent it.
type Assertion map[string]any

// ParseAssertion decodes JSON keeping numbers verbatim, so the check string matches what
// was signed.
func ParseAssertion(data []byte) (Assertion, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var assertion Assertion
	if err := decoder.Decode(&assertion); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidAssertion, err)
	}

	return assertion, nil
}

type Verifier struct {
	key    []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewVerifier derives the HMAC key from botToken. now may be nil to use the wall clock.
func NewVerifier(botToken string, maxAge time.Duration, now func() time.Time) (*Verifier, error) {
	if isPlaceholder(botToken) {
		return nil, ErrInsecureSecret
	}

	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}

	if now == nil {
		now = time.Now
	}

	key := sha256.Sum256([]byte(botToken))

	return &Verifier{
		key:    key[:],
		maxAge: maxAge,
		now:    now,
	}, nil
}

// Verify checks the signature first and the age second. There is no replay protection:
// the same assertion stays valid for the whole freshness window.
func (that *Verifier) Verify(assertion Assertion) (*entity.Player, error) {
	hash, ok := assertion[FieldHash].(string)
	if !ok || hash == "" {
		return nil, fmt.Errorf("%w: missing hash", apperror.ErrInvalidAssertion)
	}

	if !hmac.Equal([]byte(that.Sign(assertion)), []byte(hash)) {
		return nil, fmt.Errorf("%w: signature mismatch", apperror.ErrInvalidAssertion)
	}

	authDate, err := strconv.ParseInt(formatValue(assertion[FieldAuthDate]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad %s: %w", apperror.ErrInvalidAssertion, FieldAuthDate, err)
	}

	// auth_date has whole-second precision
	age := that.now().Unix() - authDate
	if age > int64(that.maxAge/time.Second) {
		return nil, fmt.Errorf("%w: %w: issued %ds ago", apperror.ErrInvalidAssertion, apperror.ErrAssertionExpired, age)
	}

	player := playerFrom(assertion)
	if player.ID == "" {
		return nil, fmt.Errorf("%w: missing id", apperror.ErrInvalidAssertion)
	}

	return player, nil
}

func (that *Verifier) Valid(assertion Assertion) bool {
	_, err := that.Verify(assertion)
	return err == nil
}

// Sign returns the hex signature the provider should have put in the hash field.
func (that *Verifier) Sign(assertion Assertion) string {
	mac := hmac.New(sha256.New, that.key)
	mac.Write([]byte(CheckString(assertion)))

	return hex.EncodeToString(mac.Sum(nil))
}

// CheckString builds the signed message: every field except hash, sorted by key.
func CheckString(assertion Assertion) string {
	keys := make([]string, 0, len(assertion))
	for key := range assertion {
		if key != FieldHash {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, key+"="+formatValue(assertion[key]))
	}

	return strings.Join(lines, "\n")
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

func playerFrom(assertion Assertion) *entity.Player {
	field := func(key string) string {
		if value, ok := assertion[key]; ok && value != nil {
			return formatValue(value)
		}
		return ""
	}

	return &entity.Player{
		ID:        field("id"),
		FirstName: field("first_name"),
		LastName:  field("last_name"),
		Username:  field("username"),
		PhotoURL:  field("photo_url"),
	}
}

func isPlaceholder(token string) bool {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return true
	}

	for _, placeholder := range placeholderTokens {
		if token == placeholder {
			return true
		}
	}
	return false
}
