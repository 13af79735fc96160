package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const (
	DefaultAPIURL  = "https://api.telegram.org"
	DefaultTimeout = 10 * time.Second
)

// Client talks to the Telegram Bot API on behalf of one bot.
type Client struct {
	api *bot.Bot
}

func NewClient(apiURL, botToken string, timeout time.Duration) (*Client, error) {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	api, err := bot.New(botToken,
		bot.WithServerURL(strings.TrimRight(apiURL, "/")),
		bot.WithHTTPClient(timeout, &http.Client{Timeout: timeout}),
		bot.WithSkipGetMe(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot api client: %w", err)
	}

	return &Client{api: api}, nil
}

// SendMessage delivers an HTML formatted text to a private chat.
func (that *Client) SendMessage(ctx context.Context, chatID, text string) error {
	_, err := that.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return fmt.Errorf("failed to send message: %w", scrub(err))
	}

	return nil
}

// GetMe returns the bot username.
func (that *Client) GetMe(ctx context.Context) (string, error) {
	user, err := that.api.GetMe(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get bot info: %w", scrub(err))
	}

	return user.Username, nil
}

// scrub drops the request URL from transport errors, it carries the bot token.
func scrub(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s request: %w", urlErr.Op, urlErr.Err)
	}

	return err
}
