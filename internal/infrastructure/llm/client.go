package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"mcbot/internal/domain/entities"
	"mcbot/internal/infrastructure/config"

	openai "github.com/sashabaranov/go-openai"
)

var ErrMissingAPIKey = errors.New("missing OPENAI_API_KEY")

// errEmptyCompletion is returned when the model answers with no choices.
var errEmptyCompletion = errors.New("empty completion")

// Client wraps one OpenAI chat-completions client shared by the parser and the composer.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

func NewClient(cfg config.OpenAI) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	return &Client{
		api:     openai.NewClientWithConfig(oc),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

// complete runs one chat completion bounded by the configured timeout and returns the
// trimmed text of the first choice.
func (c *Client) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	req.Model = c.model

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyCompletion
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// historyMessages maps session turns onto chat messages. Bot replies are sent back as
// assistant messages.
func historyMessages(history []entities.Turn) []openai.ChatCompletionMessage {
	msgs := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, t := range history {
		role := openai.ChatMessageRoleUser
		if t.Role == entities.RoleSystem {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: t.Content})
	}
	return msgs
}
