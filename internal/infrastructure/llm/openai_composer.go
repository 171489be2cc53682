package llm

import (
	"context"
	"log"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase/interfaces"

	openai "github.com/sashabaranov/go-openai"
)

const (
	composerTemperature = 0.7
	composerMaxTokens   = 150
)

// MessageComposer phrases handler instructions as a natural reply.
type MessageComposer struct {
	client *Client
}

var _ interfaces.IMessageComposer = (*MessageComposer)(nil)

func NewMessageComposer(client *Client) *MessageComposer {
	return &MessageComposer{client: client}
}

func (c *MessageComposer) Compose(ctx context.Context, history []entities.Turn, instruction string) (string, error) {
	msgs := historyMessages(history)
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: instruction})

	text, err := c.client.complete(ctx, openai.ChatCompletionRequest{
		Messages:    msgs,
		Temperature: composerTemperature,
		MaxTokens:   composerMaxTokens,
	})
	if err != nil {
		log.Printf("[llm][composer] completion failed err=%v", err)
		return "", err
	}
	return text, nil
}
