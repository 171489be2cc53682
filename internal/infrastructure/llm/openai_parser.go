package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase/interfaces"

	openai "github.com/sashabaranov/go-openai"
)

const parserTemperature = 0.4

var errNoJSON = errors.New("no json object in response")

// OrderParser turns an utterance into a ParsedOrder with a JSON-mode chat completion.
type OrderParser struct {
	client *Client
}

var _ interfaces.IOrderParser = (*OrderParser)(nil)

func NewOrderParser(client *Client) *OrderParser {
	return &OrderParser{client: client}
}

// wireOrder is the JSON shape the prompt asks the model for.
type wireOrder struct {
	Items []struct {
		Name string `json:"name"`
		Type string `json:"type"`
		Size string `json:"size"`
	} `json:"items"`
	Intents []string `json:"intents"`
}

// Parse fails with interfaces.ErrParseFailure when the completion fails, times out or is
// not decodable.
func (p *OrderParser) Parse(ctx context.Context, message string, history []entities.Turn) (entities.ParsedOrder, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: orderParsingPrompt})
	msgs = append(msgs, historyMessages(history)...)
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: message})

	content, err := p.client.complete(ctx, openai.ChatCompletionRequest{
		Messages:    msgs,
		Temperature: parserTemperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		log.Printf("[llm][parser] completion failed err=%v", err)
		return entities.ParsedOrder{}, fmt.Errorf("%w: %v", interfaces.ErrParseFailure, err)
	}

	parsed, err := decodeOrder(content)
	if err != nil {
		log.Printf("[llm][parser] undecodable response=%q err=%v", content, err)
		return entities.ParsedOrder{}, fmt.Errorf("%w: %v", interfaces.ErrParseFailure, err)
	}
	log.Printf("[llm][parser] parsed items=%d intents=%v", len(parsed.Items), parsed.Intents)
	return parsed, nil
}

func decodeOrder(content string) (entities.ParsedOrder, error) {
	raw := extractJSON(content)
	if raw == "" {
		return entities.ParsedOrder{}, errNoJSON
	}

	var w wireOrder
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return entities.ParsedOrder{}, err
	}

	out := entities.ParsedOrder{
		Items:   make([]entities.Item, 0, len(w.Items)),
		Intents: make([]string, 0, len(w.Intents)),
	}
	for _, it := range w.Items {
		if strings.TrimSpace(it.Name) == "" {
			continue
		}
		out.Items = append(out.Items, entities.Item{
			Name:     strings.TrimSpace(it.Name),
			Category: entities.Category(strings.ToLower(strings.TrimSpace(it.Type))),
			Size:     entities.Size(strings.ToLower(strings.TrimSpace(it.Size))),
		})
	}
	for _, intent := range w.Intents {
		if intent = strings.TrimSpace(intent); intent != "" {
			out.Intents = append(out.Intents, intent)
		}
	}
	return out, nil
}

// extractJSON returns the outermost {...} span of text, or "" when there is none.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return ""
	}
	return text[start : end+1]
}
