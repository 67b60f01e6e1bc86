package ai

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// assistantPreamble frames every chat turn. The assistant stays generic
// and gives no medical diagnoses.
const assistantPreamble = "System: You are a helpful assistant. User: %s Assistant:"

// Assistant answers single-turn chat messages.
type Assistant struct {
	client *Client
}

// NewAssistant wires the chat assistant.
func NewAssistant(client *Client) *Assistant {
	return &Assistant{client: client}
}

// Reply sends the user's message to the model and returns the assistant's
// response text.
func (a *Assistant) Reply(ctx context.Context, userMessage string) (string, error) {
	userMessage = strings.TrimSpace(userMessage)
	if err := validation.Validate(userMessage, validation.Required, validation.Length(1, 4000)); err != nil {
		return "", err
	}
	return a.client.GenerateText(ctx, fmt.Sprintf(assistantPreamble, userMessage))
}
