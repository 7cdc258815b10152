package repository

import (
	"context"
	"fmt"

	"github.com/ayush6624/go-chatgpt"
)

// GptRepository is a thin passthrough to the chat completion API. No
// portfolio context is attached to the conversation.
type GptRepository interface {
	Chat(ctx context.Context, message string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	if apiKey == "" {
		// run without a client; Chat degrades to a canned reply
		return gptRepositoryHandler{}, nil
	}

	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

func (h gptRepositoryHandler) Chat(ctx context.Context, message string) (string, error) {
	if h.GptClient == nil {
		return "Chat assistant unavailable - no api key configured.", nil
	}

	response, err := h.GptClient.SimpleSend(ctx, message)
	if err != nil {
		return "", fmt.Errorf("failed to send chat message: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return response.Choices[0].Message.Content, nil
}
