package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kztJames01/makerSpace/internal/config"
)

// ChatMessage is a single message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AIChatClient calls an OpenAI-compatible chat completion API. Conversation
// history lives in the ai_messages table; callers pass the recent slice.
type AIChatClient struct {
	baseURL    string
	apiKey     string
	model      string
	maxHistory int
	httpClient *http.Client
}

func NewAIChatClient(cfg config.AIChatConfig) *AIChatClient {
	maxHistory := cfg.MaxHistory
	if maxHistory <= 0 {
		maxHistory = 20
	}
	return &AIChatClient{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		maxHistory: maxHistory,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

const systemPrompt = `You are the MakerSpace team assistant. You help student maker teams plan projects, break work into tasks, and answer questions about building things. Keep answers concise and practical.`

// MaxHistory reports how many prior exchanges the client wants as context.
func (c *AIChatClient) MaxHistory() int { return c.maxHistory }

// Chat sends the user message with prior thread history and returns the
// assistant reply.
func (c *AIChatClient) Chat(ctx context.Context, history []ChatMessage, userMessage string) (string, error) {
	if len(history) > c.maxHistory*2 {
		history = history[len(history)-c.maxHistory*2:]
	}
	messages := make([]ChatMessage, 0, len(history)+2)
	messages = append(messages, ChatMessage{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, ChatMessage{Role: "user", Content: userMessage})
	return c.callAPI(ctx, messages)
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *AIChatClient) callAPI(ctx context.Context, messages []ChatMessage) (string, error) {
	reqBody := chatRequest{
		Model:    c.model,
		Messages: messages,
	}
	bodyBytes, _ := json.Marshal(reqBody)

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call chat api: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBytes, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("chat api error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("chat api returned no choices")
	}
	return chatResp.Choices[0].Message.Content, nil
}
