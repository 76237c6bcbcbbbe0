package core

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Custom errors for the RecipeService
var (
	ErrEmptyPrompt       = errors.New("prompt is required")
	ErrRecipeUnavailable = errors.New("recipe service is not configured")
	ErrRecipeRemote      = errors.New("recipe service request failed")
)

const mistralChatCompletionsURL = "https://api.mistral.ai/v1/chat/completions"

const recipeSystemPrompt = "You are a recipe expert. Provide simple, budget-friendly recipes using ingredients from the user's shopping list or preferences."

// recipeService implements the RecipeService interface as a stateless
// pass-through to the Mistral chat-completions API. No retry, no caching.
type recipeService struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewRecipeService creates a new RecipeService instance. An empty apiKey is
// allowed; calls will then fail with ErrRecipeUnavailable.
func NewRecipeService(apiKey, model string) RecipeService {
	return &recipeService{
		apiKey:     apiKey,
		model:      model,
		endpoint:   mistralChatCompletionsURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GetRecipe forwards the prompt to the chat-completions endpoint and
// returns the generated recipe text.
func (s *recipeService) GetRecipe(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	if s.apiKey == "" {
		return "", ErrRecipeUnavailable
	}

	payload := chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: recipeSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("Give me some easy recipes using items related to: %s", prompt)},
		},
		Temperature: 0.7,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %v", ErrRecipeRemote, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecipeRemote, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecipeRemote, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", ErrRecipeRemote, resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("%w: malformed response: %v", ErrRecipeRemote, err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: response contained no choices", ErrRecipeRemote)
	}

	return completion.Choices[0].Message.Content, nil
}
