package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
	"weekplanner/model"
)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta/models"
	geminiDefaultModel = "gemini-2.0-flash"
)

// ErrIncompleteDraft marks a model response missing required fields or
// carrying values outside the expected shape. The caller reports it and
// creates nothing; there is no partial draft.
var ErrIncompleteDraft = errors.New("ai draft is missing required fields")

// AIClient talks to the generative text service. Every call is a single
// request/response exchange; a failed call surfaces its error and is never
// retried.
type AIClient struct {
	apiKey  string
	modelID string
	baseURL string
	client  *http.Client
}

func NewAIClient(apiKey, modelID string) *AIClient {
	if modelID == "" {
		modelID = geminiDefaultModel
	}
	return &AIClient{
		apiKey:  apiKey,
		modelID: modelID,
		baseURL: geminiBaseURL,
		client:  &http.Client{},
	}
}

func NewAIClientFromEnv() *AIClient {
	return NewAIClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
}

type geminiRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   *responseSchema `json:"responseSchema,omitempty"`
}

// responseSchema is the expected-shape contract sent with each structured
// request: every field named with its primitive kind, plus the required set.
type responseSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]responseSchema `json:"properties,omitempty"`
	Items      *responseSchema           `json:"items,omitempty"`
	Required   []string                  `json:"required,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// draftPayload mirrors the schema requested from the model.
type draftPayload struct {
	Title       *string  `json:"title"`
	Date        *string  `json:"date"`       // YYYY-MM-DD
	StartTime   *string  `json:"start_time"` // HH:MM, 24h
	DurationMin *int     `json:"duration_min"`
	Category    *string  `json:"category"`
	Priority    *string  `json:"priority"`
	Subtasks    []string `json:"subtasks"`
	Notes       string   `json:"notes"`
}

var draftSchema = &responseSchema{
	Type: "OBJECT",
	Properties: map[string]responseSchema{
		"title":        {Type: "STRING"},
		"date":         {Type: "STRING"},
		"start_time":   {Type: "STRING"},
		"duration_min": {Type: "INTEGER"},
		"category":     {Type: "STRING"},
		"priority":     {Type: "STRING"},
		"subtasks":     {Type: "ARRAY", Items: &responseSchema{Type: "STRING"}},
		"notes":        {Type: "STRING"},
	},
	Required: []string{"title", "date", "start_time", "duration_min", "category", "priority", "subtasks"},
}

// DraftTask turns a free-text prompt into an unsaved task draft. The user
// reviews and explicitly saves it; nothing is persisted here.
func (a *AIClient) DraftTask(ctx context.Context, prompt string, now time.Time) (model.Task, error) {
	instruction := fmt.Sprintf(
		"You are a weekly planner assistant. Today is %s (%s). "+
			"Turn the following request into a single task. "+
			"Category must be one of personal, work, health, study, admin. "+
			"Priority must be one of high, medium, low. "+
			"Use date format YYYY-MM-DD and 24h start_time HH:MM.\n\nRequest: %s",
		now.Format("2006-01-02"), now.Weekday(), prompt,
	)

	raw, err := a.generate(ctx, instruction, draftSchema)
	if err != nil {
		return model.Task{}, err
	}

	var payload draftPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return model.Task{}, fmt.Errorf("%w: %v", ErrIncompleteDraft, err)
	}
	if payload.Title == nil || payload.Date == nil || payload.StartTime == nil ||
		payload.DurationMin == nil || payload.Category == nil || payload.Priority == nil ||
		payload.Subtasks == nil {
		return model.Task{}, ErrIncompleteDraft
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", *payload.Date+" "+*payload.StartTime, now.Location())
	if err != nil {
		return model.Task{}, fmt.Errorf("%w: bad date or start_time", ErrIncompleteDraft)
	}
	if *payload.Title == "" || !model.ValidCategory(*payload.Category) || !model.ValidPriority(*payload.Priority) {
		return model.Task{}, ErrIncompleteDraft
	}
	duration := *payload.DurationMin
	if duration <= 0 {
		duration = 30
	}

	return model.Task{
		Title:       *payload.Title,
		StartAt:     start,
		EndAt:       start.Add(time.Duration(duration) * time.Minute),
		DurationMin: duration,
		Category:    *payload.Category,
		Priority:    *payload.Priority,
		Subtasks:    payload.Subtasks,
		Notes:       payload.Notes,
	}, nil
}

// SuggestSubtasks asks the model for a short checklist for the given title
// and parses the reply into discrete items.
func (a *AIClient) SuggestSubtasks(ctx context.Context, title string) ([]string, error) {
	instruction := fmt.Sprintf(
		"Suggest 3 to 6 concrete subtasks for the task %q. "+
			"Reply with one subtask per line and nothing else.", title,
	)

	raw, err := a.generate(ctx, instruction, nil)
	if err != nil {
		return nil, err
	}

	items := ParseSubtaskLines(raw)
	if len(items) == 0 {
		return nil, fmt.Errorf("ai returned no usable subtasks")
	}
	return items, nil
}

// ParseSubtaskLines splits a suggestion block into items, stripping list
// markers like "-", "*" and "1.".
func ParseSubtaskLines(raw string) []string {
	var items []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		if i := strings.IndexByte(line, '.'); i > 0 && i <= 2 && isDigits(line[:i]) {
			line = strings.TrimSpace(line[i+1:])
		}
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func (a *AIClient) generate(ctx context.Context, instruction string, schema *responseSchema) (string, error) {
	if a.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: instruction}}}},
	}
	if schema != nil {
		reqBody.GenerationConfig = &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", a.baseURL, a.modelID)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", a.apiKey)

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("ai request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read ai response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr geminiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("ai api error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("ai api error (%d): %s", resp.StatusCode, string(respBody))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode ai response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("ai returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
