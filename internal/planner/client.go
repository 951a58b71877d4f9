// Package planner talks to the external text-generation service that authors
// weekly intensity plans. Callers must treat every error as a signal to fall
// back to deterministic planning; the client makes a single attempt and never
// retries, to bound request latency.
package planner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

// TrendPoint is one day of readiness history given to the planner as context.
type TrendPoint struct {
	Date  time.Time
	Score int
}

// WorkoutSummary is one recent workout given to the planner as context.
type WorkoutSummary struct {
	Date   time.Time
	Name   string
	Rating *int
}

// PlanRequest carries everything the planner needs to author a week.
type PlanRequest struct {
	Today            time.Time
	TodayDow         int
	WeekStart        time.Time
	AvgReadiness     *int
	TodayScore       *int
	TodayIntensity   entity.Intensity
	ReadinessTrend   []TrendPoint
	RecentWorkouts   []WorkoutSummary
	ActiveProgram    string
	PreferredPeakDay *int
}

// Client generates a validated 7-day plan, or fails with ErrUnavailable /
// ErrInvalidOutput.
type Client interface {
	GeneratePlan(ctx context.Context, req PlanRequest) ([]entity.DayPlan, error)
}

type messagesClient struct {
	baseURL   string
	apiKey    string
	model     string
	maxTokens int
	http      *http.Client
}

// NewClientFromEnv builds a Client against an Anthropic-style messages API.
// Returns ErrUnavailable when no API key is configured.
func NewClientFromEnv() (Client, error) {
	apiKey := strings.TrimSpace(os.Getenv("PLANNER_API_KEY"))
	if apiKey == "" {
		return nil, ErrUnavailable
	}

	baseURL := strings.TrimSpace(os.Getenv("PLANNER_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	model := strings.TrimSpace(os.Getenv("PLANNER_MODEL"))
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}

	timeoutSec := 30
	if v := os.Getenv("PLANNER_TIMEOUT_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed > 0 {
			timeoutSec = parsed
		}
	}

	return &messagesClient{
		baseURL:   baseURL,
		apiKey:    apiKey,
		model:     model,
		maxTokens: 1024,
		http: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
	}, nil
}

// NewClientWithHTTP is like NewClientFromEnv but with explicit parameters.
// Used by tests against a stub server.
func NewClientWithHTTP(baseURL, apiKey, model string, httpClient *http.Client) Client {
	return &messagesClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		model:     model,
		maxTokens: 1024,
		http:      httpClient,
	}
}

type messagesRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []promptMessage `json:"messages"`
}

type promptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (c *messagesClient) GeneratePlan(ctx context.Context, req PlanRequest) ([]entity.DayPlan, error) {
	body := messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []promptMessage{
			{Role: "user", Content: buildPrompt(req)},
		},
	}
	payload, err := sonic.ConfigDefault.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %v", ErrUnavailable, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var parsed messagesResponse
	if err := sonic.ConfigDefault.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	var text string
	for _, block := range parsed.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	if text == "" {
		return nil, fmt.Errorf("%w: empty completion", ErrInvalidOutput)
	}

	return ExtractPlan(text)
}
