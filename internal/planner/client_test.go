package planner_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"

	"github.com/fernvaleriano/coachpilot/internal/planner"
	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

func planRequest() planner.PlanRequest {
	score := 72
	avg := 68
	return planner.PlanRequest{
		Today:          time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		TodayDow:       3,
		WeekStart:      time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		AvgReadiness:   &avg,
		TodayScore:     &score,
		TodayIntensity: entity.IntensityHard,
	}
}

func TestGeneratePlanSuccess(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.NotEmpty(t, r.Header.Get("anthropic-version"))

		var req map[string]any
		err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Equal(t, "test-model", req["model"])

		resp, err := sonic.ConfigDefault.Marshal(map[string]any{
			"content": []map[string]string{
				{"type": "text", "text": "```json\n" + validPlanJSON + "\n```"},
			},
		})
		assert.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		w.Write(resp)
	}))
	defer stub.Close()

	client := planner.NewClientWithHTTP(stub.URL, "test-key", "test-model", stub.Client())
	plan, err := client.GeneratePlan(context.Background(), planRequest())
	assert.NoError(t, err)
	assert.Len(t, plan, 7)
	assert.Equal(t, entity.IntensityRest, plan[0].Intensity)
}

func TestGeneratePlanServerError(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer stub.Close()

	client := planner.NewClientWithHTTP(stub.URL, "test-key", "test-model", stub.Client())
	_, err := client.GeneratePlan(context.Background(), planRequest())
	assert.ErrorIs(t, err, planner.ErrUnavailable)
}

func TestGeneratePlanEmptyCompletion(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content": []}`))
	}))
	defer stub.Close()

	client := planner.NewClientWithHTTP(stub.URL, "test-key", "test-model", stub.Client())
	_, err := client.GeneratePlan(context.Background(), planRequest())
	assert.ErrorIs(t, err, planner.ErrInvalidOutput)
}

func TestGeneratePlanUnreachable(t *testing.T) {
	client := planner.NewClientWithHTTP("http://127.0.0.1:1", "test-key", "test-model", &http.Client{Timeout: time.Second})
	_, err := client.GeneratePlan(context.Background(), planRequest())
	assert.ErrorIs(t, err, planner.ErrUnavailable)
}
