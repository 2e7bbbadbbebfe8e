package ai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trove/config"
	"trove/internal/domain/entity"
	domainerrors "trove/internal/domain/errors"
	"trove/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPlanner(t *testing.T, handler http.HandlerFunc) service.PlannerService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		OpenAI: &config.OpenAIConfig{
			APIKey:  "test-key",
			Model:   "gpt-4",
			BaseURL: server.URL,
			Timeout: 5 * time.Second,
		},
	}

	return NewOpenAIPlanner(cfg, testLogger())
}

func completionResponse(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

func testTrip() *entity.Trip {
	return &entity.Trip{
		Destination: "Tokyo, Japan",
		StartDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		Travelers:   entity.Travelers{Count: 2, Type: entity.TravelerTypeCouple},
		Budget:      entity.Budget{Amount: 3000, Currency: "USD", Type: entity.BudgetTierModerate},
	}
}

func TestOpenAIPlanner_NotConfigured(t *testing.T) {
	planner := NewOpenAIPlanner(&config.Config{}, testLogger())
	assert.False(t, planner.Configured())

	_, err := planner.GenerateItinerary(context.Background(), testTrip())
	assert.ErrorIs(t, err, domainerrors.ErrPlannerNotConfigured)

	_, err = planner.SuggestActivities(context.Background(), &service.SuggestionRequest{Destination: "Paris"})
	assert.ErrorIs(t, err, domainerrors.ErrPlannerNotConfigured)

	_, err = planner.Recommend(context.Background(), &service.RecommendationRequest{Destination: "Paris"})
	assert.ErrorIs(t, err, domainerrors.ErrPlannerNotConfigured)
}

func TestOpenAIPlanner_GenerateItinerary(t *testing.T) {
	draft := map[string]any{
		"name":        "Tokyo Adventure",
		"description": "Four days in Tokyo",
		"days": []map[string]any{
			{
				"date":      "2026-10-01",
				"dayNumber": 1,
				"activities": []map[string]any{
					{
						"name":      "Senso-ji Temple",
						"startTime": "09:00",
						"endTime":   "11:00",
						"duration":  120,
						"category":  "attraction",
						"priority":  "must-see",
					},
				},
			},
		},
		"totalCost": map[string]any{"amount": 1500, "currency": "USD"},
	}
	draftJSON, err := json.Marshal(draft)
	require.NoError(t, err)

	var captured chatRequest
	planner := newTestPlanner(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(completionResponse(string(draftJSON)))
	})

	result, err := planner.GenerateItinerary(context.Background(), testTrip())
	require.NoError(t, err)
	assert.Equal(t, "Tokyo Adventure", result.Name)
	require.Len(t, result.Days, 1)
	assert.Equal(t, 1, result.Days[0].DayNumber)
	require.Len(t, result.Days[0].Activities, 1)
	assert.Equal(t, "Senso-ji Temple", result.Days[0].Activities[0].Name)

	assert.Equal(t, "gpt-4", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[1].Content, "4-day travel itinerary for Tokyo, Japan")
	assert.Contains(t, captured.Messages[1].Content, "2 couple traveler(s)")
	assert.InDelta(t, 0.7, captured.Temperature, 0.001)
}

func TestOpenAIPlanner_GenerateItineraryInvalidJSON(t *testing.T) {
	planner := newTestPlanner(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionResponse("Sure! Here is your itinerary: ..."))
	})

	_, err := planner.GenerateItinerary(context.Background(), testTrip())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.KindExternal, appErr.Kind())
	assert.Equal(t, "Invalid response format from AI", appErr.Message())
}

func TestOpenAIPlanner_UpstreamError(t *testing.T) {
	planner := newTestPlanner(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limited", "type": "rate_limit_error"},
		})
	})

	_, err := planner.GenerateItinerary(context.Background(), testTrip())
	assert.ErrorIs(t, err, domainerrors.ErrPlannerUnavailable)
}

func TestOpenAIPlanner_SuggestActivities(t *testing.T) {
	payload := map[string]any{
		"suggestions": []map[string]any{
			{
				"name":        "Louvre Museum",
				"description": "World-famous art museum",
				"category":    "attraction",
				"estimatedCost": map[string]any{
					"amount":   22,
					"currency": "EUR",
				},
				"duration": 180,
				"priority": "must-see",
			},
		},
	}
	payloadJSON, err := json.Marshal(payload)
	require.NoError(t, err)

	var captured chatRequest
	planner := newTestPlanner(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(completionResponse(string(payloadJSON)))
	})

	suggestions, err := planner.SuggestActivities(context.Background(), &service.SuggestionRequest{
		Destination: "Paris",
		Interests:   []string{"art", "food"},
		Budget:      &entity.Cost{Amount: 500, Currency: "EUR"},
	})
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Louvre Museum", suggestions[0].Name)
	assert.Equal(t, entity.ActivityCategoryAttraction, suggestions[0].Category)

	assert.Contains(t, captured.Messages[1].Content, "Suggest 8-10 activities for Paris")
	assert.Contains(t, captured.Messages[1].Content, "Interests: art, food")
	assert.Contains(t, captured.Messages[1].Content, "Budget: $500 EUR")
}

func TestOpenAIPlanner_Recommend(t *testing.T) {
	payload := map[string]any{
		"recommendations": map[string]any{
			"bestTimeToVisit": "Spring",
			"weather":         "Mild",
			"tips":            []string{"Carry cash"},
		},
	}
	payloadJSON, err := json.Marshal(payload)
	require.NoError(t, err)

	planner := newTestPlanner(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionResponse(string(payloadJSON)))
	})

	recs, err := planner.Recommend(context.Background(), &service.RecommendationRequest{
		Destination: "Kyoto",
		TripType:    "general",
		BudgetTier:  "moderate",
	})
	require.NoError(t, err)
	assert.Equal(t, "Spring", recs.BestTimeToVisit)
	assert.Equal(t, []string{"Carry cash"}, recs.Tips)
}

func TestOpenAIPlanner_EmptyChoices(t *testing.T) {
	planner := newTestPlanner(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := planner.SuggestActivities(context.Background(), &service.SuggestionRequest{Destination: "Rome"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "No response from AI", appErr.Message())
}
