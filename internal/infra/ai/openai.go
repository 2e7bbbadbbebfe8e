// Package ai implements the itinerary planner on top of the OpenAI chat
// completions API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"trove/config"
	"trove/internal/domain/entity"
	domainerrors "trove/internal/domain/errors"
	"trove/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	plannerSystemPrompt = "You are a professional travel planner with deep knowledge of destinations worldwide. Create detailed, practical itineraries that consider budget, traveler preferences, and local insights."
	expertSystemPrompt  = "You are a travel expert with deep knowledge of destinations worldwide. Provide practical, diverse activity suggestions that match traveler interests and budget."
	adviceSystemPrompt  = "You are a travel expert providing practical advice for destinations worldwide."

	itineraryMaxTokens      = 4000
	suggestionsMaxTokens    = 2000
	recommendationMaxTokens = 1500

	temperature = 0.7
)

// OpenAIPlanner implements service.PlannerService using the OpenAI REST API.
type OpenAIPlanner struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewOpenAIPlanner creates a new OpenAI-backed planner. A missing API key is
// not an error at construction time; the planner reports itself unconfigured
// and every call fails with a classified error.
func NewOpenAIPlanner(cfg *config.Config, logger *slog.Logger) service.PlannerService {
	planner := &OpenAIPlanner{
		logger: logger,
	}
	if cfg.OpenAI != nil {
		planner.apiKey = cfg.OpenAI.APIKey
		planner.model = cfg.OpenAI.Model
		planner.baseURL = strings.TrimSuffix(cfg.OpenAI.BaseURL, "/")
		planner.httpClient = &http.Client{Timeout: cfg.OpenAI.Timeout}
	}
	if planner.model == "" {
		planner.model = "gpt-4"
	}
	if planner.baseURL == "" {
		planner.baseURL = "https://api.openai.com/v1"
	}
	if planner.httpClient == nil {
		planner.httpClient = &http.Client{}
	}

	if planner.apiKey == "" {
		logger.Warn("OpenAI API key not configured, AI features are disabled")
	}

	return planner
}

// Configured reports whether an API key is present.
func (p *OpenAIPlanner) Configured() bool {
	return p.apiKey != ""
}

// GenerateItinerary produces a day-by-day plan for the trip.
func (p *OpenAIPlanner) GenerateItinerary(ctx context.Context, trip *entity.Trip) (*service.ItineraryDraft, error) {
	if !p.Configured() {
		return nil, domainerrors.ErrPlannerNotConfigured
	}

	prompt := buildItineraryPrompt(trip)

	content, err := p.chat(ctx, plannerSystemPrompt, prompt, itineraryMaxTokens)
	if err != nil {
		return nil, err
	}

	draft := &service.ItineraryDraft{}
	if err := json.Unmarshal([]byte(content), draft); err != nil {
		p.logger.Error("failed to parse itinerary response", "error", err)

		return nil, domainerrors.ErrPlannerResponse.WithMessage("Invalid response format from AI")
	}

	return draft, nil
}

// SuggestActivities proposes activities for a destination.
func (p *OpenAIPlanner) SuggestActivities(ctx context.Context, req *service.SuggestionRequest) ([]service.ActivitySuggestion, error) {
	if !p.Configured() {
		return nil, domainerrors.ErrPlannerNotConfigured
	}

	prompt := buildSuggestionsPrompt(req)

	content, err := p.chat(ctx, expertSystemPrompt, prompt, suggestionsMaxTokens)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Suggestions []service.ActivitySuggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		p.logger.Error("failed to parse suggestions response", "error", err)

		return nil, domainerrors.ErrPlannerResponse.WithMessage("Invalid response format from AI")
	}

	return parsed.Suggestions, nil
}

// Recommend produces destination-level travel advice.
func (p *OpenAIPlanner) Recommend(ctx context.Context, req *service.RecommendationRequest) (*service.Recommendations, error) {
	if !p.Configured() {
		return nil, domainerrors.ErrPlannerNotConfigured
	}

	prompt := buildRecommendationsPrompt(req)

	content, err := p.chat(ctx, adviceSystemPrompt, prompt, recommendationMaxTokens)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Recommendations *service.Recommendations `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil || parsed.Recommendations == nil {
		p.logger.Error("failed to parse recommendations response", "error", err)

		return nil, domainerrors.ErrPlannerResponse.WithMessage("Invalid response format from AI")
	}

	return parsed.Recommendations, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// chat posts a completion request and returns the first choice's content.
func (p *OpenAIPlanner) chat(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	payload := chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "marshal chat request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "create chat request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Error("OpenAI request failed", "error", err)

		return "", domainerrors.ErrPlannerUnavailable
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domainerrors.ErrPlannerUnavailable
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		p.logger.Error("failed to decode OpenAI response", "status", resp.StatusCode)

		return "", domainerrors.ErrPlannerUnavailable
	}

	if resp.StatusCode != http.StatusOK {
		message := ""
		if parsed.Error != nil {
			message = parsed.Error.Message
		}
		p.logger.Error("OpenAI returned an error", "status", resp.StatusCode, "message", message)

		return "", domainerrors.ErrPlannerUnavailable
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", domainerrors.ErrPlannerResponse.WithMessage("No response from AI")
	}

	return parsed.Choices[0].Message.Content, nil
}

func buildItineraryPrompt(trip *entity.Trip) string {
	days := trip.DurationDays()
	startDate := trip.StartDate.Format("2006-01-02")
	endDate := trip.EndDate.Format("2006-01-02")

	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed %d-day travel itinerary for %s.\n\n", days, trip.Destination)
	b.WriteString("Travel Details:\n")
	fmt.Fprintf(&b, "- Duration: %d days\n", days)
	fmt.Fprintf(&b, "- Travelers: %d %s traveler(s)\n", trip.Travelers.Count, trip.Travelers.Type)
	fmt.Fprintf(&b, "- Budget: %s ($%.0f %s)\n", trip.Budget.Type, trip.Budget.Amount, trip.Budget.Currency)
	fmt.Fprintf(&b, "- Travel dates: %s to %s\n\n", startDate, endDate)
	b.WriteString(`Please create a JSON response with the following structure:
{
  "name": "Trip Name",
  "description": "Brief trip description",
  "days": [
    {
      "date": "YYYY-MM-DD",
      "dayNumber": 1,
      "activities": [
        {
          "name": "Activity name",
          "description": "Brief description",
          "location": {
            "name": "Location name",
            "address": "Full address if available"
          },
          "startTime": "HH:MM",
          "endTime": "HH:MM",
          "duration": 120,
          "category": "attraction|restaurant|transport|accommodation|activity|other",
          "cost": {
            "amount": 25,
            "currency": "USD"
          },
          "notes": "Additional notes",
          "isFlexible": true,
          "priority": "must-see|recommended|optional"
        }
      ],
      "notes": "Day summary notes",
      "weather": {
        "forecast": "Sunny/Cloudy/Rainy",
        "temperature": 22,
        "conditions": "Clear skies"
      }
    }
  ],
  "totalCost": {
    "amount": 1500,
    "currency": "USD"
  }
}

Guidelines:
- Include 3-5 activities per day
- Mix attractions, restaurants, and activities
- Consider the budget level (budget/moderate/premium/luxury)
- Include realistic costs
- Add weather information for each day
- Make activities appropriate for the traveler type
- Include must-see attractions and local recommendations
- Ensure activities are geographically logical
- Add helpful notes and tips`)

	return b.String()
}

func buildSuggestionsPrompt(req *service.SuggestionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest 8-10 activities for %s.\n\n", req.Destination)
	if len(req.Interests) != 0 {
		fmt.Fprintf(&b, "Interests: %s\n", strings.Join(req.Interests, ", "))
	}
	if req.Budget != nil {
		fmt.Fprintf(&b, "Budget: $%.0f %s\n", req.Budget.Amount, req.Budget.Currency)
	}
	b.WriteString(`
Please provide a JSON response with the following structure:
{
  "suggestions": [
    {
      "name": "Activity name",
      "description": "Brief description",
      "category": "attraction|restaurant|transport|accommodation|activity|other",
      "estimatedCost": {
        "amount": 25,
        "currency": "USD"
      },
      "duration": 120,
      "priority": "must-see|recommended|optional"
    }
  ]
}

Include a mix of:
- Must-see attractions
- Local restaurants and food experiences
- Cultural activities
- Outdoor activities
- Shopping and entertainment
- Transportation options
- Accommodation recommendations

Consider the destination's unique features and popular attractions.`)

	return b.String()
}

func buildRecommendationsPrompt(req *service.RecommendationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Provide travel recommendations for %s.\n\n", req.Destination)
	fmt.Fprintf(&b, "Trip Type: %s\n", req.TripType)
	fmt.Fprintf(&b, "Budget Level: %s\n", req.BudgetTier)
	b.WriteString(`
Please provide a JSON response with the following structure:
{
  "recommendations": {
    "bestTimeToVisit": "When to visit",
    "weather": "Typical weather conditions",
    "transportation": "Getting around tips",
    "accommodation": "Where to stay recommendations",
    "food": "Local cuisine highlights",
    "safety": "Safety tips",
    "budget": "Budget considerations",
    "packing": "What to pack",
    "tips": ["Tip 1", "Tip 2", "Tip 3"]
  }
}`)

	return b.String()
}
