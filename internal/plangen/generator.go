// Package plangen generates workout plans from a configuration snapshot,
// either through the OpenAI API or through a deterministic built-in
// fallback when no API key is configured or the API call fails.
package plangen

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/harjula/fitadvisor/internal/errors"
	"github.com/harjula/fitadvisor/internal/workout"
)

// Request carries everything the generator needs to produce a plan.
type Request struct {
	Profile         workout.UserProfile `json:"profile"`
	DurationMinutes int                 `json:"duration_minutes"`
	Focus           workout.FocusType   `json:"focus"`
	EnergyLevel     int                 `json:"energy_level,omitempty"`
	Equipment       []string            `json:"equipment,omitempty"`
	TargetAreas     []string            `json:"target_areas,omitempty"`
	SoreAreas       []string            `json:"sore_areas,omitempty"`
}

// Service generates workout plans.
type Service struct {
	client   *openai.Client
	model    openai.ChatModel
	logger   *slog.Logger
	fallback bool
}

// NewService creates a plan generator. An empty API key switches the service
// into fallback-only mode.
func NewService(openaiAPIKey string, logger *slog.Logger) *Service {
	if openaiAPIKey == "" {
		logger.Warn("no OpenAI API key configured, plan generation uses the built-in fallback")
		return &Service{
			client:   nil,
			model:    "",
			logger:   logger,
			fallback: true,
		}
	}

	client := openai.NewClient(option.WithAPIKey(openaiAPIKey))

	return &Service{
		client:   &client,
		model:    openai.ChatModelGPT4o,
		logger:   logger,
		fallback: false,
	}
}

// Generate produces a workout plan for the request. API failures degrade
// to the fallback plan so a plan is always returned.
func (s *Service) Generate(ctx context.Context, req Request) (workout.Plan, error) {
	if err := validateRequest(req); err != nil {
		return workout.Plan{}, errors.Wrap(err, "validate plan request")
	}

	if s.fallback {
		return fallbackPlan(req), nil
	}

	plan, err := s.generateWithAPI(ctx, req)
	if err != nil {
		s.logger.WarnContext(ctx, "plan generation via API failed, using fallback",
			errors.SlogError(err))
		return fallbackPlan(req), nil
	}

	return plan, nil
}

func validateRequest(req Request) error {
	if req.DurationMinutes <= 0 {
		return errors.New("duration must be positive")
	}

	if req.Focus == "" {
		return errors.New("focus is required")
	}

	return nil
}

func (s *Service) generateWithAPI(ctx context.Context, req Request) (workout.Plan, error) {
	prompt := buildPrompt(req)

	s.logger.DebugContext(ctx, "sending plan generation request",
		"model", s.model,
		"duration_minutes", req.DurationMinutes,
		"focus", req.Focus)

	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: s.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return workout.Plan{}, errors.Wrap(err, "chat completion")
	}

	if len(completion.Choices) == 0 {
		return workout.Plan{}, errors.New("chat completion returned no choices")
	}

	plan, err := parsePlan(completion.Choices[0].Message.Content)
	if err != nil {
		return workout.Plan{}, errors.Wrap(err, "parse generated plan")
	}

	if err := validatePlan(plan, req); err != nil {
		return workout.Plan{}, errors.Wrap(err, "validate generated plan")
	}

	return plan, nil
}

const systemPrompt = `You are an expert personal trainer who designs safe, effective workout sessions. You respond with a single JSON object describing the session and nothing else. The JSON object has the fields: title, description, reasoning, difficulty (beginner, intermediate, or advanced), total_duration_minutes, focus, equipment, target_areas, warm_up, main_workout, and cool_down. Each phase has a name, duration_minutes, and a list of exercises with name, duration_seconds, and optional sets, reps, equipment, and target_muscles.`

func buildPrompt(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Design a %d minute %s workout.\n", req.DurationMinutes, req.Focus)
	fmt.Fprintf(&b, "Fitness level: %s.\n", req.Profile.FitnessLevel)

	if len(req.Profile.Goals) > 0 {
		fmt.Fprintf(&b, "Goals: %s.\n", strings.Join(req.Profile.Goals, ", "))
	}

	if len(req.Equipment) > 0 {
		fmt.Fprintf(&b, "Available equipment: %s.\n", strings.Join(req.Equipment, ", "))
	} else {
		b.WriteString("No equipment is available, use bodyweight exercises only.\n")
	}

	if len(req.TargetAreas) > 0 {
		fmt.Fprintf(&b, "Target areas: %s.\n", strings.Join(req.TargetAreas, ", "))
	}

	if len(req.SoreAreas) > 0 {
		fmt.Fprintf(&b, "The following areas are sore and must not be loaded: %s.\n",
			strings.Join(req.SoreAreas, ", "))
	}

	if len(req.Profile.Injuries) > 0 {
		fmt.Fprintf(&b, "Avoid aggravating these injuries: %s.\n",
			strings.Join(req.Profile.Injuries, ", "))
	}

	if len(req.Profile.MobilityLimitations) > 0 {
		fmt.Fprintf(&b, "Respect these mobility limitations: %s.\n",
			strings.Join(req.Profile.MobilityLimitations, ", "))
	}

	if req.EnergyLevel > 0 {
		fmt.Fprintf(&b, "Reported energy level: %d out of 10.\n", req.EnergyLevel)
	}

	b.WriteString("Include a warm-up and a cool-down phase sized to the total duration.")

	return b.String()
}

// parsePlan unmarshals the model response, tolerating a fenced code block
// around the JSON object.
func parsePlan(content string) (workout.Plan, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var plan workout.Plan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		return workout.Plan{}, errors.Wrap(err, "unmarshal plan",
			slog.Int("content_length", len(content)))
	}

	return plan, nil
}

func validatePlan(plan workout.Plan, req Request) error {
	if plan.Title == "" {
		return errors.New("generated plan has no title")
	}

	if len(plan.MainWorkout.Exercises) == 0 {
		return errors.New("generated plan has no main workout exercises")
	}

	if plan.TotalDurationMinutes <= 0 {
		return errors.New("generated plan has no duration")
	}

	// A plan wildly off the requested length is worse than the fallback.
	if absDiff(plan.TotalDurationMinutes, req.DurationMinutes) > req.DurationMinutes/2 {
		return errors.New("generated plan duration is too far from requested")
	}

	return nil
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}
