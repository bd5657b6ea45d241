package brief

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"focusarena/internal/game"
)

// ErrMissingAPIKey is returned when no Gemini credential is configured.
var ErrMissingAPIKey = errors.New("missing Gemini API key")

// defaultModels is the fallback chain: if the first model errors, the next
// one gets the same prompt.
var defaultModels = []string{"gemini-2.0-flash", "gemini-1.5-flash"}

// Gemini implements Provider on the Google GenAI API.
type Gemini struct {
	client *genai.Client
	models []string
	log    *zap.Logger
}

// NewGemini creates the provider. An empty key fails fast so the caller can
// show a neutral "configure your key" message instead of a network error.
func NewGemini(ctx context.Context, apiKey, model string, log *zap.Logger) (*Gemini, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if log == nil {
		log = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	models := defaultModels
	if strings.TrimSpace(model) != "" {
		models = append([]string{model}, defaultModels...)
	}

	return &Gemini{client: client, models: models, log: log}, nil
}

// generate runs the prompt through the model chain and returns the first
// non-empty response text.
func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for _, model := range g.models {
		result, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
		if err != nil {
			g.log.Warn("model call failed, trying next", zap.String("model", model), zap.Error(err))
			lastErr = err
			continue
		}
		text := result.Text()
		if text == "" {
			lastErr = fmt.Errorf("model %s returned empty response", model)
			continue
		}
		return text, nil
	}
	if lastErr == nil {
		lastErr = errors.New("no models configured")
	}
	return "", fmt.Errorf("all models failed: %w", lastErr)
}

func orRandom(v, choices string) string {
	if v == "" || strings.EqualFold(v, "random") {
		return "pick one at random from: " + choices
	}
	return v
}

// MissionBrief asks for a complete creative brief plus a day-by-day workflow.
func (g *Gemini) MissionBrief(ctx context.Context, sector, projectType, style string) (*MissionBrief, error) {
	prompt := fmt.Sprintf(`Act as a senior project manager at a creative agency specialized in fast social-media content.
Generate a complete creative brief AND a dynamic production plan (RPG-quest style) for a freelance 3D artist.

PARAMETERS:
- Sector: %s
- Project type: %s
- Visual style: %s

GAME MECHANICS:
- Assign a bounty (fictional euro value) to each step.
- The whole mission should total roughly 1500 to 3000.

TIME CONSTRAINTS (social content):
- Total duration between 2 and 10 days maximum.
- Identify the rush days.

STRICT CONTENT FILTER: no alcohol, gambling, nudity or offensive religious imagery.

Respond ONLY with a valid JSON object with exactly this structure:
{
  "brandName": "short modern name",
  "productName": "precise business type",
  "sector": "exact sector",
  "artDirection": "3 comma-separated keywords including the visual style",
  "moodDescription": "short storytelling, 2 sentences max",
  "technicalChallenge": "one 3D technical challenge (e.g. liquid, cloth, glass)",
  "deliverables": ["4K render", "loop animation"],
  "colorPalette": ["#HEX1", "#HEX2"],
  "projectType": "packaging|identity|motion|logo",
  "smartWorkflow": {
      "estimatedDuration": 5,
      "totalBounty": 2500,
      "rushReason": "why those days hurt",
      "rushDays": [3, 4],
      "steps": [
          { "day": 0, "title": "Research & moodboard", "category": "biz", "xp": 20, "value": 200 },
          { "day": 4, "title": "Publish on Instagram", "category": "social", "xp": 30, "value": 0 }
      ]
  }
}
Step categories must be one of: biz, prod, sale, social.`,
		orRandom(sector, "fashion, beverage, cosmetics, tech, food"),
		orRandom(projectType, "packaging, logo, identity, motion"),
		orRandom(style, "minimal, y2k, acid, luxury"))

	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return decodeMission(raw)
}

// GrowthTactics asks for an immediate action plan against the social goal.
// When the goal is already achieved the model may propose a replacement goal.
func (g *Gemini) GrowthTactics(ctx context.Context, goal game.SocialGoal) (*GrowthTactics, error) {
	status := "IN PROGRESS"
	if goal.IsAchieved {
		status = "ACHIEVED"
	}

	prompt := fmt.Sprintf(`You are a non-conversational tactical growth engine for a high-end freelance 3D artist.

CURRENT CONTEXT:
- Social goal: %d / %d followers on %s.
- Status: %s.

YOUR MISSION: generate an immediate action plan for today.

IF THE GOAL IS ACHIEVED:
- Propose a NEW, more ambitious goal (bigger target or a platform switch).
- Generate 3 tasks to celebrate or launch that new goal.

IF THE GOAL IS IN PROGRESS:
- Generate 3 concrete tasks (mix of sale/social) that push toward the goal.
- Do NOT propose a new goal.

RESPONSE FORMAT (STRICT JSON ONLY):
{
  "tasks": [
    { "title": "short actionable title", "cat": "social", "xp": 50, "value": 0, "description": "exactly what to do" }
  ],
  "newGoal": { "target": 50, "platform": "LinkedIn", "message": "short rallying message" }
}
"cat" must be "sale" or "social". "newGoal" only when the goal is achieved. Platform is one of Instagram, LinkedIn, Behance.`,
		goal.Current, goal.Target, goal.Platform, status)

	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return decodeTactics(raw)
}

// BossBattle asks for an end-of-month prestige challenge.
func (g *Gemini) BossBattle(ctx context.Context) (*BossBattle, error) {
	prompt := `URGENT: it is the end of the month. Generate a BOSS BATTLE for a freelance 3D artist.
It is the ultimate challenge to gain a prestige level.

The theme must be epic (e.g. "The Server Crash", "The Ghost Client", "The Impossible Deadline").

Generate 3 VERY HARD tasks, each doable within 24 hours.
Very high XP (200+). Zero monetary value (this is for glory and prestige).

STRICT JSON FORMAT:
{
  "title": "boss name",
  "description": "dramatic description of the situation",
  "tasks": [
    { "title": "task 1", "xp": 300, "value": 0 },
    { "title": "task 2", "xp": 300, "value": 0 },
    { "title": "task 3", "xp": 500, "value": 0 }
  ]
}`

	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return decodeBoss(raw)
}

// Close releases the underlying client. The genai client holds no
// resources that need releasing, so this is a no-op.
func (g *Gemini) Close() error {
	return nil
}
