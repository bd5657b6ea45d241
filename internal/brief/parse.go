package brief

import (
	"encoding/json"
	"fmt"
	"strings"

	"focusarena/internal/game"
)

// stripFences removes markdown code fences the model likes to wrap JSON in.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// decodeMission parses and validates a mission-brief response. Category
// validation happens here, at the boundary: a step with a category outside
// the closed set rejects the whole brief instead of leaking a free-form
// string into the snapshot.
func decodeMission(raw string) (*MissionBrief, error) {
	var b MissionBrief
	if err := json.Unmarshal([]byte(stripFences(raw)), &b); err != nil {
		return nil, fmt.Errorf("parse brief: %w", err)
	}
	if len(b.SmartWorkflow.Steps) == 0 {
		return nil, fmt.Errorf("brief has no workflow steps")
	}
	for i, s := range b.SmartWorkflow.Steps {
		if strings.TrimSpace(s.Title) == "" {
			return nil, fmt.Errorf("step %d has no title", i)
		}
		if !s.Category.IsValid() {
			return nil, fmt.Errorf("step %d has invalid category %q", i, s.Category)
		}
		if s.XP < 0 || s.Value < 0 {
			return nil, fmt.Errorf("step %d has negative reward", i)
		}
	}
	return &b, nil
}

// decodeTactics parses and validates a growth-tactic response. Tactic tasks
// are limited to the sale/social categories by contract.
func decodeTactics(raw string) (*GrowthTactics, error) {
	var g GrowthTactics
	if err := json.Unmarshal([]byte(stripFences(raw)), &g); err != nil {
		return nil, fmt.Errorf("parse tactics: %w", err)
	}
	if len(g.Tasks) == 0 {
		return nil, fmt.Errorf("tactics result has no tasks")
	}
	for i, t := range g.Tasks {
		if strings.TrimSpace(t.Title) == "" {
			return nil, fmt.Errorf("tactic %d has no title", i)
		}
		if t.Cat != game.CategorySale && t.Cat != game.CategorySocial {
			return nil, fmt.Errorf("tactic %d has invalid category %q", i, t.Cat)
		}
		if t.XP < 0 || t.Value < 0 {
			return nil, fmt.Errorf("tactic %d has negative reward", i)
		}
	}
	if g.NewGoal != nil {
		if g.NewGoal.Target <= 0 {
			return nil, fmt.Errorf("new goal target %d must be positive", g.NewGoal.Target)
		}
		if !game.Platform(g.NewGoal.Platform).IsValid() {
			return nil, fmt.Errorf("new goal has invalid platform %q", g.NewGoal.Platform)
		}
	}
	return &g, nil
}

// decodeBoss parses and validates a boss-battle response.
func decodeBoss(raw string) (*BossBattle, error) {
	var b BossBattle
	if err := json.Unmarshal([]byte(stripFences(raw)), &b); err != nil {
		return nil, fmt.Errorf("parse boss battle: %w", err)
	}
	if strings.TrimSpace(b.Title) == "" {
		return nil, fmt.Errorf("boss battle has no title")
	}
	if len(b.Tasks) == 0 {
		return nil, fmt.Errorf("boss battle has no tasks")
	}
	for i, t := range b.Tasks {
		if strings.TrimSpace(t.Title) == "" {
			return nil, fmt.Errorf("boss task %d has no title", i)
		}
		if t.XP < 0 || t.Value < 0 {
			return nil, fmt.Errorf("boss task %d has negative reward", i)
		}
	}
	return &b, nil
}
