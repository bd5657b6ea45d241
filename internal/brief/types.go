// Package brief talks to the generative-AI collaborator that produces mission
// briefs, growth tactics and boss battles. The rest of the app treats it as
// always-fallible: every call returns a typed result or an explicit error,
// never a partial one.
package brief

import (
	"context"

	"focusarena/internal/game"
)

// Provider is the external brief-generation collaborator.
type Provider interface {
	MissionBrief(ctx context.Context, sector, projectType, style string) (*MissionBrief, error)
	GrowthTactics(ctx context.Context, goal game.SocialGoal) (*GrowthTactics, error)
	BossBattle(ctx context.Context) (*BossBattle, error)
}

// WorkflowStep is one day of a mission's production plan.
type WorkflowStep struct {
	Day         int           `json:"day"`
	Title       string        `json:"title"`
	Category    game.Category `json:"category"`
	XP          int           `json:"xp"`
	Value       int           `json:"value"`
	Description string        `json:"description,omitempty"`
}

// SmartWorkflow is the time-boxed step sequence of a mission brief.
type SmartWorkflow struct {
	EstimatedDuration int            `json:"estimatedDuration"`
	TotalBounty       int            `json:"totalBounty"`
	RushDays          []int          `json:"rushDays"`
	RushReason        string         `json:"rushReason"`
	Steps             []WorkflowStep `json:"steps"`
}

// MissionBrief is a complete AI-generated client brief plus its workflow.
type MissionBrief struct {
	BrandName          string        `json:"brandName"`
	ProductName        string        `json:"productName"`
	Sector             string        `json:"sector"`
	ArtDirection       string        `json:"artDirection"`
	MoodDescription    string        `json:"moodDescription"`
	TechnicalChallenge string        `json:"technicalChallenge"`
	Deliverables       []string      `json:"deliverables"`
	ColorPalette       []string      `json:"colorPalette"`
	ProjectType        string        `json:"projectType"`
	SmartWorkflow      SmartWorkflow `json:"smartWorkflow"`
}

// Tasks lays the workflow steps onto the calendar starting at start, all
// linked to the given project id with the brief's deadline.
func (b *MissionBrief) Tasks(start game.Date, projectID int64) []game.Task {
	deadline := start.AddDays(b.SmartWorkflow.EstimatedDuration)
	out := make([]game.Task, 0, len(b.SmartWorkflow.Steps))
	for _, s := range b.SmartWorkflow.Steps {
		out = append(out, game.Task{
			Title:        s.Title,
			Date:         start.AddDays(s.Day),
			Cat:          s.Category,
			XP:           s.XP,
			Value:        s.Value,
			ProjectID:    projectID,
			ProjectTitle: b.BrandName,
			Deadline:     deadline,
			Order:        s.Day,
		})
	}
	return out
}

// TacticTask is one ready-made task from a growth-tactic result.
type TacticTask struct {
	Title       string        `json:"title"`
	Cat         game.Category `json:"cat"`
	XP          int           `json:"xp"`
	Value       int           `json:"value"`
	Description string        `json:"description"`
}

// NewGoal is the optional replacement social goal a tactic run may propose
// once the current goal is achieved.
type NewGoal struct {
	Target   int    `json:"target"`
	Platform string `json:"platform"`
	Message  string `json:"message"`
}

// GrowthTactics is a short batch of immediate tasks for the social goal.
type GrowthTactics struct {
	Tasks   []TacticTask `json:"tasks"`
	NewGoal *NewGoal     `json:"newGoal,omitempty"`
}

// TaskList converts the tactic batch into tasks scheduled for today.
func (g *GrowthTactics) TaskList(today game.Date) []game.Task {
	out := make([]game.Task, 0, len(g.Tasks))
	for _, t := range g.Tasks {
		out = append(out, game.Task{
			Title: t.Title,
			Date:  today,
			Cat:   t.Cat,
			XP:    t.XP,
			Value: t.Value,
		})
	}
	return out
}

// BossTask is one step of a boss battle.
type BossTask struct {
	Title string `json:"title"`
	XP    int    `json:"xp"`
	Value int    `json:"value"`
}

// BossBattle is an end-of-month prestige challenge.
type BossBattle struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tasks       []BossTask `json:"tasks"`
}

// TaskList converts the battle into boss-flagged tasks for today. Boss work
// is for glory: xp only, no bounty, categorized as production work.
func (b *BossBattle) TaskList(today game.Date) []game.Task {
	out := make([]game.Task, 0, len(b.Tasks))
	for _, t := range b.Tasks {
		out = append(out, game.Task{
			Title:      t.Title,
			Date:       today,
			Cat:        game.CategoryProd,
			XP:         t.XP,
			Value:      t.Value,
			IsBossTask: true,
		})
	}
	return out
}
