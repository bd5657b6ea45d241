package game

import (
	"math"
	"sort"
)

// Derivations are pure and recomputed on demand from the canonical task list.
// None of them can fail: empty or odd input yields neutral zero values.

// LevelTier is one row of the fixed five-tier global level table.
type LevelTier struct {
	Rank  int
	Title string
	Min   int
	Next  int
}

// levelTiers is the global progression ladder. The last tier is open-ended;
// its Next only bounds the progress bar.
var levelTiers = []LevelTier{
	{Rank: 1, Title: "Junior", Min: 0, Next: 500},
	{Rank: 2, Title: "Freelance", Min: 500, Next: 1500},
	{Rank: 3, Title: "Closer", Min: 1500, Next: 3000},
	{Rank: 4, Title: "Machine", Min: 3000, Next: 5000},
	{Rank: 5, Title: "Boss", Min: 5000, Next: 99999},
}

// LevelInfo is the display-ready view of a total-XP value.
type LevelInfo struct {
	Rank            int
	Title           string
	ProgressPercent int
	Min             int
	Next            int
}

// LevelForXP maps total XP onto the five-tier ladder and the progress
// percentage toward the next threshold, clamped to [0,100].
func LevelForXP(xp int) LevelInfo {
	tier := levelTiers[0]
	for i := len(levelTiers) - 1; i >= 0; i-- {
		if xp >= levelTiers[i].Min {
			tier = levelTiers[i]
			break
		}
	}

	span := tier.Next - tier.Min
	pct := 0
	if span > 0 {
		pct = int(math.Round(float64(xp-tier.Min) / float64(span) * 100))
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	return LevelInfo{Rank: tier.Rank, Title: tier.Title, ProgressPercent: pct, Min: tier.Min, Next: tier.Next}
}

// PoolLevel is the per-pool sub-level shown on the profile summary
// (freelance/ethics). Deliberately a different scale than the global ladder.
func PoolLevel(poolXP int) int {
	return poolXP/500 + 1
}

// GlobalLevel is the coarse profile badge level.
func GlobalLevel(totalXP int) int {
	return totalXP/1000 + 1
}

// TasksOn returns the tasks scheduled on the given day, in insertion order.
func TasksOn(tasks []Task, day Date) []Task {
	var out []Task
	for _, t := range tasks {
		if t.Date == day {
			out = append(out, t)
		}
	}
	return out
}

// WeeklyXP sums XP of tasks completed on each of the trailing 7 calendar days
// ending at today, oldest first. A task counts toward its completedAt day,
// falling back to its scheduled date.
func WeeklyXP(tasks []Task, today Date) [7]int {
	var out [7]int
	for i := 0; i < 7; i++ {
		day := today.AddDays(i - 6)
		for _, t := range tasks {
			if t.Completed && t.CompletionDay() == day {
				out[i] += t.XP
			}
		}
	}
	return out
}

// WeeklyDays returns the date labels matching WeeklyXP's columns.
func WeeklyDays(today Date) [7]Date {
	var out [7]Date
	for i := 0; i < 7; i++ {
		out[i] = today.AddDays(i - 6)
	}
	return out
}

// CategoryStat is one row of the completed-task category breakdown.
type CategoryStat struct {
	Cat     Category
	Count   int
	Percent int
}

// CategoryBreakdown counts completed tasks per category as a rounded share of
// all completed tasks. The denominator floors at 1, so an empty list yields
// all-zero rows rather than dividing by zero.
func CategoryBreakdown(tasks []Task) []CategoryStat {
	total := 0
	counts := map[Category]int{}
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		total++
		counts[t.Cat]++
	}
	if total < 1 {
		total = 1
	}

	out := make([]CategoryStat, 0, len(Categories))
	for _, c := range Categories {
		n := counts[c]
		out = append(out, CategoryStat{
			Cat:     c,
			Count:   n,
			Percent: int(math.Round(float64(n) / float64(total) * 100)),
		})
	}
	return out
}

// ProjectSummary is the synthetic record derived from tasks sharing a
// projectId. Projects are emergent groupings, never stored entities.
type ProjectSummary struct {
	ProjectID       int64
	Title           string
	StartDate       Date
	Deadline        Date
	TotalXP         int
	TotalValue      int
	TotalSteps      int
	DoneSteps       int
	BasePercent     int
	ExtraPercent    int
	ProgressPercent int
}

// IsLate reports whether the project is overdue and unfinished as of today.
func (p ProjectSummary) IsLate(today Date) bool {
	return today > p.Deadline && p.ProgressPercent < 100
}

// Projects groups tasks by projectId: earliest task date becomes the start,
// the latest non-empty deadline becomes the project deadline, and progress is
// doneSteps/totalSteps plus the manual adjustment, clamped to [0,100].
// Sorted by deadline so the most urgent project lists first.
func Projects(tasks []Task, adjustments map[int64]int) []ProjectSummary {
	byID := map[int64]*ProjectSummary{}
	for _, t := range tasks {
		if t.ProjectID == 0 {
			continue
		}
		p, ok := byID[t.ProjectID]
		if !ok {
			title := t.ProjectTitle
			if title == "" {
				title = "Untitled Project"
			}
			deadline := t.Deadline
			if deadline == "" {
				deadline = t.Date
			}
			p = &ProjectSummary{
				ProjectID: t.ProjectID,
				Title:     title,
				StartDate: t.Date,
				Deadline:  deadline,
			}
			byID[t.ProjectID] = p
		}

		if t.Date < p.StartDate {
			p.StartDate = t.Date
		}
		if t.Deadline != "" && t.Deadline > p.Deadline {
			p.Deadline = t.Deadline
		}
		p.TotalXP += t.XP
		p.TotalValue += t.Value
		p.TotalSteps++
		if t.Completed {
			p.DoneSteps++
		}
	}

	out := make([]ProjectSummary, 0, len(byID))
	for _, p := range byID {
		base := int(math.Round(float64(p.DoneSteps) / float64(p.TotalSteps) * 100))
		extra := adjustments[p.ProjectID]
		p.BasePercent = base
		p.ExtraPercent = extra
		p.ProgressPercent = clampPercent(base + extra)
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Deadline < out[j].Deadline })
	return out
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
