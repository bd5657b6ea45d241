package game

import "testing"

func TestLevelForXPTiers(t *testing.T) {
	cases := []struct {
		xp        int
		wantRank  int
		wantTitle string
	}{
		{0, 1, "Junior"},
		{499, 1, "Junior"},
		{500, 2, "Freelance"},
		{1500, 3, "Closer"},
		{2999, 3, "Closer"},
		{3000, 4, "Machine"},
		{5000, 5, "Boss"},
		{250000, 5, "Boss"},
	}
	for _, tc := range cases {
		got := LevelForXP(tc.xp)
		if got.Rank != tc.wantRank || got.Title != tc.wantTitle {
			t.Fatalf("LevelForXP(%d) = rank %d %q, want %d %q", tc.xp, got.Rank, got.Title, tc.wantRank, tc.wantTitle)
		}
		if got.ProgressPercent < 0 || got.ProgressPercent > 100 {
			t.Fatalf("LevelForXP(%d) progress %d out of range", tc.xp, got.ProgressPercent)
		}
	}

	if got := LevelForXP(1000); got.ProgressPercent != 50 {
		t.Fatalf("progress at 1000xp = %d%%, want 50%% of tier 2", got.ProgressPercent)
	}
}

func TestPoolAndGlobalLevelsAreSeparateScales(t *testing.T) {
	if got := PoolLevel(0); got != 1 {
		t.Fatalf("PoolLevel(0)=%d, want 1", got)
	}
	if got := PoolLevel(1250); got != 3 {
		t.Fatalf("PoolLevel(1250)=%d, want 3", got)
	}
	if got := GlobalLevel(1250); got != 2 {
		t.Fatalf("GlobalLevel(1250)=%d, want 2", got)
	}
	// 1250 xp is tier 2 on the five-tier ladder; the formulas must not agree.
	if LevelForXP(1250).Rank == PoolLevel(1250) {
		t.Fatalf("pool level formula collapsed into the tier ladder")
	}
}

func TestTasksOn(t *testing.T) {
	tasks := []Task{
		{ID: 1, Date: "2026-08-28"},
		{ID: 2, Date: "2026-08-27"},
		{ID: 3, Date: "2026-08-28"},
	}
	got := TasksOn(tasks, "2026-08-28")
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("TasksOn = %+v", got)
	}
	if got := TasksOn(nil, "2026-08-28"); got != nil {
		t.Fatalf("TasksOn(nil) = %+v, want nil", got)
	}
}

func TestWeeklyXPUsesCompletionDayWithFallback(t *testing.T) {
	today := Date("2026-08-28")
	tasks := []Task{
		// Counts on its completedAt day, not its scheduled date.
		{ID: 1, Date: "2026-08-20", Cat: CategoryBiz, XP: 30, Completed: true, CompletedAt: "2026-08-26"},
		// No completedAt: falls back to date.
		{ID: 2, Date: "2026-08-26", Cat: CategoryBiz, XP: 20, Completed: true},
		// Incomplete tasks never count.
		{ID: 3, Date: "2026-08-26", Cat: CategoryBiz, XP: 500},
		// Outside the window.
		{ID: 4, Date: "2026-08-10", Cat: CategoryBiz, XP: 99, Completed: true, CompletedAt: "2026-08-10"},
		{ID: 5, Date: "2026-08-28", Cat: CategoryBiz, XP: 10, Completed: true, CompletedAt: "2026-08-28"},
	}

	got := WeeklyXP(tasks, today)
	want := [7]int{0, 0, 0, 0, 50, 0, 10}
	if got != want {
		t.Fatalf("WeeklyXP = %v, want %v", got, want)
	}

	days := WeeklyDays(today)
	if days[0] != "2026-08-22" || days[6] != today {
		t.Fatalf("WeeklyDays = %v", days)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	tasks := []Task{
		{ID: 1, Cat: CategorySale, Completed: true},
		{ID: 2, Cat: CategorySale, Completed: true},
		{ID: 3, Cat: CategorySocial, Completed: true},
		{ID: 4, Cat: CategoryProd}, // incomplete, ignored
	}

	stats := CategoryBreakdown(tasks)
	byCat := map[Category]CategoryStat{}
	for _, s := range stats {
		byCat[s.Cat] = s
	}

	if s := byCat[CategorySale]; s.Count != 2 || s.Percent != 67 {
		t.Fatalf("sale = %+v, want count 2 percent 67", s)
	}
	if s := byCat[CategorySocial]; s.Count != 1 || s.Percent != 33 {
		t.Fatalf("social = %+v, want count 1 percent 33", s)
	}
	if s := byCat[CategoryProd]; s.Count != 0 || s.Percent != 0 {
		t.Fatalf("prod = %+v, want zeros", s)
	}
}

func TestCategoryBreakdownEmptyIsNeutral(t *testing.T) {
	for _, s := range CategoryBreakdown(nil) {
		if s.Count != 0 || s.Percent != 0 {
			t.Fatalf("empty breakdown produced %+v", s)
		}
	}
}

func TestProjectAggregation(t *testing.T) {
	tasks := []Task{
		{ID: 1, Date: "2026-08-20", Cat: CategoryBiz, XP: 50, Value: 200, ProjectID: 7, ProjectTitle: "Neon Soda", Deadline: "2026-08-25", Completed: true},
		{ID: 2, Date: "2026-08-18", Cat: CategoryBiz, XP: 30, Value: 100, ProjectID: 7, Deadline: "2026-08-30"},
		{ID: 3, Date: "2026-08-28", Cat: CategorySale, XP: 10, ProjectID: 9, ProjectTitle: "Logo Sprint"},
		{ID: 4, Date: "2026-08-28", Cat: CategorySale, XP: 10}, // no project
	}

	got := Projects(tasks, map[int64]int{7: 10})
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2", len(got))
	}

	p := got[0] // deadline 2026-08-28 (task 3 falls back to its date)... sorted by deadline
	if p.ProjectID != 9 {
		t.Fatalf("sort by deadline broken: first=%d", p.ProjectID)
	}

	p = got[1]
	if p.ProjectID != 7 || p.Title != "Neon Soda" {
		t.Fatalf("project 7 = %+v", p)
	}
	if p.StartDate != "2026-08-18" || p.Deadline != "2026-08-30" {
		t.Fatalf("range = %s..%s", p.StartDate, p.Deadline)
	}
	if p.TotalXP != 80 || p.TotalValue != 300 || p.TotalSteps != 2 || p.DoneSteps != 1 {
		t.Fatalf("sums = %+v", p)
	}
	if p.BasePercent != 50 || p.ExtraPercent != 10 || p.ProgressPercent != 60 {
		t.Fatalf("progress = base %d extra %d total %d, want 50/10/60", p.BasePercent, p.ExtraPercent, p.ProgressPercent)
	}

	if !p.IsLate("2026-09-01") {
		t.Fatalf("expected late after deadline at 60%%")
	}
	if p.IsLate("2026-08-30") {
		t.Fatalf("deadline day itself is not late")
	}
}

func TestProjectProgressClamps(t *testing.T) {
	tasks := []Task{
		{ID: 1, Date: "2026-08-20", ProjectID: 1, Completed: true},
	}
	got := Projects(tasks, map[int64]int{1: 50})
	if got[0].ProgressPercent != 100 {
		t.Fatalf("progress=%d, want clamp to 100", got[0].ProgressPercent)
	}
	got = Projects(tasks, map[int64]int{1: -200})
	if got[0].ProgressPercent != 0 {
		t.Fatalf("progress=%d, want clamp to 0", got[0].ProgressPercent)
	}
}
