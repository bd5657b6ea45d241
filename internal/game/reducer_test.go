package game

import (
	"testing"
	"time"
)

func fixedClock(day string) func() time.Time {
	t, _ := time.Parse("2006-01-02", day)
	return func() time.Time { return t.Add(12 * time.Hour) }
}

func newTestReducer(day string, tasks ...Task) *Reducer {
	st := NewInitialState()
	st.Tasks = append(st.Tasks, tasks...)
	return NewReducer(st, WithClock(fixedClock(day)))
}

func TestToggleAwardsAndReverses(t *testing.T) {
	r := newTestReducer("2026-08-28", Task{ID: 1, Title: "Call client", Date: "2026-08-28", Cat: CategorySale, XP: 20, Value: 50})

	res, ok := r.Toggle(1)
	if !ok {
		t.Fatalf("Toggle: task not found")
	}
	if !res.Completed || res.XPDelta != 20 || res.MoneyDelta != 50 {
		t.Fatalf("Toggle result = %+v, want completed +20xp +50", res)
	}

	st := r.State()
	if st.XP != 20 || st.XPFreelance != 20 || st.XPReligion != 0 || st.Money != 50 {
		t.Fatalf("after complete: xp=%d fre=%d rel=%d money=%d", st.XP, st.XPFreelance, st.XPReligion, st.Money)
	}
	if st.Tasks[0].CompletedAt != "2026-08-28" {
		t.Fatalf("completedAt=%q, want today", st.Tasks[0].CompletedAt)
	}

	if _, ok := r.Toggle(1); !ok {
		t.Fatalf("un-toggle failed")
	}
	st = r.State()
	if st.XP != 0 || st.XPFreelance != 0 || st.Money != 0 {
		t.Fatalf("after un-complete: xp=%d fre=%d money=%d, want zeros", st.XP, st.XPFreelance, st.Money)
	}
	if st.Tasks[0].Completed || st.Tasks[0].CompletedAt != "" {
		t.Fatalf("un-complete did not clear completion: %+v", st.Tasks[0])
	}
}

func TestTogglePoolSplit(t *testing.T) {
	r := newTestReducer("2026-08-28",
		Task{ID: 1, Title: "Render", Date: "2026-08-28", Cat: CategoryProd, XP: 40},
		Task{ID: 2, Title: "Study", Date: "2026-08-28", Cat: CategoryAdmin, XP: 30},
	)

	r.Toggle(1)
	r.Toggle(2)

	st := r.State()
	if st.XPFreelance != 40 {
		t.Fatalf("xpFreelance=%d, want 40", st.XPFreelance)
	}
	if st.XPReligion != 30 {
		t.Fatalf("xpReligion=%d, want 30", st.XPReligion)
	}
	if st.XP != 70 {
		t.Fatalf("xp=%d, want 70", st.XP)
	}
}

func TestToggleMissingIDIsSilentNoop(t *testing.T) {
	r := newTestReducer("2026-08-28", Task{ID: 1, Title: "a", Date: "2026-08-28", Cat: CategoryBiz, XP: 10})
	before := r.State()

	if _, ok := r.Toggle(999); ok {
		t.Fatalf("Toggle(999) reported success")
	}

	after := r.State()
	if after.XP != before.XP || len(after.Tasks) != len(before.Tasks) || after.Tasks[0] != before.Tasks[0] {
		t.Fatalf("state changed on missing id")
	}
}

func TestToggleClampNeverNegative(t *testing.T) {
	// Un-completing a pre-completed task whose rewards were never banked dips
	// below zero and clamps; the follow-up re-complete then re-awards.
	r := newTestReducer("2026-08-28", Task{ID: 1, Title: "a", Date: "2026-08-27", Cat: CategorySale, XP: 100, Value: 80, Completed: true, CompletedAt: "2026-08-27"})

	r.Toggle(1) // un-complete from zero totals
	st := r.State()
	if st.XP != 0 || st.XPFreelance != 0 || st.XPReligion != 0 || st.Money != 0 {
		t.Fatalf("clamp violated: xp=%d fre=%d rel=%d money=%d", st.XP, st.XPFreelance, st.XPReligion, st.Money)
	}

	r.Toggle(1)
	st = r.State()
	if st.XP != 100 || st.Money != 80 {
		t.Fatalf("re-complete awards = xp %d money %d, want 100/80", st.XP, st.Money)
	}
}

func TestDeleteKeepsBankedRewards(t *testing.T) {
	r := newTestReducer("2026-08-28", Task{ID: 1, Title: "a", Date: "2026-08-28", Cat: CategorySale, XP: 25, Value: 10})
	r.Toggle(1)

	if !r.Delete(1) {
		t.Fatalf("Delete failed")
	}
	if r.Delete(1) {
		t.Fatalf("second Delete reported success")
	}

	st := r.State()
	if len(st.Tasks) != 0 {
		t.Fatalf("task not removed")
	}
	if st.XP != 25 || st.Money != 10 {
		t.Fatalf("deleting a completed task reversed rewards: xp=%d money=%d", st.XP, st.Money)
	}
}

func TestAddAssignsMonotonicIDs(t *testing.T) {
	r := newTestReducer("2026-08-28", Task{ID: 7, Title: "seed", Date: "2026-08-28", Cat: CategoryBiz, XP: 5})

	added := r.Add([]Task{
		{Title: "b", Date: "2026-08-28", Cat: CategoryBiz, XP: 5},
		{Title: "c", Date: "2026-08-28", Cat: CategoryBiz, XP: 5},
		{Title: "d", Date: "2026-08-28", Cat: CategoryBiz, XP: 5},
	})

	seen := map[int64]bool{7: true}
	prev := int64(7)
	for _, tk := range added {
		if tk.ID <= prev {
			t.Fatalf("id %d not monotonic after %d", tk.ID, prev)
		}
		if seen[tk.ID] {
			t.Fatalf("duplicate id %d", tk.ID)
		}
		seen[tk.ID] = true
		prev = tk.ID
	}

	st := r.State()
	if len(st.Tasks) != 4 {
		t.Fatalf("len(tasks)=%d, want 4", len(st.Tasks))
	}
	if st.Tasks[3].Title != "d" {
		t.Fatalf("append order broken: last=%q", st.Tasks[3].Title)
	}
}

func TestAdjustSocialClampsAtZeroAndAllowsOvershoot(t *testing.T) {
	r := newTestReducer("2026-08-28")
	st := r.State()
	if st.SocialGoal.Current != 120 {
		t.Fatalf("initial social current=%d, want 120", st.SocialGoal.Current)
	}

	if got := r.AdjustSocial(-500); got != 0 {
		t.Fatalf("AdjustSocial(-500)=%d, want 0 (clamped)", got)
	}
	if got := r.AdjustSocial(5); got != 5 {
		t.Fatalf("AdjustSocial(5)=%d, want 5", got)
	}
	if got := r.AdjustSocial(-10); got != 0 {
		t.Fatalf("AdjustSocial(-10) from 5 = %d, want 0", got)
	}
	if got := r.AdjustSocial(9999); got != 9999 {
		t.Fatalf("overshoot beyond target rejected: %d", got)
	}
	if r.State().SocialGoal.IsAchieved {
		t.Fatalf("overshoot auto-set isAchieved")
	}
}

func TestAdjustProjectAccumulatesRaw(t *testing.T) {
	r := newTestReducer("2026-08-28")

	if got := r.AdjustProject(3, 10); got != 10 {
		t.Fatalf("AdjustProject(3,10)=%d, want 10", got)
	}
	if got := r.AdjustProject(3, -25); got != -15 {
		t.Fatalf("accumulated adjustment=%d, want -15 (raw, unclamped)", got)
	}
	if got := r.AdjustProject(8, 5); got != 5 {
		t.Fatalf("adjustment leaked across projects: %d", got)
	}

	st := r.State()
	if st.ProjectAdjustments[3] != -15 || st.ProjectAdjustments[8] != 5 {
		t.Fatalf("stored adjustments = %v", st.ProjectAdjustments)
	}
}

func TestAdvanceStreak(t *testing.T) {
	cases := []struct {
		name       string
		lastLogin  Date
		wantStatus StreakStatus
		wantStreak int
	}{
		{"first run", "", StreakBroken, 1},
		{"same day", "2026-08-28", StreakFresh, 4},
		{"yesterday", "2026-08-27", StreakContinued, 5},
		{"two days ago", "2026-08-26", StreakBroken, 1},
		{"future date", "2026-09-01", StreakBroken, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := NewInitialState()
			st.Streak = 4
			st.LastLoginDate = tc.lastLogin
			r := NewReducer(st, WithClock(fixedClock("2026-08-28")))

			if got := r.AdvanceStreak(); got != tc.wantStatus {
				t.Fatalf("status=%d, want %d", got, tc.wantStatus)
			}
			out := r.State()
			if out.Streak != tc.wantStreak {
				t.Fatalf("streak=%d, want %d", out.Streak, tc.wantStreak)
			}
			if out.LastLoginDate != "2026-08-28" {
				t.Fatalf("lastLoginDate=%q, want today", out.LastLoginDate)
			}
		})
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	r := newTestReducer("2026-08-28", Task{ID: 1, Title: "a", Date: "2026-08-28", Cat: CategorySale, XP: 20})
	r.Toggle(1)
	r.Reset()

	st := r.State()
	if st.XP != 0 || len(st.Tasks) != 0 || st.SocialGoal.Current != 120 {
		t.Fatalf("reset state = %+v", st)
	}

	added := r.Add([]Task{{Title: "fresh", Date: "2026-08-28", Cat: CategoryBiz, XP: 5}})
	if added[0].ID != 1 {
		t.Fatalf("allocator not reset: id=%d", added[0].ID)
	}
}

func TestCompletionHookFiresOnCompleteOnly(t *testing.T) {
	var fired []string
	st := NewInitialState()
	st.Tasks = []Task{{ID: 1, Title: "ship it", Date: "2026-08-28", Cat: CategoryBiz, XP: 10}}
	r := NewReducer(st,
		WithClock(fixedClock("2026-08-28")),
		WithCompletionHook(func(tk Task) { fired = append(fired, tk.Title) }),
	)

	r.Toggle(1)
	r.Toggle(1)
	r.Toggle(1)

	if len(fired) != 2 {
		t.Fatalf("hook fired %d times, want 2 (completions only)", len(fired))
	}
	if fired[0] != "ship it" {
		t.Fatalf("hook saw %q", fired[0])
	}
}
