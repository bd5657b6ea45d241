package game

import (
	"time"
)

// StreakStatus describes what the login-streak automaton did on load.
type StreakStatus int

const (
	// StreakFresh means today was already logged; nothing changed.
	StreakFresh StreakStatus = iota
	// StreakContinued means yesterday was logged and the streak grew by one.
	StreakContinued
	// StreakBroken means a gap (or first run) reset the streak to one.
	StreakBroken
)

// Reducer is the sole mutator of a GameState. Every operation either applies
// fully or leaves the state untouched; callers never observe partial updates.
// It is not safe for concurrent use — transitions are dispatched from a single
// event path, matching the app's single-writer model.
type Reducer struct {
	state  *GameState
	now    func() time.Time
	onDone func(Task)
	nextID int64
}

// Option configures a Reducer.
type Option func(*Reducer)

// WithClock overrides the wall clock (tests, mostly).
func WithClock(now func() time.Time) Option {
	return func(r *Reducer) { r.now = now }
}

// WithCompletionHook registers a hook fired when a task transitions to
// completed. The hook must not block; its failure is invisible to the
// transition.
func WithCompletionHook(fn func(Task)) Option {
	return func(r *Reducer) { r.onDone = fn }
}

// NewReducer takes ownership of st.
func NewReducer(st *GameState, opts ...Option) *Reducer {
	r := &Reducer{state: st, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	r.nextID = maxTaskID(st.Tasks) + 1
	return r
}

// maxTaskID seeds the monotonic id allocator past anything already persisted,
// including ids minted by older timestamp-based builds.
func maxTaskID(tasks []Task) int64 {
	var max int64
	for i := range tasks {
		if tasks[i].ID > max {
			max = tasks[i].ID
		}
	}
	return max
}

// State returns a deep copy of the current state.
func (r *Reducer) State() *GameState {
	return r.state.Clone()
}

func (r *Reducer) today() Date {
	return NewDate(r.now())
}

// ToggleResult reports the effect of a Toggle transition.
type ToggleResult struct {
	Task       Task
	Completed  bool
	XPDelta    int
	MoneyDelta int
}

// Toggle flips the completion flag of the task with the given id.
// A missing id is a silent no-op (ok=false). Completion awards XP to the total
// and the matching pool plus the task's value to money; un-completion subtracts
// the same amounts. All four totals clamp at zero, so toggling back and forth
// is only symmetric when no clamp fired.
func (r *Reducer) Toggle(id int64) (*ToggleResult, bool) {
	idx := -1
	for i := range r.state.Tasks {
		if r.state.Tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}

	t := &r.state.Tasks[idx]
	completing := !t.Completed

	xp := t.XP
	money := t.Value
	if !completing {
		xp, money = -xp, -money
	}

	r.state.XP = clampMin0(r.state.XP + xp)
	if t.Cat.IsFreelance() {
		r.state.XPFreelance = clampMin0(r.state.XPFreelance + xp)
	} else {
		r.state.XPReligion = clampMin0(r.state.XPReligion + xp)
	}
	r.state.Money = clampMin0(r.state.Money + money)

	t.Completed = completing
	if completing {
		t.CompletedAt = r.today()
	} else {
		t.CompletedAt = ""
	}

	if completing && r.onDone != nil {
		r.onDone(*t)
	}

	return &ToggleResult{
		Task:       *t,
		Completed:  completing,
		XPDelta:    xp,
		MoneyDelta: money,
	}, true
}

// Delete removes the task unconditionally. Rewards already awarded for a
// completed task stay banked — deletion does not reverse XP or money.
func (r *Reducer) Delete(id int64) bool {
	for i := range r.state.Tasks {
		if r.state.Tasks[i].ID == id {
			r.state.Tasks = append(r.state.Tasks[:i], r.state.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Add appends tasks in order. Tasks arriving without an id (id==0) get one
// from the monotonic allocator; callers that bring their own ids keep them.
// No dedup, no category re-validation — boundaries did that already.
// Returns the appended tasks with ids assigned.
func (r *Reducer) Add(tasks []Task) []Task {
	added := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID == 0 {
			t.ID = r.nextID
			r.nextID++
		} else if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
		r.state.Tasks = append(r.state.Tasks, t)
		added = append(added, t)
	}
	return added
}

// AdjustSocial adds delta to the social goal's current count, clamped at
// zero. Overshooting the target is allowed and meaningful; IsAchieved stays
// whatever it was. Returns the new current value.
func (r *Reducer) AdjustSocial(delta int) int {
	r.state.SocialGoal.Current = clampMin0(r.state.SocialGoal.Current + delta)
	return r.state.SocialGoal.Current
}

// ReplaceSocialGoal swaps in a new target/platform (a growth-tactic result may
// propose one once the old goal is achieved). Current progress carries over
// and the achieved flag resets.
func (r *Reducer) ReplaceSocialGoal(target int, platform Platform, message string) {
	if !platform.IsValid() {
		platform = r.state.SocialGoal.Platform
	}
	r.state.SocialGoal.Target = target
	r.state.SocialGoal.Platform = platform
	r.state.SocialGoal.IsAchieved = false
	if message != "" {
		r.state.CurrentGrowthGoal = message
	}
}

// AdjustProject adds delta to the manual progress adjustment of a project.
// The adjustment is stored raw; clamping to [0,100] happens at derivation so
// later task changes can re-balance against it. Returns the stored value.
func (r *Reducer) AdjustProject(projectID int64, delta int) int {
	if r.state.ProjectAdjustments == nil {
		r.state.ProjectAdjustments = map[int64]int{}
	}
	r.state.ProjectAdjustments[projectID] += delta
	return r.state.ProjectAdjustments[projectID]
}

// SetSocialAchieved sets the explicit achieved flag.
func (r *Reducer) SetSocialAchieved(done bool) {
	r.state.SocialGoal.IsAchieved = done
}

// Reset restores the initial empty state. Persistence cleanup is the store's
// job; this only resets the in-memory record.
func (r *Reducer) Reset() {
	*r.state = *NewInitialState()
	r.nextID = 1
}

// AdvanceStreak runs the once-per-session login automaton. Same day: no-op.
// Exactly yesterday: streak+1. Any gap or first run: streak resets to 1.
// LastLoginDate always ends up at today.
func (r *Reducer) AdvanceStreak() StreakStatus {
	today := r.today()
	if r.state.LastLoginDate == today {
		return StreakFresh
	}

	status := StreakBroken
	if r.state.LastLoginDate == today.AddDays(-1) {
		r.state.Streak++
		status = StreakContinued
	} else {
		r.state.Streak = 1
	}
	r.state.LastLoginDate = today
	return status
}

func clampMin0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
