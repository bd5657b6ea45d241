package game

// NewInitialState returns the canonical empty snapshot. Load paths merge saved
// fields onto a fresh copy of this template, so new fields pick up defaults
// without a schema version.
func NewInitialState() *GameState {
	return &GameState{
		Tasks:              []Task{},
		ArchivedProjects:   []ArchivedProject{},
		ProjectAdjustments: map[int64]int{},
		SocialGoal: SocialGoal{
			Current:  120,
			Target:   500,
			Platform: PlatformInstagram,
		},
	}
}

// Clone returns a deep copy. Reducer observers only ever see clones.
func (s *GameState) Clone() *GameState {
	cp := *s
	cp.Tasks = make([]Task, len(s.Tasks))
	copy(cp.Tasks, s.Tasks)
	cp.ArchivedProjects = make([]ArchivedProject, len(s.ArchivedProjects))
	copy(cp.ArchivedProjects, s.ArchivedProjects)
	cp.ProjectAdjustments = make(map[int64]int, len(s.ProjectAdjustments))
	for k, v := range s.ProjectAdjustments {
		cp.ProjectAdjustments[k] = v
	}
	if s.StartDate != nil {
		d := *s.StartDate
		cp.StartDate = &d
	}
	return &cp
}
