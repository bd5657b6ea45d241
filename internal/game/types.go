package game

// Category is the closed set of task categories.
type Category string

const (
	CategorySale   Category = "sale"
	CategorySocial Category = "social"
	CategoryAdmin  Category = "admin"
	CategoryProd   Category = "prod"
	CategoryBiz    Category = "biz"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryProd, CategorySale, CategorySocial, CategoryAdmin, CategoryBiz}

func (c Category) IsValid() bool {
	switch c {
	case CategorySale, CategorySocial, CategoryAdmin, CategoryProd, CategoryBiz:
		return true
	default:
		return false
	}
}

// IsFreelance reports whether XP earned in this category accrues to the
// freelance pool. Everything else accrues to the religion/ethics pool.
func (c Category) IsFreelance() bool {
	switch c {
	case CategoryProd, CategoryBiz, CategorySale, CategorySocial:
		return true
	default:
		return false
	}
}

// DefaultCategory is used when user input is missing/invalid.
const DefaultCategory Category = CategoryBiz

// Platform is the social network tracked by the social goal.
type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformBehance   Platform = "Behance"
)

func (p Platform) IsValid() bool {
	switch p {
	case PlatformInstagram, PlatformLinkedIn, PlatformBehance:
		return true
	default:
		return false
	}
}

// Grade ranks an archived project in the hall of fame.
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
)

// Task is one atomic unit of gamified work. JSON tags match the persisted
// snapshot shape; optional fields are omitted when zero so older snapshots
// round-trip unchanged.
type Task struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Date         Date     `json:"date"`
	Cat          Category `json:"cat"`
	XP           int      `json:"xp"`
	Completed    bool     `json:"completed"`
	Value        int      `json:"value,omitempty"`
	ProjectID    int64    `json:"projectId,omitempty"`
	ProjectTitle string   `json:"projectTitle,omitempty"`
	Deadline     Date     `json:"deadline,omitempty"`
	Order        int      `json:"order,omitempty"`
	CompletedAt  Date     `json:"completedAt,omitempty"`
	IsBossTask   bool     `json:"isBossTask,omitempty"`
}

// CompletionDay returns the calendar day this task counts toward in history:
// completedAt when present, otherwise the scheduled date.
func (t Task) CompletionDay() Date {
	if t.CompletedAt != "" {
		return t.CompletedAt
	}
	return t.Date
}

// SocialGoal tracks a current/target follower pair for one platform.
// IsAchieved is set explicitly, never derived from current >= target.
type SocialGoal struct {
	Current    int      `json:"current"`
	Target     int      `json:"target"`
	Platform   Platform `json:"platform"`
	IsAchieved bool     `json:"isAchieved"`
}

// ArchivedProject is a hall-of-fame entry. Entries are only ever appended;
// nothing in the reducer promotes a live project into the archive.
type ArchivedProject struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Grade         Grade  `json:"grade"`
	CompletedDate Date   `json:"completedDate"`
	TotalValue    int    `json:"totalValue"`
	Type          string `json:"type"`
}

// GameState is the full persisted snapshot. It is owned exclusively by the
// Reducer; everything else sees copies.
type GameState struct {
	XPFreelance        int               `json:"xpFreelance"`
	XPReligion         int               `json:"xpReligion"`
	XP                 int               `json:"xp"`
	Money              int               `json:"money"`
	Streak             int               `json:"streak"`
	Prestige           int               `json:"prestige"`
	LastLoginDate      Date              `json:"lastLoginDate"`
	Tasks              []Task            `json:"tasks"`
	ArchivedProjects   []ArchivedProject `json:"archivedProjects"`
	StartDate          *Date             `json:"startDate"`
	ProjectAdjustments map[int64]int     `json:"projectAdjustments"`
	CurrentGrowthGoal  string            `json:"currentGrowthGoal,omitempty"`
	SocialGoal         SocialGoal        `json:"socialGoal"`
	RoadmapStage       int               `json:"roadmapStage,omitempty"`
}
