package models

type PracticeCategory string

const (
	CategoryMorning    PracticeCategory = "morning"
	CategoryEvening    PracticeCategory = "evening"
	CategoryStress     PracticeCategory = "stress"
	CategoryGrounding  PracticeCategory = "grounding"
	CategoryCalm       PracticeCategory = "calm"
	CategoryYoga       PracticeCategory = "yoga"
	CategoryMeditation PracticeCategory = "meditation"
	CategoryBreathing  PracticeCategory = "breathing"
	CategorySOS        PracticeCategory = "sos"

	// CategoryAll is the filter value that selects the whole catalog.
	CategoryAll PracticeCategory = "all"
)

type Practice struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Duration    string           `json:"duration"` // display label, e.g. "3 мин"
	Category    PracticeCategory `json:"category"`
	IsLocked    bool             `json:"isLocked"`
}

type Article struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Category     string            `json:"category"` // display label
	Content      string            `json:"content"`
	RequiredTier SubscriptionLevel `json:"requiredTier"`
}

type SubscriptionTier struct {
	ID       SubscriptionLevel `json:"id"`
	Name     string            `json:"name"`
	Price    string            `json:"price"`
	Features []string          `json:"features"`
}
