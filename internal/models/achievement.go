package models

// Achievement is a named milestone with a progress counter and a one-way
// earned flag. Earned is monotonic: once set it is never programmatically
// cleared, even if the triggers that earned it are later deleted.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Earned      bool   `json:"earned"`
	EarnedDate  string `json:"earnedDate,omitempty"` // RFC3339, set exactly once
	Progress    int    `json:"progress"`
	Target      int    `json:"target"`
}
