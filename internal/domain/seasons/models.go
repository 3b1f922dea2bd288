package seasons

import "time"

// Season is one league season. At most one season is active at a time.
type Season struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// Ref is the trimmed season shape joined onto games.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Ref returns the joined shape for s.
func (s Season) Ref() Ref {
	return Ref{ID: s.ID, Name: s.Name}
}
