package types

// TimelineEvent is one life/career milestone. Events are served in dataset
// insertion order, never re-sorted.
type TimelineEvent struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}
