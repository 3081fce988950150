package types

// BlogPost is materialized fresh from the external content provider on every
// read and never persisted locally.
type BlogPost struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}
