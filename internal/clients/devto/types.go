package devto

// article is the provider-native record shape returned by the dev.to
// articles endpoint. Only the fields the gateway maps are decoded.
type article struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}
