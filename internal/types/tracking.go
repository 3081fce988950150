package types

// TrackingStats holds the aggregate usage counters bundled with the static
// dataset. Read-only at runtime.
type TrackingStats struct {
	TotalViews     int    `json:"total_views"`
	UniqueVisitors int    `json:"unique_visitors"`
	TopReferrer    string `json:"top_referrer"`
	UpdatedAt      string `json:"updated_at"`
}
