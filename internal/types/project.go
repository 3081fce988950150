package types

type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	URL         string   `json:"url"`
	RepoURL     string   `json:"repo_url"`
}
