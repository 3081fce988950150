package types

// Academia groups the scholarly sections of the dataset.
type Academia struct {
	Publications []Publication `json:"publications"`
	Education    []Education   `json:"education"`
	Certificates []Certificate `json:"certificates"`
}

// Experiences groups the professional sections of the dataset.
type Experiences struct {
	Industry []IndustryExperience `json:"industry"`
	Projects []Project            `json:"projects"`
	Awards   []Award              `json:"awards"`
	Keywords []string             `json:"keywords"`
}
