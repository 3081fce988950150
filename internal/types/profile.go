package types

// ProfileInfo is the singleton record describing the site owner. There is
// exactly one instance per dataset and it has no identifier.
type ProfileInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Tagline  string `json:"tagline"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Website  string `json:"website"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Scholar  string `json:"scholar"`
}
