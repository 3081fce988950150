package dataset

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/yungbote/portfolio-backend/internal/types"
)

//go:embed data/portfolio.json
var bundled embed.FS

// document mirrors the bundled JSON exactly. It is decoded once per process;
// everything the accessors return points into that single decode.
type document struct {
	Profile     types.ProfileInfo     `json:"profile"`
	Timeline    []types.TimelineEvent `json:"timeline"`
	Academia    types.Academia        `json:"academia"`
	Experiences types.Experiences     `json:"experiences"`
	Blog        []types.BlogPost      `json:"blog"`
	Tracking    types.TrackingStats   `json:"tracking"`
}

// Snapshot is the in-memory view of the bundled dataset. It is immutable
// after Load and safe for unlimited concurrent readers; callers must not
// mutate the returned slices.
//
// Note: the education/experience/publication collections here are keyed
// independently from the relational store's rows of the same types. The
// gateway does not reconcile the two; reads come from here, deletes go to
// the store.
type Snapshot struct {
	doc document
}

// Load decodes the bundled document. A failure here is startup-fatal for the
// process; there is no per-request error path afterwards.
func Load() (*Snapshot, error) {
	raw, err := bundled.ReadFile("data/portfolio.json")
	if err != nil {
		return nil, fmt.Errorf("read bundled dataset: %w", err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode bundled dataset: %w", err)
	}
	if err := checkUniqueIDs(doc); err != nil {
		return nil, err
	}
	return &Snapshot{doc: doc}, nil
}

func (s *Snapshot) Profile() types.ProfileInfo {
	return s.doc.Profile
}

func (s *Snapshot) Timeline() []types.TimelineEvent {
	return s.doc.Timeline
}

func (s *Snapshot) Academia() types.Academia {
	return s.doc.Academia
}

func (s *Snapshot) Experiences() types.Experiences {
	return s.doc.Experiences
}

func (s *Snapshot) Blog() []types.BlogPost {
	return s.doc.Blog
}

func (s *Snapshot) Tracking() types.TrackingStats {
	return s.doc.Tracking
}

// Every identifier must be unique within its own collection. A duplicate is
// a defect in the bundled document, caught at startup rather than served.
func checkUniqueIDs(doc document) error {
	collections := map[string][]string{
		"academia.publications": publicationIDs(doc.Academia.Publications),
		"academia.education":    educationIDs(doc.Academia.Education),
		"academia.certificates": certificateIDs(doc.Academia.Certificates),
		"experiences.industry":  industryIDs(doc.Experiences.Industry),
		"experiences.projects":  projectIDs(doc.Experiences.Projects),
		"experiences.awards":    awardIDs(doc.Experiences.Awards),
		"blog":                  blogIDs(doc.Blog),
	}
	for name, ids := range collections {
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				return fmt.Errorf("dataset %s: duplicate id %q", name, id)
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}

func publicationIDs(in []types.Publication) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, v.ID)
	}
	return out
}

func educationIDs(in []types.Education) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, v.ID)
	}
	return out
}

func certificateIDs(in []types.Certificate) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, v.ID)
	}
	return out
}

func industryIDs(in []types.IndustryExperience) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, v.ID)
	}
	return out
}

func projectIDs(in []types.Project) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, v.ID)
	}
	return out
}

func awardIDs(in []types.Award) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, v.ID)
	}
	return out
}

func blogIDs(in []types.BlogPost) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, v.ID)
	}
	return out
}
