package models

// Project describes one portfolio project as it appears in the projects
// document. Fields are display-oriented and deliberately unvalidated: a
// missing field renders as a hole in the card rather than failing the load.
type Project struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	Link        string   `json:"link"`
	Tags        []string `json:"tags,omitempty"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}

// DefaultTags is the tag row used when a project declares none.
var DefaultTags = []string{"HTML", "CSS", "JavaScript"}
