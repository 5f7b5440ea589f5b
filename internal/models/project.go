package models

// Project represents a portfolio project as shown on a card
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image,omitempty"`
	DemoURL      string   `json:"demo_url"`
	RepoURL      string   `json:"repo_url"`
	Technologies []string `json:"technologies"`
	Year         int      `json:"year,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
}

// HasImage reports whether a preview asset was supplied
func (p Project) HasImage() bool {
	return p.Image != ""
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}
