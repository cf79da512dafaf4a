package githubapi

import "time"

// User is the profile payload from the user endpoint.
type User struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Blog        string    `json:"blog"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
}

// Repo is one repository from the repository list endpoint.
type Repo struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Language        string    `json:"language"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	UpdatedAt       time.Time `json:"updated_at"`
	Fork            bool      `json:"fork"`
	OpenIssuesCount int       `json:"open_issues_count"`
	Size            int       `json:"size"`
}

// Event is one entry from the public event feed. Only the type and
// timestamp are consumed downstream.
type Event struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
