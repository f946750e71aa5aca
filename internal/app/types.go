package app

import "time"

// User holds the core account data returned by the github users endpoint.
type User struct {
	Login     string
	AvatarURL string
	Bio       string
	Repos     int
	Followers int
	CreatedAt time.Time
}

// Repository entity
type Repository struct {
	Name        string `json:"name"`
	Stars       int    `json:"stars"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Language    string `json:"language"`
}

// GitAge describes how old an account is.
type GitAge struct {
	Years float64 `json:"years"`
	Days  int     `json:"days"`
}

// Profile is the normalized representation of a github account,
// decoupled from the upstream api schema.
// It is created wholesale on every successful refresh, never partially mutated.
type Profile struct {
	Username       string       `json:"username"`
	Avatar         string       `json:"avatar"`
	Bio            string       `json:"bio"`
	Repositories   int          `json:"repositories"`
	Followers      int          `json:"followers"`
	TotalStars     int          `json:"total_stars"`
	TopLanguage    string       `json:"top_language"`
	LatestRepos    []Repository `json:"latest_repos"`
	GitAge         GitAge       `json:"git_age"`
	MonthlyCommits int          `json:"monthly_commits"`
	CreatedAt      time.Time    `json:"created_at"`
	LastUpdated    time.Time    `json:"last_updated"`
}

// RecentView is a single entry of the recently viewed accounts ledger.
type RecentView struct {
	Username string    `json:"username"`
	Avatar   string    `json:"avatar"`
	ViewedAt time.Time `json:"viewed_at"`
}

// RatingUser is a short per-user summary attached to a rating.
type RatingUser struct {
	Username     string `json:"username"`
	TopLanguage  string `json:"top_language"`
	Repositories int    `json:"repositories"`
	Followers    int    `json:"followers"`
}

// RatingDetails holds the rating sub-scores and user summaries.
type RatingDetails struct {
	LanguageScore    float64    `json:"language_score"`
	RepoOverlapScore float64    `json:"repo_overlap_score"`
	FollowerScore    float64    `json:"follower_score"`
	User1            RatingUser `json:"user1"`
	User2            RatingUser `json:"user2"`
}

// Rating is the collaboration compatibility result for two accounts.
// Computed per request, never persisted.
type Rating struct {
	CompatibilityScore float64       `json:"compatibility_score"`
	Details            RatingDetails `json:"details"`
}
