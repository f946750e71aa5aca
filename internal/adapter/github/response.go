package github

import (
	"time"

	"github.com/m-zajac/gitmatch/internal/app"
)

// Defaults for fields the github api may leave empty.
const (
	defaultBio             = "Explorer of the digital cosmos."
	defaultRepoDescription = "A stellar project."
	defaultLanguage        = "Unknown"
)

type userResponse struct {
	Login       string    `json:"login"`
	AvatarURL   string    `json:"avatar_url"`
	Bio         string    `json:"bio"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r userResponse) ToUser() app.User {
	bio := r.Bio
	if bio == "" {
		bio = defaultBio
	}

	return app.User{
		Login:     r.Login,
		AvatarURL: r.AvatarURL,
		Bio:       bio,
		Repos:     r.PublicRepos,
		Followers: r.Followers,
		CreatedAt: r.CreatedAt,
	}
}

type reposResponse []reposResponseItem

type reposResponseItem struct {
	Name            string `json:"name"`
	StargazersCount int    `json:"stargazers_count"`
	Description     string `json:"description"`
	HTMLURL         string `json:"html_url"`
	Language        string `json:"language"`
}

func (r reposResponse) ToRepositories() []app.Repository {
	repos := make([]app.Repository, 0, len(r))
	for _, item := range r {
		description := item.Description
		if description == "" {
			description = defaultRepoDescription
		}
		language := item.Language
		if language == "" {
			language = defaultLanguage
		}

		repos = append(repos, app.Repository{
			Name:        item.Name,
			Stars:       item.StargazersCount,
			Description: description,
			URL:         item.HTMLURL,
			Language:    language,
		})
	}

	return repos
}

type rateLimitResponse struct {
	Resources struct {
		Core struct {
			Remaining int   `json:"remaining"`
			Reset     int64 `json:"reset"`
		} `json:"core"`
	} `json:"resources"`
}

type commitSearchResponse struct {
	TotalCount int `json:"total_count"`
}
