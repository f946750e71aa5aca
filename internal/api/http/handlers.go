package http

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/m-zajac/gitmatch/internal/app"
)

type profileRepo struct {
	Name        string `json:"name"`
	Stars       int    `json:"stars"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Language    string `json:"language"`
}

type profileGitAge struct {
	Years float64 `json:"years"`
	Days  int     `json:"days"`
}

type profileResponse struct {
	Username       string        `json:"username"`
	Avatar         string        `json:"avatar"`
	Bio            string        `json:"bio"`
	Repositories   int           `json:"repositories"`
	Followers      int           `json:"followers"`
	TotalStars     int           `json:"total_stars"`
	TopLanguage    string        `json:"top_language"`
	LatestRepos    []profileRepo `json:"latest_repos"`
	GitAge         profileGitAge `json:"git_age"`
	MonthlyCommits int           `json:"monthly_commits"`
	CreatedAt      time.Time     `json:"created_at"`
	LastUpdated    time.Time     `json:"last_updated"`
}

func newProfileResponse(p *app.Profile) profileResponse {
	repos := make([]profileRepo, 0, len(p.LatestRepos))
	for _, r := range p.LatestRepos {
		repos = append(repos, profileRepo{
			Name:        r.Name,
			Stars:       r.Stars,
			Description: r.Description,
			URL:         r.URL,
			Language:    r.Language,
		})
	}

	return profileResponse{
		Username:       p.Username,
		Avatar:         p.Avatar,
		Bio:            p.Bio,
		Repositories:   p.Repositories,
		Followers:      p.Followers,
		TotalStars:     p.TotalStars,
		TopLanguage:    p.TopLanguage,
		LatestRepos:    repos,
		GitAge:         profileGitAge{Years: p.GitAge.Years, Days: p.GitAge.Days},
		MonthlyCommits: p.MonthlyCommits,
		CreatedAt:      p.CreatedAt,
		LastUpdated:    p.LastUpdated,
	}
}

type ratingUser struct {
	Username     string `json:"username"`
	TopLanguage  string `json:"top_language"`
	Repositories int    `json:"repositories"`
	Followers    int    `json:"followers"`
}

type ratingUsers struct {
	User1 ratingUser `json:"user1"`
	User2 ratingUser `json:"user2"`
}

type ratingDetails struct {
	LanguageScore    float64     `json:"language_score"`
	RepoOverlapScore float64     `json:"repo_overlap_score"`
	FollowerScore    float64     `json:"follower_score"`
	Users            ratingUsers `json:"users"`
}

type ratingResponse struct {
	CompatibilityScore float64       `json:"compatibility_score"`
	Details            ratingDetails `json:"details"`
}

func newRatingResponse(r *app.Rating) ratingResponse {
	return ratingResponse{
		CompatibilityScore: r.CompatibilityScore,
		Details: ratingDetails{
			LanguageScore:    r.Details.LanguageScore,
			RepoOverlapScore: r.Details.RepoOverlapScore,
			FollowerScore:    r.Details.FollowerScore,
			Users: ratingUsers{
				User1: newRatingUser(r.Details.User1),
				User2: newRatingUser(r.Details.User2),
			},
		},
	}
}

func newRatingUser(u app.RatingUser) ratingUser {
	return ratingUser{
		Username:     u.Username,
		TopLanguage:  u.TopLanguage,
		Repositories: u.Repositories,
		Followers:    u.Followers,
	}
}

type recentUserResponse struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// NewProfileHandler creates handlerfunc returning a normalized profile.
func NewProfileHandler(
	getUsername func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := service.Profile(r.Context(), getUsername(r))
		if err != nil {
			writeError(w, l, err)
			return
		}

		writeJSON(w, newProfileResponse(profile))
	}
}

// NewCollaborationRatingHandler creates handlerfunc returning a collaboration rating for two accounts.
func NewCollaborationRatingHandler(
	getUsername1 func(*http.Request) string,
	getUsername2 func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rating, err := service.CollaborationRating(r.Context(), getUsername1(r), getUsername2(r))
		if err != nil {
			switch {
			case app.IsInvalidRequestError(err),
				app.IsNotFoundError(err),
				app.IsRateLimitedError(err),
				app.IsTimeoutError(err):
				writeError(w, l, err)
			default:
				l.Errorf("calculating collaboration rating: %v", err)
				http.Error(w, "failed to calculate collaboration rating", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, newRatingResponse(rating))
	}
}

// NewRecentUsersHandler creates handlerfunc returning recently viewed accounts.
func NewRecentUsersHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := service.RecentProfiles(r.Context())
		if err != nil {
			l.Errorf("fetching recent users: %v", err)
			http.Error(w, "failed to fetch recent users", http.StatusInternalServerError)
			return
		}

		response := make([]recentUserResponse, 0, len(views))
		for _, v := range views {
			response = append(response, recentUserResponse{
				Username: v.Username,
				Avatar:   v.Avatar,
			})
		}

		writeJSON(w, response)
	}
}

func writeJSON(w http.ResponseWriter, response interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(response)
}

// writeError maps app errors to http statuses.
// Untagged errors become a bare 500 without leaking internal detail.
func writeError(w http.ResponseWriter, l logrus.FieldLogger, err error) {
	switch {
	case app.IsInvalidRequestError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case app.IsNotFoundError(err):
		http.Error(w, "User not found", http.StatusNotFound)
	case app.IsRateLimitedError(err):
		msg := "GitHub API rate limit exceeded, please try again later"
		if wait := app.RetryAfterHint(err); wait > 0 {
			msg = fmt.Sprintf("GitHub API rate limit exceeded, please try again in %s", wait.Round(time.Second))
		}
		http.Error(w, msg, http.StatusTooManyRequests)
	case app.IsTimeoutError(err):
		http.Error(w, "GitHub API request timed out", http.StatusGatewayTimeout)
	default:
		l.Errorf("handling request: %v", err)
		http.Error(w, "", http.StatusInternalServerError)
	}
}
