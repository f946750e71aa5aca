package app

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// defaultBio is used when the account has no bio set.
const defaultBio = "Explorer of the digital cosmos."

const (
	// latestReposCount is the number of repositories kept on a profile.
	// Top language is derived from this subset only.
	latestReposCount = 2

	// recentViewsLimit is the display size of the recently viewed list.
	recentViewsLimit = 3
)

// GithubClient returns data about github accounts.
type GithubClient interface {
	UserByLogin(ctx context.Context, login string) (User, error)
	ReposByLogin(ctx context.Context, login string, count int) ([]Repository, error)
	MonthlyCommitCount(ctx context.Context, login string) (int, error)
}

// ProfileStore persists normalized profiles keyed by username.
type ProfileStore interface {
	Profile(username string) (*Profile, error)
	Save(profile *Profile) error
}

// RecentViewsStore keeps the recently viewed accounts ledger.
type RecentViewsStore interface {
	Record(view RecentView) error
	Recent(limit int) ([]RecentView, error)
}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	githubClient GithubClient
	profiles     ProfileStore
	recentViews  RecentViewsStore
	freshness    time.Duration
	reposPage    int
	l            logrus.FieldLogger

	// Coalesces concurrent refreshes of the same username into one upstream fetch.
	refreshes singleflight.Group
}

// NewService creates new Service instance.
// freshness is the maximum age of a stored profile before it is refetched.
// reposPage is the repository page size requested from github (max 100).
func NewService(
	githubClient GithubClient,
	profiles ProfileStore,
	recentViews RecentViewsStore,
	freshness time.Duration,
	reposPage int,
	l logrus.FieldLogger,
) *Service {
	return &Service{
		githubClient: githubClient,
		profiles:     profiles,
		recentViews:  recentViews,
		freshness:    freshness,
		reposPage:    reposPage,
		l:            l,
	}
}

// Profile returns the normalized profile for given github username.
//
// A stored profile younger than the freshness window is returned as-is,
// without touching the github api or the recent views ledger.
// Otherwise the profile is rebuilt from upstream data, stored and recorded
// as recently viewed. Upstream failures are propagated unchanged; a stale
// stored entry is kept for future attempts but not served.
func (s *Service) Profile(ctx context.Context, username string) (*Profile, error) {
	if username == "" {
		return nil, InvalidRequestError("username cannot be empty")
	}

	v, err, _ := s.refreshes.Do(username, func() (interface{}, error) {
		return s.profile(ctx, username)
	})
	if err != nil {
		return nil, err
	}

	return v.(*Profile), nil
}

func (s *Service) profile(ctx context.Context, username string) (*Profile, error) {
	stored, err := s.profiles.Profile(username)
	if err != nil {
		return nil, errors.Wrap(err, "reading stored profile")
	}
	if stored != nil && time.Since(stored.LastUpdated) < s.freshness {
		return stored, nil
	}

	user, err := s.githubClient.UserByLogin(ctx, username)
	if err != nil {
		return nil, errors.Wrap(err, "retrieving user")
	}
	repos, err := s.githubClient.ReposByLogin(ctx, username, s.reposPage)
	if err != nil {
		return nil, errors.Wrap(err, "retrieving user repos")
	}

	// Best effort: commit activity is informational only.
	commits, err := s.githubClient.MonthlyCommitCount(ctx, username)
	if err != nil {
		s.l.Warnf("couldn't retrieve monthly commit count for %s: %v", username, err)
		commits = 0
	}

	profile := assembleProfile(user, repos, commits, time.Now())
	if err := s.profiles.Save(profile); err != nil {
		return nil, errors.Wrap(err, "saving profile")
	}

	// Ledger write failures must not fail the request.
	if err := s.recentViews.Record(RecentView{
		Username: profile.Username,
		Avatar:   profile.Avatar,
		ViewedAt: time.Now(),
	}); err != nil {
		s.l.Errorf("couldn't record recent view for %s: %v", profile.Username, err)
	}

	return profile, nil
}

// CollaborationRating rates how well two github accounts would collaborate.
// Fails with InvalidRequestError when both usernames are equal (case-insensitive).
func (s *Service) CollaborationRating(ctx context.Context, username1, username2 string) (*Rating, error) {
	if strings.EqualFold(username1, username2) {
		return nil, InvalidRequestError("two different usernames required")
	}

	// Both fetches are independent and idempotent, run them in parallel.
	type profileResult struct {
		username string
		profile  *Profile
		err      error
	}
	results := make(chan profileResult, 2)
	for _, username := range []string{username1, username2} {
		username := username
		go func() {
			p, err := s.Profile(ctx, username)
			results <- profileResult{
				username: username,
				profile:  p,
				err:      err,
			}
		}()
	}

	profiles := make(map[string]*Profile, 2)
	for i := 0; i < cap(results); i++ {
		res := <-results
		if res.err != nil {
			return nil, errors.Wrapf(res.err, "retrieving profile %s", res.username)
		}
		profiles[res.username] = res.profile
	}

	p1, p2 := profiles[username1], profiles[username2]
	total, language, repoOverlap, follower := collaborationScore(p1, p2)

	return &Rating{
		CompatibilityScore: total,
		Details: RatingDetails{
			LanguageScore:    language,
			RepoOverlapScore: repoOverlap,
			FollowerScore:    follower,
			User1:            newRatingUser(p1),
			User2:            newRatingUser(p2),
		},
	}, nil
}

// RecentProfiles returns up to 3 most recently viewed accounts, most recent first.
func (s *Service) RecentProfiles(ctx context.Context) ([]RecentView, error) {
	views, err := s.recentViews.Recent(recentViewsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "reading recent views")
	}

	return views, nil
}

func assembleProfile(user User, repos []Repository, monthlyCommits int, now time.Time) *Profile {
	latest := repos
	if len(latest) > latestReposCount {
		latest = latest[:latestReposCount]
	}

	topLanguage := unknownLanguage
	if len(latest) > 0 && latest[0].Language != "" {
		topLanguage = latest[0].Language
	}

	var totalStars int
	for _, r := range repos {
		totalStars += r.Stars
	}

	bio := user.Bio
	if bio == "" {
		bio = defaultBio
	}

	ageDays := int(now.Sub(user.CreatedAt).Hours() / 24)
	ageYears := math.Round(float64(ageDays)/365.25*10) / 10

	return &Profile{
		Username:       user.Login,
		Avatar:         user.AvatarURL,
		Bio:            bio,
		Repositories:   user.Repos,
		Followers:      user.Followers,
		TotalStars:     totalStars,
		TopLanguage:    topLanguage,
		LatestRepos:    latest,
		GitAge:         GitAge{Years: ageYears, Days: ageDays},
		MonthlyCommits: monthlyCommits,
		CreatedAt:      user.CreatedAt,
		LastUpdated:    now,
	}
}

func newRatingUser(p *Profile) RatingUser {
	return RatingUser{
		Username:     p.Username,
		TopLanguage:  p.TopLanguage,
		Repositories: p.Repositories,
		Followers:    p.Followers,
	}
}
