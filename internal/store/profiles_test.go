package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-zajac/gitmatch/internal/app"
	"github.com/m-zajac/gitmatch/internal/store"
	"github.com/m-zajac/gitmatch/internal/store/mock"
)

func TestProfilesSaveAndRead(t *testing.T) {
	t.Parallel()

	kv := mock.NewKVStore(nil)
	profiles := store.NewProfiles(kv)

	got, err := profiles.Profile("octocat")
	require.NoError(t, err)
	assert.Nil(t, got)

	profile := &app.Profile{
		Username:     "octocat",
		Avatar:       "https://avatars.test/octocat",
		Bio:          "Just a cat.",
		Repositories: 8,
		Followers:    4000,
		TotalStars:   120,
		TopLanguage:  "Go",
		LatestRepos: []app.Repository{
			{Name: "hello-world", Stars: 100, Description: "A stellar project.", Language: "Go"},
		},
		GitAge:      app.GitAge{Years: 10.5, Days: 3836},
		CreatedAt:   time.Date(2011, 1, 25, 18, 44, 36, 0, time.UTC),
		LastUpdated: time.Date(2021, 7, 25, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, profiles.Save(profile))

	got, err = profiles.Profile("octocat")
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestProfilesSaveOverwrites(t *testing.T) {
	t.Parallel()

	kv := mock.NewKVStore(nil)
	profiles := store.NewProfiles(kv)

	require.NoError(t, profiles.Save(&app.Profile{Username: "octocat", TopLanguage: "Go"}))
	require.NoError(t, profiles.Save(&app.Profile{Username: "octocat", TopLanguage: "Rust"}))

	got, err := profiles.Profile("octocat")
	require.NoError(t, err)
	assert.Equal(t, "Rust", got.TopLanguage)
	assert.Equal(t, 2, kv.Updates())
}
