package github

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-zajac/gitmatch/internal/app"
	"github.com/m-zajac/gitmatch/internal/mock"
)

func okQuotaJSON() []byte {
	return []byte(`{"resources":{"core":{"remaining":4999,"reset":0}}}`)
}

func lowQuotaJSON() []byte {
	reset := time.Now().Add(time.Hour).Unix()
	return []byte(fmt.Sprintf(`{"resources":{"core":{"remaining":3,"reset":%d}}}`, reset))
}

var validUserJSON = []byte(`{
	"login": "octocat",
	"avatar_url": "https://avatars.test/octocat",
	"bio": "Just a cat.",
	"public_repos": 8,
	"followers": 4000,
	"created_at": "2011-01-25T18:44:36Z"
}`)

func newTestClient(doer HTTPDoer) *Client {
	c := NewClient(doer, "https://fake", "token", logrus.New())
	c.retryBaseDelay = time.Millisecond
	return c
}

func TestClient_UserByLogin(t *testing.T) {
	t.Parallel()

	wantUser := app.User{
		Login:     "octocat",
		AvatarURL: "https://avatars.test/octocat",
		Bio:       "Just a cat.",
		Repos:     8,
		Followers: 4000,
		CreatedAt: time.Date(2011, 1, 25, 18, 44, 36, 0, time.UTC),
	}

	tests := []struct {
		name         string
		doer         *mock.HTTPDoer
		login        string
		want         app.User
		wantErr      bool
		checkErr     func(*testing.T, error)
		wantAPICalls int
	}{
		{
			name:         "empty login",
			login:        "",
			wantErr:      true,
			wantAPICalls: 0,
		},
		{
			name: "quota nearly exhausted, fails fast",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{lowQuotaJSON()},
			},
			login:   "octocat",
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				assert.True(t, app.IsRateLimitedError(err))
				assert.Greater(t, int64(app.RetryAfterHint(err)), int64(0))
			},
			wantAPICalls: 1,
		},
		{
			name: "quota check fails, call proceeds anyway",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusInternalServerError, http.StatusOK},
				Bodies:   [][]byte{{}, validUserJSON},
			},
			login:        "octocat",
			want:         wantUser,
			wantErr:      false,
			wantAPICalls: 2,
		},
		{
			name: "status ok, body ok",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK, http.StatusOK},
				Bodies:   [][]byte{okQuotaJSON(), validUserJSON},
			},
			login:        "octocat",
			want:         wantUser,
			wantErr:      false,
			wantAPICalls: 2,
		},
		{
			name: "user not found, no retry",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK, http.StatusNotFound},
				Bodies:   [][]byte{okQuotaJSON(), {}},
			},
			login:   "ghost",
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				assert.True(t, app.IsNotFoundError(err))
			},
			wantAPICalls: 2,
		},
		{
			name: "forbidden maps to rate limited, no retry",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK, http.StatusForbidden},
				Bodies:   [][]byte{okQuotaJSON(), {}},
			},
			login:   "octocat",
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				assert.True(t, app.IsRateLimitedError(err))
			},
			wantAPICalls: 2,
		},
		{
			name: "transient errors, then valid response",
			doer: &mock.HTTPDoer{
				Statuses: []int{
					http.StatusOK,
					http.StatusInternalServerError,
					http.StatusBadGateway,
					http.StatusOK,
				},
				Bodies: [][]byte{okQuotaJSON(), {}, {}, validUserJSON},
			},
			login:        "octocat",
			want:         wantUser,
			wantErr:      false,
			wantAPICalls: 4,
		},
		{
			name: "transient errors exhaust all attempts",
			doer: &mock.HTTPDoer{
				Statuses: []int{
					http.StatusOK,
					http.StatusServiceUnavailable,
					http.StatusServiceUnavailable,
					http.StatusServiceUnavailable,
				},
				Bodies: [][]byte{okQuotaJSON(), {}, {}, {}},
			},
			login:        "octocat",
			wantErr:      true,
			wantAPICalls: 4,
		},
		{
			name: "unexpected status, no retry",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK, http.StatusTeapot},
				Bodies:   [][]byte{okQuotaJSON(), {}},
			},
			login:        "octocat",
			wantErr:      true,
			wantAPICalls: 2,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(tt.doer)
			got, err := c.UserByLogin(context.Background(), tt.login)
			require.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)
			if tt.checkErr != nil {
				tt.checkErr(t, err)
			}

			if tt.doer == nil {
				return
			}

			require.Len(t, tt.doer.Responses, tt.wantAPICalls)
			for _, resp := range tt.doer.Responses {
				checkAPIHeaders(resp.Request, t)
			}
		})
	}
}

func TestClient_UserByLoginTimeout(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		DoFunc: func(r *http.Request) (*http.Response, error) {
			<-r.Context().Done()
			return nil, r.Context().Err()
		},
	}
	c := newTestClient(doer)
	c.callTimeout = 10 * time.Millisecond

	// The deadline also covers the pre-flight quota check.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.UserByLogin(ctx, "octocat")
	require.Error(t, err)
	assert.True(t, app.IsTimeoutError(err))
}

func TestClient_ReposByLogin(t *testing.T) {
	t.Parallel()

	validReposJSON := []byte(`[
		{
			"name": "linux",
			"stargazers_count": 100000,
			"description": "Linux kernel source tree",
			"html_url": "https://github.test/torvalds/linux",
			"language": "C"
		},
		{
			"name": "test-tlb",
			"stargazers_count": 500,
			"html_url": "https://github.test/torvalds/test-tlb"
		}
	]`)

	tests := []struct {
		name         string
		doer         *mock.HTTPDoer
		login        string
		count        int
		want         []app.Repository
		wantErr      bool
		wantAPICalls int
	}{
		{
			name:         "empty login",
			login:        "",
			count:        2,
			wantErr:      true,
			wantAPICalls: 0,
		},
		{
			name:         "invalid count",
			login:        "torvalds",
			count:        0,
			wantErr:      true,
			wantAPICalls: 0,
		},
		{
			name:         "count over page limit",
			login:        "torvalds",
			count:        101,
			wantErr:      true,
			wantAPICalls: 0,
		},
		{
			name: "status ok, body ok, defaults applied",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK, http.StatusOK},
				Bodies:   [][]byte{okQuotaJSON(), validReposJSON},
			},
			login: "torvalds",
			count: 50,
			want: []app.Repository{
				{
					Name:        "linux",
					Stars:       100000,
					Description: "Linux kernel source tree",
					URL:         "https://github.test/torvalds/linux",
					Language:    "C",
				},
				{
					Name:        "test-tlb",
					Stars:       500,
					Description: "A stellar project.",
					URL:         "https://github.test/torvalds/test-tlb",
					Language:    "Unknown",
				},
			},
			wantErr:      false,
			wantAPICalls: 2,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(tt.doer)
			got, err := c.ReposByLogin(context.Background(), tt.login, tt.count)
			require.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)

			if tt.doer == nil {
				return
			}

			require.Len(t, tt.doer.Responses, tt.wantAPICalls)
			req := tt.doer.Responses[len(tt.doer.Responses)-1].Request
			assert.Equal(t, "updated", req.URL.Query().Get("sort"))
			assert.Equal(t, strconv.Itoa(tt.count), req.URL.Query().Get("per_page"))
			checkAPIHeaders(req, t)
		})
	}
}

func TestClient_MonthlyCommitCount(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK, http.StatusOK},
		Bodies: [][]byte{
			okQuotaJSON(),
			[]byte(`{"total_count": 123, "incomplete_results": false, "items": []}`),
		},
	}
	c := newTestClient(doer)

	got, err := c.MonthlyCommitCount(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, 123, got)

	require.Len(t, doer.Responses, 2)
	req := doer.Responses[1].Request
	assert.Contains(t, req.URL.Query().Get("q"), "author:octocat")
	assert.Contains(t, req.URL.Query().Get("q"), "author-date:>")
	assert.Equal(t, "1", req.URL.Query().Get("per_page"))
	checkAPIHeaders(req, t)
}

func checkAPIHeaders(r *http.Request, t *testing.T) {
	assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
	assert.Contains(t, r.Header.Get("Authorization"), "token ")
}
