package github

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avast/retry-go"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/m-zajac/gitmatch/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns details about github users and their repositories.
// This struct is an adapter for app.GithubClient.
//go:generate mockgen -destination ../../app/mock/githubclient.go -package mock github.com/m-zajac/gitmatch/internal/app GithubClient
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string
	l         logrus.FieldLogger

	callTimeout     time.Duration
	retryAttempts   uint
	retryBaseDelay  time.Duration
	responseMaxSize int

	// Quota left below this threshold makes calls fail fast
	// instead of burning the last requests.
	minRemainingQuota int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// authToken is optional, rate limit is lower without it.
func NewClient(doer HTTPDoer, address string, authToken string, l logrus.FieldLogger) *Client {
	c := Client{
		doer:      doer,
		address:   address,
		authToken: authToken,
		l:         l,

		callTimeout:     10 * time.Second,
		retryAttempts:   3,
		retryBaseDelay:  500 * time.Millisecond,
		responseMaxSize: 1024 * 1024 * 10,

		minRemainingQuota: 10,
	}

	return &c
}

// UserByLogin returns core account data for given github login.
func (c *Client) UserByLogin(ctx context.Context, login string) (app.User, error) {
	if login == "" {
		return app.User{}, app.InvalidRequestError("login cannot be empty")
	}
	if err := c.checkRateLimit(ctx); err != nil {
		return app.User{}, err
	}

	u := c.address + "/users/" + url.PathEscape(login)
	body, err := c.makeRequest(ctx, u)
	if err != nil {
		return app.User{}, fmt.Errorf("making http request: %w", err)
	}

	var resp userResponse
	if err := jsoniter.Unmarshal(body, &resp); err != nil {
		return app.User{}, fmt.Errorf("unmarshalling response: %w", err)
	}

	return resp.ToUser(), nil
}

// ReposByLogin returns up to count repositories for given github login,
// most recently updated first.
func (c *Client) ReposByLogin(ctx context.Context, login string, count int) ([]app.Repository, error) {
	if login == "" {
		return nil, app.InvalidRequestError("login cannot be empty")
	}
	if count < 1 || count > 100 {
		return nil, app.InvalidRequestError("count must be in range <1..100>")
	}
	if err := c.checkRateLimit(ctx); err != nil {
		return nil, err
	}

	u, err := url.Parse(c.address + "/users/" + url.PathEscape(login) + "/repos")
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	v := make(url.Values)
	v.Set("sort", "updated")
	v.Set("per_page", strconv.Itoa(count))
	u.RawQuery = v.Encode()

	body, err := c.makeRequest(ctx, u.String())
	if err != nil {
		return nil, fmt.Errorf("making http request: %w", err)
	}

	var resp reposResponse
	if err := jsoniter.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshalling response: %w", err)
	}

	return resp.ToRepositories(), nil
}

// MonthlyCommitCount returns the number of commits authored by given login
// within the last 30 days. Best effort, callers may treat errors as "no data".
func (c *Client) MonthlyCommitCount(ctx context.Context, login string) (int, error) {
	if login == "" {
		return 0, app.InvalidRequestError("login cannot be empty")
	}
	if err := c.checkRateLimit(ctx); err != nil {
		return 0, err
	}

	u, err := url.Parse(c.address + "/search/commits")
	if err != nil {
		return 0, fmt.Errorf("invalid url: %w", err)
	}
	since := time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	v := make(url.Values)
	v.Set("q", fmt.Sprintf("author:%s author-date:>%s", login, since))
	v.Set("per_page", "1")
	u.RawQuery = v.Encode()

	body, err := c.makeRequest(ctx, u.String())
	if err != nil {
		return 0, fmt.Errorf("making http request: %w", err)
	}

	var resp commitSearchResponse
	if err := jsoniter.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("unmarshalling response: %w", err)
	}

	return resp.TotalCount, nil
}

// checkRateLimit fails fast when the remaining api quota is nearly exhausted.
// Errors of the check itself are logged and ignored.
func (c *Client) checkRateLimit(ctx context.Context) error {
	req, err := http.NewRequest(http.MethodGet, c.address+"/rate_limit", nil)
	if err != nil {
		return fmt.Errorf("creating http request: %w", err)
	}
	c.setAPIHeaders(req)

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		c.l.Warnf("rate limit check failed: %v", err)
		return nil
	}
	defer func() {
		_, _ = io.CopyN(ioutil.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		c.l.Warnf("rate limit check returned status %d", resp.StatusCode)
		return nil
	}

	body, err := ioutil.ReadAll(io.LimitReader(resp.Body, int64(c.responseMaxSize)))
	if err != nil {
		c.l.Warnf("rate limit check failed: reading body: %v", err)
		return nil
	}
	var rl rateLimitResponse
	if err := jsoniter.Unmarshal(body, &rl); err != nil {
		c.l.Warnf("rate limit check failed: unmarshalling body: %v", err)
		return nil
	}

	if rl.Resources.Core.Remaining < c.minRemainingQuota {
		return &app.RateLimitedError{
			Message:    "github api rate limit exceeded",
			RetryAfter: time.Until(time.Unix(rl.Resources.Core.Reset, 0)),
		}
	}

	return nil
}

func (c *Client) makeRequest(ctx context.Context, rawurl string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	var body []byte
	err := retry.Do(
		func() error {
			b, err := c.doRequest(ctx, rawurl)
			if err != nil {
				return err
			}
			body = b
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.retryAttempts),
		retry.Delay(c.retryBaseDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, app.TimeoutError("github api call timed out")
		}
		return nil, err
	}

	return body, nil
}

func (c *Client) doRequest(ctx context.Context, rawurl string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, rawurl, nil)
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("creating http request: %w", err))
	}
	c.setAPIHeaders(req)

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, retry.Unrecoverable(app.TimeoutError("github api call timed out"))
		}
		return nil, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		_, _ = io.CopyN(ioutil.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if err := c.checkResponseStatus(resp); err != nil {
		return nil, err
	}

	b, err := ioutil.ReadAll(io.LimitReader(resp.Body, int64(c.responseMaxSize)))
	if err != nil {
		return nil, fmt.Errorf("reading http response body: %w", err)
	}

	return b, nil
}

// checkResponseStatus maps github statuses to app errors.
// Transient statuses return plain errors, eligible for another attempt.
func (c *Client) checkResponseStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return retry.Unrecoverable(app.NotFoundError("github user not found"))
	case http.StatusForbidden:
		return retry.Unrecoverable(&app.RateLimitedError{
			Message:    "github api rate limit exceeded",
			RetryAfter: retryAfterHeaderHint(resp.Header),
		})
	case http.StatusTooManyRequests:
		return &app.RateLimitedError{
			Message:    "github api rate limit exceeded",
			RetryAfter: retryAfterHeaderHint(resp.Header),
		}
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return fmt.Errorf("got transient http status code: %d", resp.StatusCode)
	default:
		return retry.Unrecoverable(fmt.Errorf("got invalid http status code: %d", resp.StatusCode))
	}
}

func (c *Client) setAPIHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "token "+c.authToken)
	}
}

func retryAfterHeaderHint(h http.Header) time.Duration {
	if s := h.Get("Retry-After"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	if s := h.Get("X-RateLimit-Reset"); s != "" {
		if reset, err := strconv.ParseInt(s, 10, 64); err == nil {
			if d := time.Until(time.Unix(reset, 0)); d > 0 {
				return d
			}
		}
	}

	return 0
}
