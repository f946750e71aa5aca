package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8000"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// ServiceResponseTimeout - timeout for service execution
	ServiceResponseTimeout time.Duration `default:"30s"`

	// AllowedOrigins - cors allow-list of known frontend/backend origins
	AllowedOrigins []string `default:"https://gitmatch.vercel.app,https://git-match-backend.vercel.app,http://localhost:5173,http://localhost:8000"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token for rest github api (optional, rate limit is lower without this token)
	GithubAPIToken string `default:""`

	// GithubAPIRateLimit - max frequency for github rest api calls
	GithubAPIRateLimit float64 `default:"5"`

	// GithubReposPageSize - repository page size requested from github (max 100)
	GithubReposPageSize int `default:"100"`

	// ProfileFreshness - maximum age of a stored profile before it is refetched
	ProfileFreshness time.Duration `default:"1h"`

	// ProfileCacheSize - maximum number of profiles kept in the in-memory read cache
	ProfileCacheSize int `default:"10000"`

	// ProfileCacheTTL - maximum lifetime for in-memory read cache entries
	ProfileCacheTTL time.Duration `default:"10m"`

	// DBPath - filepath for bolt db data
	DBPath string `default:"./gitmatch.data"`

	// DBProfilesBucketName - bolt db bucket name for profiles
	DBProfilesBucketName string `default:"profiles"`

	// DBRecentViewsBucketName - bolt db bucket name for the recent views ledger
	DBRecentViewsBucketName string `default:"recentviews"`
}
