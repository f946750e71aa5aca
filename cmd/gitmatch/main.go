package main

import (
	netHttp "net/http"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/m-zajac/gitmatch/internal/adapter/github"
	"github.com/m-zajac/gitmatch/internal/api/http"
	"github.com/m-zajac/gitmatch/internal/app"
	"github.com/m-zajac/gitmatch/internal/database"
	"github.com/m-zajac/gitmatch/internal/limiter"
	"github.com/m-zajac/gitmatch/internal/store"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}

	db, err := database.NewBoltDB(conf.DBPath)
	if err != nil {
		l.Fatalf("couldn't open bolt db: %v", err)
	}
	defer db.Close()

	profilesKV, err := db.KVStore(conf.DBProfilesBucketName)
	if err != nil {
		l.Fatalf("couldn't create profiles kv store: %v", err)
	}
	recentViewsKV, err := db.KVStore(conf.DBRecentViewsBucketName)
	if err != nil {
		l.Fatalf("couldn't create recent views kv store: %v", err)
	}

	profiles, err := store.NewCachedProfiles(
		store.NewProfiles(profilesKV),
		conf.ProfileCacheSize,
		conf.ProfileCacheTTL,
	)
	if err != nil {
		l.Fatalf("couldn't create profiles cache: %v", err)
	}
	recentViews := store.NewRecentViews(recentViewsKV)

	httpClient := &netHttp.Client{
		Timeout: 30 * time.Second,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
	)
	githubClient := github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
		conf.GithubAPIToken,
		l.WithField("component", "githubClient"),
	)

	service := app.NewService(
		githubClient,
		profiles,
		recentViews,
		conf.ProfileFreshness,
		conf.GithubReposPageSize,
		l.WithField("component", "service"),
	)

	mux := http.NewMux(
		service,
		conf.ServiceResponseTimeout,
		conf.AllowedOrigins,
		l.WithField("component", "mux"),
	)
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	server.Run()
}
