package app

import "math"

// Score weights: language match 40, repository balance 30, community engagement 30.
const (
	languageMatchScore = 40.0
	languageKnownScore = 20.0
	repoOverlapWeight  = 30.0
	followerScoreCap   = 30.0
	unknownLanguage    = "Unknown"
)

// collaborationScore rates how well two profiles would collaborate.
// Pure function, 100 points max. Each sub-score is rounded to 2 decimal
// places independently, then the total is rounded again.
//
// Two profiles both reporting "Unknown" as top language hit the equality
// branch and get the full 40 points. Intentional, pinned by tests.
func collaborationScore(a, b *Profile) (total, language, repoOverlap, follower float64) {
	switch {
	case a.TopLanguage == b.TopLanguage:
		language = languageMatchScore
	case a.TopLanguage != unknownLanguage && b.TopLanguage != unknownLanguage:
		language = languageKnownScore
	}

	if a.Repositories > 0 || b.Repositories > 0 {
		min, max := float64(a.Repositories), float64(b.Repositories)
		if min > max {
			min, max = max, min
		}
		repoOverlap = min / max * repoOverlapWeight
	}

	follower = float64(a.Followers+b.Followers) / 10
	if follower > followerScoreCap {
		follower = followerScoreCap
	}

	language = round2(language)
	repoOverlap = round2(repoOverlap)
	follower = round2(follower)
	total = round2(language + repoOverlap + follower)

	return total, language, repoOverlap, follower
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
