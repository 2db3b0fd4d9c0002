package matching

import "sort"

// JobMatch ties a Result back to the position of its job in the input slice.
type JobMatch struct {
	Index int
	Result
}

// RankJobs scores every job against p and returns the best limit matches,
// highest score first. Ties keep input order. A limit <= 0 keeps all.
func RankJobs(p Profile, jobs []JobProfile, limit int) []JobMatch {
	out := make([]JobMatch, 0, len(jobs))
	for i, j := range jobs {
		out = append(out, JobMatch{Index: i, Result: ScoreProfile(p, j)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
