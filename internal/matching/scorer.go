// Package matching computes compatibility scores between volunteer profiles
// and open tasks, and ranks task lists for a volunteer.
package matching

import (
	"sort"
	"strings"

	"github.com/volunteerhub/volunteer-hub-api/internal/constants"
)

// Profile is the slice of a volunteer relevant to matching.
type Profile struct {
	Skills []string
	City   string
}

// Candidate is the slice of a task relevant to matching.
type Candidate struct {
	Skills []string
	City   string
}

// Score returns a 0-100 match percentage. Each shared skill tag contributes
// MatchSkillWeight and a matching city adds MatchCityBonus, so sharing more
// tags always ranks strictly higher and the city bonus is strictly positive.
// Deterministic and total: every (profile, candidate) pair yields one score.
func Score(p Profile, c Candidate) int {
	shared := 0
	have := make(map[string]struct{}, len(p.Skills))
	for _, s := range p.Skills {
		have[s] = struct{}{}
	}
	for _, s := range c.Skills {
		if _, ok := have[s]; ok {
			shared++
		}
	}

	score := shared * constants.MatchSkillWeight
	if p.City != "" && strings.EqualFold(p.City, c.City) {
		score += constants.MatchCityBonus
	}
	return score
}

// Rank sorts items by descending score for the given profile. The sort is
// stable: equal scores keep their incoming (server-provided) order. score is
// reported back through setScore so callers can surface it.
func Rank[T any](p Profile, items []T, candidate func(T) Candidate, setScore func(*T, int)) {
	type scored struct {
		item  T
		score int
	}
	ranked := make([]scored, len(items))
	for i := range items {
		s := Score(p, candidate(items[i]))
		setScore(&items[i], s)
		ranked[i] = scored{item: items[i], score: s}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	for i := range ranked {
		items[i] = ranked[i].item
	}
}
