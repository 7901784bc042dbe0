package search

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/lectern/core"
)

// RankByKeywords orders profiles by the number of keywords that occur,
// case-insensitively, as substrings of the profile's flattened text.
//
// The sort is stable and descending: profiles with equal hit counts keep
// their relative input order. Profiles that cannot be scored are skipped
// with a log line rather than aborting the batch. With no keywords every
// count is zero and the input order is returned unchanged.
func RankByKeywords(profiles []*core.Profile, keywords []string) []*core.Profile {
	return rankByKeywords(profiles, keywords, slog.Default())
}

func rankByKeywords(profiles []*core.Profile, keywords []string, logger *slog.Logger) []*core.Profile {
	lowered := make([]string, len(keywords))
	for i, keyword := range keywords {
		lowered[i] = strings.ToLower(keyword)
	}

	type scored struct {
		profile *core.Profile
		hits    int
	}

	ranked := make([]scored, 0, len(profiles))
	for _, profile := range profiles {
		if profile == nil {
			logger.Warn("skipping unscorable profile in lexical ranking")
			continue
		}
		text := strings.ToLower(profile.FlattenedText())
		hits := 0
		for _, keyword := range lowered {
			if keyword != "" && strings.Contains(text, keyword) {
				hits++
			}
		}
		ranked = append(ranked, scored{profile: profile, hits: hits})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].hits > ranked[j].hits
	})

	result := make([]*core.Profile, len(ranked))
	for i, s := range ranked {
		result[i] = s.profile
	}
	return result
}
