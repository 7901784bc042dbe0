package search

import (
	"testing"

	"github.com/poiesic/lectern/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileWithSummary(url, summary string) *core.Profile {
	p := core.NewProfile(url)
	p.Summary = summary
	return p
}

func TestRankByKeywords(t *testing.T) {
	t.Run("orders by descending hit count", func(t *testing.T) {
		profiles := []*core.Profile{
			profileWithSummary("https://example.edu/1", "medieval literature"),
			profileWithSummary("https://example.edu/2", "machine learning and robotics"),
			profileWithSummary("https://example.edu/3", "machine vision"),
		}

		ranked := RankByKeywords(profiles, []string{"machine", "learning", "robotics"})
		require.Len(t, ranked, 3)
		assert.Equal(t, "https://example.edu/2", ranked[0].URL) // 3 hits
		assert.Equal(t, "https://example.edu/3", ranked[1].URL) // 1 hit
		assert.Equal(t, "https://example.edu/1", ranked[2].URL) // 0 hits
	})

	t.Run("matching is case-insensitive substring", func(t *testing.T) {
		profiles := []*core.Profile{
			profileWithSummary("https://example.edu/1", "Biochemistry of proteins"),
			profileWithSummary("https://example.edu/2", "ancient history"),
		}

		// "chem" occurs inside "Biochemistry"
		ranked := RankByKeywords(profiles, []string{"CHEM"})
		require.Len(t, ranked, 2)
		assert.Equal(t, "https://example.edu/1", ranked[0].URL)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		profiles := []*core.Profile{
			profileWithSummary("https://example.edu/1", "quantum computing"),
			profileWithSummary("https://example.edu/2", "quantum chemistry"),
			profileWithSummary("https://example.edu/3", "quantum optics"),
		}

		ranked := RankByKeywords(profiles, []string{"quantum"})
		require.Len(t, ranked, 3)
		assert.Equal(t, "https://example.edu/1", ranked[0].URL)
		assert.Equal(t, "https://example.edu/2", ranked[1].URL)
		assert.Equal(t, "https://example.edu/3", ranked[2].URL)
	})

	t.Run("no keywords returns input order", func(t *testing.T) {
		profiles := []*core.Profile{
			profileWithSummary("https://example.edu/1", "astrophysics"),
			profileWithSummary("https://example.edu/2", "geology"),
		}

		ranked := RankByKeywords(profiles, []string{})
		require.Len(t, ranked, 2)
		assert.Equal(t, "https://example.edu/1", ranked[0].URL)
		assert.Equal(t, "https://example.edu/2", ranked[1].URL)
	})

	t.Run("nil profiles are skipped", func(t *testing.T) {
		profiles := []*core.Profile{
			profileWithSummary("https://example.edu/1", "robotics"),
			nil,
			profileWithSummary("https://example.edu/2", "linguistics"),
		}

		ranked := RankByKeywords(profiles, []string{"robotics"})
		require.Len(t, ranked, 2)
		assert.Equal(t, "https://example.edu/1", ranked[0].URL)
		assert.Equal(t, "https://example.edu/2", ranked[1].URL)
	})

	t.Run("empty collection", func(t *testing.T) {
		ranked := RankByKeywords([]*core.Profile{}, []string{"anything"})
		assert.Empty(t, ranked)
	})
}
