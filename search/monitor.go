package search

import "github.com/poiesic/lectern/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate stages during search,
// including the lexical ranking, whose output does not affect the
// returned order.
type SearchMonitor interface {
	Start(query string)
	AfterKeywordExpansion(keywords []string)
	AfterProfileRetrieval(profiles []*core.Profile)
	AfterLexicalRanking(profiles []*core.Profile)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                          {}
func (n *noopMonitor) AfterKeywordExpansion(_ []string)        {}
func (n *noopMonitor) AfterProfileRetrieval(_ []*core.Profile) {}
func (n *noopMonitor) AfterLexicalRanking(_ []*core.Profile)   {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)           {}
