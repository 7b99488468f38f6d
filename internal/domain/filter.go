package domain

import "time"

// PublicationFilter restricts a publication listing. All set predicates are ANDed.
type PublicationFilter struct {
	// After keeps publications with date strictly greater than After.
	After *time.Time

	// Published keeps published (true) or scheduled (false) publications.
	// nil means no status restriction.
	Published *bool

	// Now is the instant the status predicate is evaluated against.
	// It is sampled once per query so the partition is consistent.
	Now time.Time
}
