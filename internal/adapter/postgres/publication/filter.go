package publication

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// applyFilter ANDs the filter predicates onto the select.
// Published rows satisfy date <= now, scheduled rows date > now.
func applyFilter(b sq.SelectBuilder, f domain.PublicationFilter) sq.SelectBuilder {
	if f.After != nil {
		b = b.Where(sq.Gt{"date": f.After.UTC()})
	}

	if f.Published != nil {
		now := f.Now.UTC()
		if *f.Published {
			b = b.Where(sq.LtOrEq{"date": now})
		} else {
			b = b.Where(sq.Gt{"date": now})
		}
	}

	return b
}
