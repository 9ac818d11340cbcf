package catalog

import (
	"fmt"
	"strings"
)

var knownColumns = func() map[string]bool {
	m := make(map[string]bool, len(IntroVideoColumns))
	for _, c := range IntroVideoColumns {
		m[c] = true
	}
	return m
}()

// validate keeps caller-supplied identifiers out of SQL unless they are
// known video columns.
func (q Query) validate() error {
	if len(q.Fields) == 0 {
		return fmt.Errorf("query has no fields")
	}
	for _, f := range q.Fields {
		if !knownColumns[f] {
			return fmt.Errorf("unknown column %q", f)
		}
	}
	if q.OrderBy != "" && !knownColumns[q.OrderBy] {
		return fmt.Errorf("unknown order column %q", q.OrderBy)
	}
	if q.Limit < 1 {
		return fmt.Errorf("limit must be at least 1; got %d", q.Limit)
	}
	return nil
}

func (q Query) selectList() string {
	return strings.Join(q.Fields, ", ")
}

func (q Query) orderClause() string {
	if q.OrderBy == "" {
		return ""
	}
	if q.Descending {
		return q.OrderBy + " DESC"
	}
	return q.OrderBy + " ASC"
}
