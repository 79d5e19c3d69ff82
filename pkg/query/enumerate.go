package query

import (
	"context"

	"github.com/nexhub-io/nexctl/pkg/api"
)

// Enumerator is an explicit pull cursor over a multi-page list query.
// Pages are fetched sequentially in strictly increasing offset order;
// the offset advances by the number of records actually returned, so
// short pages do not skip records. A transport failure terminates the
// enumeration; records already handed out stay handed out.
//
// The cursor is restartable only by building a new Enumerator. Not
// safe for concurrent use.
type Enumerator struct {
	transport api.Transport
	kind      string
	filters   map[string]string
	fields    []string
	pageSize  int
	maxItems  int // 0 means unbounded

	offset     int
	fetched    int
	total      int
	hasTotal   bool
	fetchCount int
	exhausted  bool
	buf        []api.Record
}

// NewEnumerator builds a cursor for one list query. fields names the
// wire keys to request from servers supporting partial responses.
func NewEnumerator(t api.Transport, kind string, filters map[string]string, fields []string, pageSize, maxItems int) *Enumerator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Enumerator{
		transport: t,
		kind:      kind,
		filters:   filters,
		fields:    fields,
		pageSize:  pageSize,
		maxItems:  maxItems,
	}
}

// Next returns the next record, or ok=false at the end of the
// enumeration. After an error or end-of-sequence, all further calls
// return ok=false.
func (e *Enumerator) Next(ctx context.Context) (api.Record, bool, error) {
	for len(e.buf) == 0 {
		if e.exhausted {
			return nil, false, nil
		}
		if err := e.fetch(ctx); err != nil {
			e.exhausted = true
			return nil, false, err
		}
	}
	rec := e.buf[0]
	e.buf = e.buf[1:]
	return rec, true, nil
}

func (e *Enumerator) fetch(ctx context.Context) error {
	limit := e.pageSize
	if e.maxItems > 0 {
		if remaining := e.maxItems - e.fetched; remaining < limit {
			limit = remaining
		}
	}
	if limit <= 0 {
		e.exhausted = true
		return nil
	}

	page, err := e.transport.FetchPage(ctx, e.kind, e.filters, e.fields, e.offset, limit)
	if err != nil {
		return err
	}
	e.fetchCount++

	n := len(page.Records)
	e.offset += n
	e.fetched += n
	if page.HasTotal {
		e.total = page.TotalCount
		e.hasTotal = true
	}

	// End-of-sequence signals: an empty or short page, the server's own
	// has-more flag, the known total reached (guards against a server
	// repeating its tail page), or the caller's item cap.
	switch {
	case n == 0:
		e.exhausted = true
	case n < limit:
		e.exhausted = true
	case !page.HasMore:
		e.exhausted = true
	case e.hasTotal && e.fetched >= e.total:
		e.exhausted = true
	case e.maxItems > 0 && e.fetched >= e.maxItems:
		e.exhausted = true
	}

	e.buf = append(e.buf, page.Records...)
	return nil
}

// FetchCount returns the number of page requests issued so far.
func (e *Enumerator) FetchCount() int {
	return e.fetchCount
}

// Fetched returns the number of records received so far.
func (e *Enumerator) Fetched() int {
	return e.fetched
}

// Total returns the server-reported total count, if any page carried
// one.
func (e *Enumerator) Total() (int, bool) {
	return e.total, e.hasTotal
}
