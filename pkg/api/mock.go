package api

import "context"

// PageCall records the arguments of one FetchPage invocation.
type PageCall struct {
	Kind   string
	Offset int
	Limit  int
}

// MockTransport is a hand-rolled Transport double for tests. Behaviors
// are injected through the *Func fields; every call is recorded.
type MockTransport struct {
	FetchPageFunc func(ctx context.Context, kind string, filters map[string]string, fields []string, offset, limit int) (*Page, error)
	FetchOneFunc  func(ctx context.Context, kind, id string, fields []string) (Record, error)
	DeleteFunc    func(ctx context.Context, kind, id string) error
	Version       Version

	PageCalls   []PageCall
	OneCalls    []string
	DeleteCalls []string
	CloseCalled bool
}

// NewMockTransport returns an empty mock. With no *Func fields set,
// list queries return a single empty page and detail queries return
// ErrNotFound.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

func (m *MockTransport) FetchPage(ctx context.Context, kind string, filters map[string]string, fields []string, offset, limit int) (*Page, error) {
	m.PageCalls = append(m.PageCalls, PageCall{Kind: kind, Offset: offset, Limit: limit})
	if m.FetchPageFunc != nil {
		return m.FetchPageFunc(ctx, kind, filters, fields, offset, limit)
	}
	return &Page{Offset: offset, Limit: limit}, nil
}

func (m *MockTransport) FetchOne(ctx context.Context, kind, id string, fields []string) (Record, error) {
	m.OneCalls = append(m.OneCalls, id)
	if m.FetchOneFunc != nil {
		return m.FetchOneFunc(ctx, kind, id, fields)
	}
	return nil, ErrNotFound
}

func (m *MockTransport) Delete(ctx context.Context, kind, id string) error {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, kind, id)
	}
	return nil
}

func (m *MockTransport) ServerVersion() Version {
	return m.Version
}

func (m *MockTransport) Close() error {
	m.CloseCalled = true
	return nil
}

// PagedMock builds a mock that serves the given records in pages of the
// requested limit, with correct total_count and has_more metadata.
// Useful for exercising the enumeration engine against a well-behaved
// server.
func PagedMock(records []Record, version Version) *MockTransport {
	m := NewMockTransport()
	m.Version = version
	m.FetchPageFunc = func(_ context.Context, _ string, _ map[string]string, _ []string, offset, limit int) (*Page, error) {
		total := len(records)
		end := offset + limit
		if end > total {
			end = total
		}
		var batch []Record
		if offset < total {
			batch = records[offset:end]
		}
		return &Page{
			Records:    batch,
			Offset:     offset,
			Limit:      limit,
			TotalCount: total,
			HasTotal:   true,
			HasMore:    end < total,
		}, nil
	}
	return m
}

var _ Transport = (*MockTransport)(nil)
