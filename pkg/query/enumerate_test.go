package query

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexhub-io/nexctl/pkg/api"
)

func testRecords(n int) []api.Record {
	recs := make([]api.Record, n)
	for i := range recs {
		recs[i] = api.Record{"id": fmt.Sprintf("j%d", i)}
	}
	return recs
}

func drain(t *testing.T, e *Enumerator) []api.Record {
	t.Helper()
	var out []api.Record
	for {
		rec, ok, err := e.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			return out
		}
		out = append(out, rec)
	}
}

func TestEnumeratorPagesInOffsetOrder(t *testing.T) {
	mock := api.PagedMock(testRecords(5), api.MustVersion("20.09"))
	e := NewEnumerator(mock, "jobs", nil, nil, 2, 0)

	got := drain(t, e)
	require.Len(t, got, 5)
	for i, rec := range got {
		assert.Equal(t, fmt.Sprintf("j%d", i), rec["id"])
	}

	// ceil(5/2) pages, each starting where the last one ended.
	assert.Equal(t, 3, e.FetchCount())
	require.Len(t, mock.PageCalls, 3)
	assert.Equal(t, 0, mock.PageCalls[0].Offset)
	assert.Equal(t, 2, mock.PageCalls[1].Offset)
	assert.Equal(t, 4, mock.PageCalls[2].Offset)

	total, ok := e.Total()
	assert.True(t, ok)
	assert.Equal(t, 5, total)
}

func TestEnumeratorEmptyResult(t *testing.T) {
	mock := api.PagedMock(nil, api.MustVersion("20.09"))
	e := NewEnumerator(mock, "jobs", nil, nil, 20, 0)

	got := drain(t, e)
	assert.Empty(t, got)
	assert.Equal(t, 1, e.FetchCount())

	// Exhaustion is sticky.
	_, ok, err := e.Next(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, e.FetchCount())
}

func TestEnumeratorExactPageBoundary(t *testing.T) {
	mock := api.PagedMock(testRecords(4), api.MustVersion("20.09"))
	e := NewEnumerator(mock, "jobs", nil, nil, 2, 0)

	got := drain(t, e)
	assert.Len(t, got, 4)
	// The known total stops the enumeration without a trailing empty
	// page request.
	assert.Equal(t, 2, e.FetchCount())
}

func TestEnumeratorMaxItems(t *testing.T) {
	mock := api.PagedMock(testRecords(10), api.MustVersion("20.09"))
	e := NewEnumerator(mock, "jobs", nil, nil, 2, 3)

	got := drain(t, e)
	require.Len(t, got, 3)

	// The final page request is trimmed so the cap is never overshot.
	require.Len(t, mock.PageCalls, 2)
	assert.Equal(t, 2, mock.PageCalls[0].Limit)
	assert.Equal(t, 1, mock.PageCalls[1].Limit)
	assert.Equal(t, 3, e.Fetched())
}

func TestEnumeratorDefaultPageSize(t *testing.T) {
	mock := api.PagedMock(testRecords(1), api.MustVersion("20.09"))
	e := NewEnumerator(mock, "jobs", nil, nil, 0, 0)

	drain(t, e)
	require.NotEmpty(t, mock.PageCalls)
	assert.Equal(t, DefaultPageSize, mock.PageCalls[0].Limit)
}

func TestEnumeratorRepeatingTailPage(t *testing.T) {
	// A misbehaving server that keeps serving its first page forever,
	// claiming more data every time. The known total must break the
	// loop.
	recs := testRecords(4)
	mock := api.NewMockTransport()
	mock.FetchPageFunc = func(_ context.Context, _ string, _ map[string]string, _ []string, _, limit int) (*api.Page, error) {
		return &api.Page{
			Records:    recs[:2],
			Limit:      limit,
			TotalCount: 4,
			HasTotal:   true,
			HasMore:    true,
		}, nil
	}
	e := NewEnumerator(mock, "jobs", nil, nil, 2, 0)

	got := drain(t, e)
	assert.Len(t, got, 4)
	assert.Equal(t, 2, e.FetchCount())
}

func TestEnumeratorTransportFailure(t *testing.T) {
	boom := errors.New("connection reset")
	calls := 0
	mock := api.NewMockTransport()
	mock.FetchPageFunc = func(_ context.Context, _ string, _ map[string]string, _ []string, offset, limit int) (*api.Page, error) {
		calls++
		if calls > 1 {
			return nil, boom
		}
		return &api.Page{
			Records:    testRecords(2),
			Offset:     offset,
			Limit:      limit,
			TotalCount: 10,
			HasTotal:   true,
			HasMore:    true,
		}, nil
	}
	e := NewEnumerator(mock, "jobs", nil, nil, 2, 0)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		_, ok, err := e.Next(ctx)
		require.NoError(t, err)
		require.True(t, ok)
	}

	_, ok, err := e.Next(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)

	// The failure terminates the enumeration for good.
	_, ok, err = e.Next(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, calls)
}
