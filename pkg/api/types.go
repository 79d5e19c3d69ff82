package api

// Record is one raw item returned by the manager API: a mapping from
// wire keys to values. It only lives for the duration of processing one
// page or detail response; field transforms are the only code that
// looks inside it.
type Record map[string]any

// Page is one bounded batch of records from a list query, plus the
// pagination metadata the server sent along.
type Page struct {
	Records    []Record
	Offset     int
	Limit      int
	TotalCount int  // valid only when HasTotal is true
	HasTotal   bool // some server versions omit total_count
	HasMore    bool
}
