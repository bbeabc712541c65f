// Package pagination tracks offset based paging over the remote feed.
package pagination

// DefaultPageSize is used when a non-positive page size is requested.
const DefaultPageSize = 5

// State is a point-in-time copy of a Manager.
type State struct {
	Page      int  `json:"page"`
	PageSize  int  `json:"pageSize"`
	Loading   bool `json:"loading"`
	Exhausted bool `json:"exhausted"`
}

// Manager holds the paging cursor. It is not safe for concurrent use.
type Manager struct {
	page      int
	pageSize  int
	loading   bool
	exhausted bool
}

func New(pageSize int) *Manager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Manager{pageSize: pageSize}
}

// CanLoadNextPage reports whether a new request may be issued.
func (m *Manager) CanLoadNextPage() bool {
	return !m.loading && !m.exhausted
}

// BeginLoading marks a request as in flight. Callers check CanLoadNextPage first.
func (m *Manager) BeginLoading() {
	m.loading = true
}

// EndLoading records a completed request that returned received items.
// A short page marks the feed as exhausted until Reset.
func (m *Manager) EndLoading(received int) {
	m.loading = false
	m.page++
	m.exhausted = received < m.pageSize
}

// RequestParams returns the offset and limit of the next page.
func (m *Manager) RequestParams() (start, limit int) {
	return m.page * m.pageSize, m.pageSize
}

func (m *Manager) Reset() {
	m.page = 0
	m.loading = false
	m.exhausted = false
}

func (m *Manager) PageSize() int {
	return m.pageSize
}

func (m *Manager) Snapshot() State {
	return State{
		Page:      m.page,
		PageSize:  m.pageSize,
		Loading:   m.loading,
		Exhausted: m.exhausted,
	}
}
