// Package session is the single owner of the browse state: the canonical
// query, the displayed result set, and the loading/error flags. Every UI
// intent lands here, mutates exactly one slice of the query, and issues
// exactly one fetch. Responses are reconciled last-query-wins.
package session

import (
	"context"
	"sync"
	"time"

	"roster-browser/internal/api"
	"roster-browser/internal/cache"
	commonerrors "roster-browser/internal/common/errors"
	"roster-browser/internal/common/logger"
	"roster-browser/internal/common/metrics"
	"roster-browser/internal/pagewindow"
	"roster-browser/internal/roster"
)

// Fetcher is the fetch boundary; the session is its sole caller.
type Fetcher interface {
	SearchPlayers(ctx context.Context, q roster.Query) (*api.SearchResponse, error)
}

// ResultSet is the displayed listing. It is replaced wholesale on every
// successful fetch and cleared on failure, never merged incrementally.
type ResultSet struct {
	Items      []api.Player
	TotalCount int
	TotalPages int
}

// Snapshot is a read-only copy of the session state for rendering.
type Snapshot struct {
	Query   roster.Query
	Result  ResultSet
	Loading bool
	Err     *commonerrors.BrowseError
}

// Listener is invoked after every committed state change, outside the
// session lock.
type Listener func(Snapshot)

// Fetch trigger labels for metrics.
const (
	TriggerInitial      = "initial"
	TriggerSearch       = "search"
	TriggerFilters      = "filters"
	TriggerSort         = "sort"
	TriggerPage         = "page"
	TriggerItemsPerPage = "items_per_page"
	TriggerRetry        = "retry"
)

// Session owns the query and result state. All mutation goes through the
// On* handlers; collaborators read Snapshot and emit intent, never write.
type Session struct {
	fetcher  Fetcher
	cache    *cache.ResultCache
	logger   logger.Logger
	listener Listener

	mu      sync.Mutex
	query   roster.Query
	result  ResultSet
	loading bool
	err     *commonerrors.BrowseError
	gen     uint64
}

// New builds a session with default query state. No fetch is issued until
// Start or the first intent.
func New(fetcher Fetcher, resultCache *cache.ResultCache, log logger.Logger, limit int) *Session {
	if resultCache == nil {
		resultCache = cache.NewDisabled(log)
	}
	return &Session{
		fetcher: fetcher,
		cache:   resultCache,
		logger:  log,
		query:   roster.DefaultQuery(limit),
	}
}

// SetListener registers the commit callback. Must be called before any
// fetch is issued.
func (s *Session) SetListener(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = l
}

// Start issues the initial fetch for the default query.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchLocked(TriggerInitial)
}

// OnSearch replaces the search text and field, resets to page 1 and fetches.
func (s *Session) OnSearch(text string, field roster.SearchField) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !roster.ValidSearchField(field) {
		field = roster.SearchFieldAll
	}
	s.query.Search = text
	s.query.Field = field
	s.query.Page = 1
	s.fetchLocked(TriggerSearch)
}

// OnFilterApply replaces the applied filter list, resets to page 1 and
// fetches. The composer guarantees every filter is complete.
func (s *Session) OnFilterApply(filters []roster.Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Filters = append([]roster.Filter(nil), filters...)
	s.query.Page = 1
	s.fetchLocked(TriggerFilters)
}

// OnSortClick toggles direction when field is the current sort column and
// starts ascending on a column switch. Unknown columns are ignored.
func (s *Session) OnSortClick(field roster.SortField) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !roster.ValidSortField(field) {
		s.logger.Warn("Ignoring sort on unknown column", map[string]interface{}{
			"field": string(field),
		})
		return
	}
	if s.query.SortBy == field {
		if s.query.SortOrder == roster.SortAsc {
			s.query.SortOrder = roster.SortDesc
		} else {
			s.query.SortOrder = roster.SortAsc
		}
	} else {
		s.query.SortBy = field
		s.query.SortOrder = roster.SortAsc
	}
	s.query.Page = 1
	s.fetchLocked(TriggerSort)
}

// OnPageChange moves to page. The only mutation that keeps the page
// position it is given.
func (s *Session) OnPageChange(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.query.Page = page
	s.fetchLocked(TriggerPage)
}

// OnItemsPerPageChange switches the page size and resets to page 1.
func (s *Session) OnItemsPerPageChange(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 {
		n = roster.DefaultLimit
	}
	if n > roster.MaxLimit {
		n = roster.MaxLimit
	}
	s.query.Limit = n
	s.query.Page = 1
	s.fetchLocked(TriggerItemsPerPage)
}

// Retry re-issues the current query unchanged.
func (s *Session) Retry() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchLocked(TriggerRetry)
}

// Snapshot returns the current committed state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// PageWindow returns the pager tokens for the current position.
func (s *Session) PageWindow() []pagewindow.Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pagewindow.WindowFor(s.query.Page, s.result.TotalPages)
}

func (s *Session) snapshotLocked() Snapshot {
	q := s.query
	q.Filters = append([]roster.Filter(nil), s.query.Filters...)
	return Snapshot{
		Query:   q,
		Result:  s.result,
		Loading: s.loading,
		Err:     s.err,
	}
}

// fetchLocked tags the outgoing request with the next generation and runs
// it off the lock. Callers hold s.mu.
func (s *Session) fetchLocked(trigger string) {
	s.gen++
	gen := s.gen
	q := s.query
	q.Filters = append([]roster.Filter(nil), s.query.Filters...)
	s.loading = true

	metrics.FetchesIssued.WithLabelValues(trigger).Inc()
	s.logger.Debug("Issuing fetch", map[string]interface{}{
		"trigger":    trigger,
		"generation": gen,
		"page":       q.Page,
	})

	go s.run(gen, q, trigger)
}

func (s *Session) run(gen uint64, q roster.Query, trigger string) {
	ctx := context.Background()
	start := time.Now()

	if resp, ok := s.cache.Get(ctx, q); ok {
		s.complete(gen, trigger, resp, nil, start)
		return
	}

	resp, err := s.fetcher.SearchPlayers(ctx, q)
	if err == nil {
		s.cache.Set(ctx, q, resp)
	}
	s.complete(gen, trigger, resp, err, start)
}

// complete commits a response if and only if its generation is still the
// newest one issued. Anything older lost the race and is dropped.
func (s *Session) complete(gen uint64, trigger string, resp *api.SearchResponse, err error, start time.Time) {
	s.mu.Lock()
	if gen != s.gen {
		metrics.StaleResponsesDiscarded.Inc()
		s.logger.Debug("Discarding stale response", map[string]interface{}{
			"generation": gen,
			"current":    s.gen,
		})
		s.mu.Unlock()
		return
	}

	s.loading = false
	if err != nil {
		be := commonerrors.AsBrowseError(err)
		s.err = be
		s.result = ResultSet{Items: []api.Player{}}
		metrics.FetchesFailed.WithLabelValues(trigger, string(be.Code)).Inc()
		s.logger.Warn("Fetch failed, result set cleared", map[string]interface{}{
			"trigger":   trigger,
			"code":      string(be.Code),
			"retryable": be.Retryable,
		})
	} else {
		s.err = nil
		s.result = ResultSet{
			Items:      resp.Players,
			TotalCount: resp.Total,
			TotalPages: resp.TotalPages,
		}
	}
	metrics.FetchDuration.WithLabelValues(trigger).Observe(time.Since(start).Seconds())

	snap := s.snapshotLocked()
	listener := s.listener
	s.mu.Unlock()

	if listener != nil {
		listener(snap)
	}
}
