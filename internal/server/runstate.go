package server

import (
	"sync"
	"time"

	"github.com/matchllm/matchctl/internal/match"
)

// Snapshot is the dashboard's view of the latest completed match run.
type Snapshot struct {
	Generation int64                       `json:"generation"`
	Consulta   string                      `json:"consulta"`
	Response   match.MatchMultipleResponse `json:"response"`
	Summary    match.ExecutiveSummary      `json:"summary"`
	FinishedAt time.Time                   `json:"finished_at"`
}

// RunState holds the latest run behind a monotonically increasing generation.
// Begin hands out a ticket; Complete with a stale ticket is discarded, so a
// slow response can never overwrite the result of a run started after it.
type RunState struct {
	mu      sync.RWMutex
	current int64
	latest  *Snapshot
}

// NewRunState creates an empty run state.
func NewRunState() *RunState {
	return &RunState{}
}

// Begin registers a new run and returns its generation ticket. Every call
// invalidates all tickets handed out before it.
func (rs *RunState) Begin() int64 {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.current++
	return rs.current
}

// Complete installs a finished run. It reports false and changes nothing when
// the ticket is stale, i.e. a newer run has begun since generation was issued.
func (rs *RunState) Complete(generation int64, consulta string, resp match.MatchMultipleResponse) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if generation != rs.current {
		return false
	}
	rs.latest = &Snapshot{
		Generation: generation,
		Consulta:   consulta,
		Response:   resp,
		Summary:    match.Summarize(resp.Results),
		FinishedAt: time.Now(),
	}
	return true
}

// Latest returns the newest completed run, or nil when none has finished.
func (rs *RunState) Latest() *Snapshot {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.latest
}
