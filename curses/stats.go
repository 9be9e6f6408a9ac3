package curses

import (
	"sync/atomic"
	"time"
)

// Stats counts screen activity for a session.
type Stats struct {
	refreshes       atomic.Uint64
	refreshFailures atomic.Uint64
	refreshTotalNs  atomic.Int64
	refreshMaxNs    atomic.Int64
	cellsWritten    atomic.Uint64
	writeFailures   atomic.Uint64
	keysRead        atomic.Uint64
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Refreshes       uint64
	RefreshFailures uint64
	AvgRefresh      time.Duration
	MaxRefresh      time.Duration
	CellsWritten    uint64
	WriteFailures   uint64
	KeysRead        uint64
}

func (st *Stats) recordRefresh(d time.Duration, failed bool) {
	ns := d.Nanoseconds()
	st.refreshes.Add(1)
	st.refreshTotalNs.Add(ns)
	if failed {
		st.refreshFailures.Add(1)
	}
	for {
		old := st.refreshMaxNs.Load()
		if ns <= old || st.refreshMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// Snapshot returns the current counters.
func (st *Stats) Snapshot() StatsSnapshot {
	snap := StatsSnapshot{
		Refreshes:       st.refreshes.Load(),
		RefreshFailures: st.refreshFailures.Load(),
		MaxRefresh:      time.Duration(st.refreshMaxNs.Load()),
		CellsWritten:    st.cellsWritten.Load(),
		WriteFailures:   st.writeFailures.Load(),
		KeysRead:        st.keysRead.Load(),
	}
	if snap.Refreshes > 0 {
		snap.AvgRefresh = time.Duration(st.refreshTotalNs.Load() / int64(snap.Refreshes))
	}
	return snap
}
