package dmclock

import "time"

// cleanLoop drives the periodic idle/erase pass at real-time check_time
// intervals for as long as the Queue is open. Tests that want
// deterministic timing call DoClean directly instead of relying on this
// goroutine.
func (q *Queue[ID, Req]) cleanLoop() {
	defer close(q.cleanDone)
	interval := time.Duration(q.checkTime * float64(time.Second))
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-q.cleanStop:
			return
		case <-ticker.C:
			q.DoClean(q.clock.Now())
		}
	}
}

// DoClean runs one pass of the §4.7 idle/erase mark-point procedure at
// the given time. Exported so tests can drive it deterministically
// instead of waiting on cleanLoop's real-time ticker.
func (q *Queue[ID, Req]) DoClean(now float64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.doCleanLocked(now)
}

func (q *Queue[ID, Req]) doCleanLocked(now float64) {
	q.markPoints = append(q.markPoints, markPoint{t: now, tick: q.tick})

	var erasePoint uint64
	hasErase := false
	for len(q.markPoints) > 0 && q.markPoints[0].t < now-q.eraseAge {
		erasePoint, hasErase = q.markPoints[0].tick, true
		q.markPoints = q.markPoints[1:]
	}

	var idlePoint uint64
	hasIdle := false
	for _, mp := range q.markPoints {
		if mp.t < now-q.idleAge {
			idlePoint, hasIdle = mp.tick, true
		}
	}

	for id, rec := range q.clientMap {
		switch {
		case hasErase && rec.lastTick <= erasePoint:
			q.eraseClient(id, rec)
		case !rec.idle && hasIdle && rec.lastTick <= idlePoint:
			rec.idle = true
			q.emit(EventIdle, id, PhasePriority)
		}
	}
}

// eraseClient drops a client that has been idle since before erase_point:
// removes it from every heap it belongs to, folds its weight back out of
// total_wgt, and forgets its compensation and record entirely (§4.7).
func (q *Queue[ID, Req]) eraseClient(id ID, rec *clientRecord[ID, Req]) {
	for _, k := range classHeaps(rec.info.Class) {
		q.heaps[k].remove(rec)
	}
	delete(q.clientMap, id)
	delete(q.compensated, id)
	if rec.info.Class != ClassOther {
		q.adjustTotalWeight(-rec.info.Weight)
	}
	q.emit(EventErased, id, PhasePriority)
}
