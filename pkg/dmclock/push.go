package dmclock

import (
	"sync"
	"time"
)

// CanHandleFn reports whether the downstream handler currently has
// capacity. The scheduler thread only calls HandleFn while this is true.
type CanHandleFn func() bool

// HandleFn receives a dispatched request. Per §5, it must not re-enter
// the PushQueue that invoked it -- it always runs outside the data
// mutex, but a reentrant call would still deadlock against the
// scheduler thread's own next iteration.
type HandleFn[ID comparable, Req any] func(id ID, req Req, phase Phase)

// PushQueue is the push facade of §6: a scheduler thread that sleeps on
// a condition variable (or a timer armed for the earliest future-ready
// time) until add_request or request_completed signals it, then drains
// whatever next_request and can_handle_fn agree is ready.
type PushQueue[ID comparable, Req any] struct {
	*Queue[ID, Req]

	canHandle CanHandleFn
	handle    HandleFn[ID, Req]

	cond     *sync.Cond
	stopping bool
	doneCh   chan struct{}
}

// NewPushQueue constructs a PushQueue and starts its scheduler thread.
// See NewQueue for the shared parameter and panic contract.
func NewPushQueue[ID comparable, Req any](lookupFn ClientInfoLookupFn[ID], opts Options, canHandle CanHandleFn, handle HandleFn[ID, Req]) *PushQueue[ID, Req] {
	q := NewQueue[ID, Req](lookupFn, opts)
	p := &PushQueue[ID, Req]{
		Queue:     q,
		canHandle: canHandle,
		handle:    handle,
		doneCh:    make(chan struct{}),
	}
	p.cond = sync.NewCond(&q.mu)
	go p.run()
	return p
}

// Add enqueues req for client id and wakes the scheduler thread.
func (p *PushQueue[ID, Req]) Add(id ID, req Req, dist Distance) {
	p.AddRequest(id, req, dist, p.clock.Now())
	p.scheduleRequest()
}

// RequestCompleted notifies the scheduler that downstream capacity may
// have freed up, per §6's request_completed -- both it and Add feed the
// same internal schedule_request wakeup.
func (p *PushQueue[ID, Req]) RequestCompleted() {
	p.scheduleRequest()
}

func (p *PushQueue[ID, Req]) scheduleRequest() {
	p.cond.L.Lock()
	p.cond.Broadcast()
	p.cond.L.Unlock()
}

// Close stops the scheduler thread, then the underlying Queue's cleaner.
func (p *PushQueue[ID, Req]) Close() {
	p.cond.L.Lock()
	p.stopping = true
	p.cond.L.Unlock()
	p.cond.Broadcast()
	<-p.doneCh
	p.Queue.Close()
}

// run is the scheduler thread. It holds cond.L (the Queue's own data
// mutex) for the whole loop body except while calling handle, matching
// §5's "invoke downstream callbacks outside the critical section" rule.
func (p *PushQueue[ID, Req]) run() {
	defer close(p.doneCh)
	p.cond.L.Lock()
	defer p.cond.L.Unlock()
	for {
		if p.stopping {
			return
		}
		if p.canHandle != nil && !p.canHandle() {
			p.cond.Wait()
			continue
		}
		res := p.nextLocked(p.clock.Now())
		switch res.Status {
		case StatusReturning:
			p.cond.L.Unlock()
			p.handle(res.ClientID, res.Request, res.Phase)
			p.cond.L.Lock()
		case StatusFuture:
			p.waitUntil(res.FutureTime)
		default:
			p.cond.Wait()
		}
	}
}

// waitUntil blocks with cond.L held until Broadcast is called or roughly
// target (in the engine clock's units) arrives, whichever is first.
func (p *PushQueue[ID, Req]) waitUntil(target float64) {
	now := p.clock.Now()
	d := time.Duration((target - now) * float64(time.Second))
	if d <= 0 {
		return
	}
	timer := time.AfterFunc(d, func() {
		p.cond.L.Lock()
		p.cond.Broadcast()
		p.cond.L.Unlock()
	})
	p.cond.Wait()
	timer.Stop()
}
