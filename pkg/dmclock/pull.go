package dmclock

// PullQueue is the pull facade of §6: the caller decides when to call
// PullRequest, which never blocks and reports {none, future, returning}.
// It is a thin convenience wrapper -- Queue's own AddRequest/NextRequest
// already are the pull operations; PullQueue just defaults their time
// argument to the engine's clock so callers needn't thread it through.
type PullQueue[ID comparable, Req any] struct {
	*Queue[ID, Req]
}

// NewPullQueue constructs a PullQueue. See NewQueue for the parameter
// and panic contract.
func NewPullQueue[ID comparable, Req any](lookupFn ClientInfoLookupFn[ID], opts Options) *PullQueue[ID, Req] {
	return &PullQueue[ID, Req]{Queue: NewQueue[ID, Req](lookupFn, opts)}
}

// Add enqueues req for client id at the current clock time.
func (p *PullQueue[ID, Req]) Add(id ID, req Req, dist Distance) {
	p.AddRequest(id, req, dist, p.clock.Now())
}

// PullRequest runs the decision procedure at the current clock time.
func (p *PullQueue[ID, Req]) PullRequest() NextRequestResult[ID, Req] {
	return p.NextRequest(p.clock.Now())
}
