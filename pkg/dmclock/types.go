package dmclock

import "math"

// posInf and negInf are the tag sentinels for an inactive dimension.
// A dimension pinned to one of these never constrains heap ordering.
const (
	posInf = math.MaxFloat64
	negInf = -math.MaxFloat64
)

// ClientClass classifies a client for heap membership and surplus sharing.
// Other denotes a client that does not participate in weight-based sharing.
type ClientClass int

const (
	ClassReservation ClientClass = iota
	ClassBurst
	ClassArea
	ClassOther
)

func (c ClientClass) String() string {
	switch c {
	case ClassReservation:
		return "reservation"
	case ClassBurst:
		return "burst"
	case ClassArea:
		return "area"
	case ClassOther:
		return "other"
	default:
		return "unknown"
	}
}

// ClientInfo is the immutable-per-instance QoS triple for a client.
// A new ClientInfo replaces, rather than mutates, the previous one.
type ClientInfo struct {
	Reservation float64
	Weight      float64
	Limit       float64
	Class       ClientClass

	// Precomputed inverses, 0 when the corresponding rate is 0.
	reservationInv float64
	weightInv      float64
	limitInv       float64
}

// NewClientInfo builds a ClientInfo, precomputing the rate inverses.
func NewClientInfo(reservation, weight, limit float64, class ClientClass) ClientInfo {
	if reservation < 0 || weight < 0 || limit < 0 {
		panic("dmclock: ClientInfo requires reservation, weight, limit >= 0")
	}
	return ClientInfo{
		Reservation:    reservation,
		Weight:         weight,
		Limit:          limit,
		Class:          class,
		reservationInv: invOrZero(reservation),
		weightInv:      invOrZero(weight),
		limitInv:       invOrZero(limit),
	}
}

// IsPoolGone reports whether this info signals "pool no longer exists"
// per the client_info_lookup_fn contract in the external interfaces spec.
func (ci ClientInfo) IsPoolGone() bool {
	return ci.Reservation == 0 && ci.Weight == 0 && ci.Limit == 0
}

// withCompensation returns a copy of ci with reservation bumped by comp,
// used only for reservation-class tag math (§3 compensated_client_map).
func (ci ClientInfo) withCompensation(comp float64) ClientInfo {
	return NewClientInfo(ci.Reservation+comp, ci.Weight, ci.Limit, ci.Class)
}

func invOrZero(x float64) float64 {
	if x == 0 {
		return 0
	}
	return 1 / x
}

// dimension identifies which tag component tag arithmetic is computing.
type dimension int

const (
	dimReservation dimension = iota
	dimProportion
	dimLimit
)

func (ci ClientInfo) inv(d dimension) float64 {
	switch d {
	case dimReservation:
		return ci.reservationInv
	case dimProportion:
		return ci.weightInv
	default:
		return ci.limitInv
	}
}

// RequestTag is the dmClock 4-tuple (reservation, proportion, limit,
// arrival) plus a readiness flag. A missing dimension saturates to +/-inf.
type RequestTag struct {
	Reservation float64
	Proportion  float64
	Limit       float64
	Arrival     float64
	Ready       bool
}

// newInactiveTag returns the tag with every dimension at the given time,
// used to seed a brand-new client record.
func newInactiveTag(t float64) RequestTag {
	return RequestTag{Reservation: t, Proportion: t, Limit: t, Arrival: t}
}

// Phase reports which heap family a dispatch came from, per the External
// Interfaces phase-reporting rule: reservation only for resv_heap, every
// other heap reports priority.
type Phase int

const (
	PhaseReservation Phase = iota
	PhasePriority
)

func (p Phase) String() string {
	if p == PhaseReservation {
		return "reservation"
	}
	return "priority"
}
