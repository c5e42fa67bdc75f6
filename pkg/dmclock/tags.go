package dmclock

// computeTag implements the tag arithmetic in spec.md §4.1: given the
// previous tag, client info, current time, and the rho/delta distance
// counters, it produces the next tag on every dimension.
//
//	effective_t = t, but if (t - anticipation_timeout) < prev.arrival
//	              then effective_t = t - anticipation_timeout
//	new.x = extreme(x)  if ci.x_inv == 0
//	        else max(effective_t, prev.x + ci.x_inv * max(d, 1))
//
// The new tag is >= effective_t and >= prev on every active dimension;
// inactive dimensions saturate to +inf and never constrain ordering.
func computeTag(prev RequestTag, ci ClientInfo, t, rho, delta, anticipationTimeout float64) RequestTag {
	// A client with no limit configured has nothing to be promoted past,
	// so it starts (and stays) ready; a limited client starts not-ready
	// and waits for promoteReady to observe its limit tag has elapsed.
	next := RequestTag{Arrival: t, Ready: ci.limitInv == 0}
	next.Reservation = tagDimension(dimReservation, prev.Reservation, prev.Arrival, ci, t, rho, anticipationTimeout)
	next.Proportion = tagDimension(dimProportion, prev.Proportion, prev.Arrival, ci, t, delta, anticipationTimeout)
	next.Limit = tagDimension(dimLimit, prev.Limit, prev.Arrival, ci, t, delta, anticipationTimeout)
	return next
}

// tagDimension computes a single tag dimension's new value.
func tagDimension(d dimension, prevX, prevArrival float64, ci ClientInfo, t, dist, anticipationTimeout float64) float64 {
	inv := ci.inv(d)
	if inv == 0 {
		return posInf
	}
	effectiveT := t
	if (t - anticipationTimeout) < prevArrival {
		effectiveT = t - anticipationTimeout
	}
	step := dist
	if step < 1 {
		step = 1
	}
	candidate := prevX + inv*step
	if effectiveT > candidate {
		return effectiveT
	}
	return candidate
}

// assertActiveDimension panics if every dimension of a freshly computed
// tag has saturated to the inactive extreme -- per §7, callers must
// configure at least one active dimension.
func assertActiveDimension(ci ClientInfo) {
	if ci.reservationInv == 0 && ci.weightInv == 0 && ci.limitInv == 0 {
		panic("dmclock: ClientInfo has no active tag dimension (reservation, weight and limit are all 0)")
	}
}
