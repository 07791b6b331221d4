package contact

import "math"

// inf is the sentinel "infeasible" ETA returned by evalETA. Callers must
// test the accompanying bool rather than comparing against this value
// directly, since legitimate ETAs are always finite.
const inf = math.MaxFloat64

// rateOf returns c.RateBPS guarded against non-positive values:
// rate_bps <= 0 is treated as 1 bit/second to avoid division hazards on
// pathological input.
func rateOf(c *Contact) float64 {
	if c.RateBPS < 1 {
		return 1
	}
	return c.RateBPS
}

// viable is a cheap pre-check performed before the full ETA kernel in
// the search's hot loop (expansion). It short-circuits on the first
// failing condition and never allocates. A true result does not
// guarantee feasibility to the last decimal — evalETA remains the
// source of truth — but a false result always means evalETA will also
// report infeasible, so callers may skip the full kernel call entirely.
func viable(c *Contact, tIn, bundleBytes, absExpiry float64) bool {
	if tIn > c.TEnd+EpsilonTime {
		return false
	}

	startTx := tIn
	if c.TStart > startTx {
		startTx = c.TStart
	}

	window := c.TEnd - startTx - c.SetupS
	if window <= EpsilonTime {
		return false
	}

	rate := rateOf(c)
	windowCapacity := window * rate
	capacity := c.ResidualBytes
	if windowCapacity < capacity {
		capacity = windowCapacity
	}
	if capacity+EpsilonBytes < bundleBytes {
		return false
	}

	finish := startTx + c.SetupS + bundleBytes/rate
	if finish > c.TEnd+EpsilonTime {
		return false
	}

	if absExpiry > 0 {
		eta := finish + c.OWLT
		if eta > absExpiry+EpsilonTime {
			return false
		}
	}

	return true
}

// evalETA computes the earliest arrival time at c.To for a bundle of
// bundleBytes bytes that arrives at c.From no earlier than tIn.
//
// absExpiry is the absolute deadline (T0+Expiry), or 0 for "no expiry".
//
// Returns (eta, true) if c is feasible under tIn/bundleBytes/absExpiry,
// or (inf, false) otherwise. The five feasibility clauses are evaluated
// in full (not short-circuited) so that the arithmetic stays a single,
// auditable formula; callers on a hot path should call viable first to
// skip this entirely when it cannot succeed.
func evalETA(c *Contact, tIn, bundleBytes, absExpiry float64) (float64, bool) {
	startTx := tIn
	if c.TStart > startTx {
		startTx = c.TStart
	}

	window := c.TEnd - startTx - c.SetupS
	rate := rateOf(c)

	windowCapacity := 0.0
	if window > 0 {
		windowCapacity = window * rate
	}

	capacity := c.ResidualBytes
	if windowCapacity < capacity {
		capacity = windowCapacity
	}

	txTime := bundleBytes / rate
	finish := startTx + c.SetupS + txTime
	eta := finish + c.OWLT

	feasible := tIn <= c.TEnd+EpsilonTime &&
		window > EpsilonTime &&
		capacity+EpsilonBytes >= bundleBytes &&
		finish <= c.TEnd+EpsilonTime

	if feasible && absExpiry > 0 {
		feasible = eta <= absExpiry+EpsilonTime
	}

	if !feasible {
		return inf, false
	}
	return eta, true
}
