// Package simulate runs a wall-clock-paced (or accelerated) live
// routing loop over a synth.Generator catalog: each tick it re-derives
// the currently active contact window set, applies EWMA link-quality
// penalization to contacts that have recently failed delivery, rebuilds
// a contact.NeighborIndex, and issues a routing query against it.
//
// File layout:
//
//	penalty.go   EWMA link-quality tracker
//	metrics.go   Prometheus instrumentation
//	loop.go      Loop, the driving goroutine
package simulate
