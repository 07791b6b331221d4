// Package metrics computes secondary, informational-only physical
// metrics for a contact: Doppler shift, link SNR, and transmit energy.
// None of it feeds back into the routing core; contact.Contact carries
// no field any function here reads beyond RateBPS, TStart, and TEnd.
//
// Built on gonum.org/v1/gonum for vector and statistical arithmetic.
package metrics
