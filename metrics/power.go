package metrics

import "github.com/contactrouting/cgr/contact"

// TransmitEnergyJoules returns the energy a full-window transmission
// at c's rate would consume, given a fixed transmitter power draw in
// watts: energy = power * duration, where duration is the contact's
// window length.
func TransmitEnergyJoules(c contact.Contact, txPowerWatts float64) float64 {
	duration := c.TEnd - c.TStart
	if duration <= 0 {
		return 0
	}
	return txPowerWatts * duration
}

// EnergyPerBitJoules returns the energy cost per bit transmitted at
// c's rate, given the same fixed transmitter power draw: a cheap
// figure of merit for comparing contacts of differing rate under a
// shared power budget.
func EnergyPerBitJoules(c contact.Contact, txPowerWatts float64) float64 {
	if c.RateBPS <= 0 {
		return 0
	}
	return txPowerWatts / c.RateBPS
}
