package metrics

import "math"

// freeSpacePathLossDB returns the free-space path loss, in dB, for a
// link of rangeKM at carrierHz, via the standard Friis form
// FSPL = 20log10(d) + 20log10(f) + 20log10(4*pi/c).
func freeSpacePathLossDB(rangeKM, carrierHz float64) float64 {
	if rangeKM <= 0 || carrierHz <= 0 {
		return math.Inf(1)
	}
	distM := rangeKM * 1000
	cKMPerS := speedOfLightKMPerS
	cMPerS := cKMPerS * 1000

	return 20*math.Log10(distM) + 20*math.Log10(carrierHz) + 20*math.Log10(4*math.Pi/cMPerS)
}

// SNR returns the link signal-to-noise ratio, in dB, for a simple
// link-budget model: transmit power plus antenna gains, minus
// free-space path loss, minus the receiver noise floor.
func SNR(txPowerDBW, txGainDBi, rxGainDBi, carrierHz, rangeKM, noiseFloorDBW float64) float64 {
	fspl := freeSpacePathLossDB(rangeKM, carrierHz)
	linkBudget := txPowerDBW + txGainDBi + rxGainDBi - fspl
	return linkBudget - noiseFloorDBW
}
