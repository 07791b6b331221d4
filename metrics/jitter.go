package metrics

import "gonum.org/v1/gonum/stat"

// SNRJitterDB returns the standard deviation, in dB, of a series of SNR
// samples taken across a contact's window: a rough stability figure,
// high for a pass with deep multipath fades, near zero for a stable
// geostationary-style link.
func SNRJitterDB(samplesDB []float64) float64 {
	if len(samplesDB) < 2 {
		return 0
	}
	return stat.StdDev(samplesDB, nil)
}
