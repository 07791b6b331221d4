package metrics

import "gonum.org/v1/gonum/mat"

// speedOfLightKMPerS is used by both Doppler and the SNR free-space
// path loss model.
const speedOfLightKMPerS = 299792.458

// Doppler returns the Doppler-shifted frequency offset, in Hz, a
// receiver at b observes from a transmitter at a emitting at
// carrierHz, positive for closing range and negative for opening
// range.
//
// It projects the relative velocity onto the relative position's unit
// vector to get range-rate, via gonum/mat vector arithmetic rather
// than hand-rolled dot products.
func Doppler(carrierHz float64, a, b OrbitalState) float64 {
	relPos := mat.NewVecDense(3, []float64{
		b.Position[0] - a.Position[0],
		b.Position[1] - a.Position[1],
		b.Position[2] - a.Position[2],
	})
	relVel := mat.NewVecDense(3, []float64{
		b.Velocity[0] - a.Velocity[0],
		b.Velocity[1] - a.Velocity[1],
		b.Velocity[2] - a.Velocity[2],
	})

	dist := mat.Norm(relPos, 2)
	if dist == 0 {
		return 0
	}

	rangeRate := mat.Dot(relPos, relVel) / dist // km/s, positive = separating

	return -carrierHz * (rangeRate / speedOfLightKMPerS)
}
