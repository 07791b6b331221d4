package metrics

// OrbitalState is a minimal position/velocity state vector for one
// endpoint of a contact, in an Earth-centered inertial frame, km and
// km/s. It carries only what Doppler needs: range-rate between two
// endpoints.
type OrbitalState struct {
	Position [3]float64
	Velocity [3]float64
}
