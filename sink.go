package asvsim

// StateRecord is the per-tick, per-ASV record delivered to an OutputSink
// after compute_dynamics (spec.md 6).
type StateRecord struct {
	AsvID                 string
	SimTime               float64
	Position              Coord3D
	Attitude              Coord3D
	Velocity              RigidBodyDOF
	SignificantWaveHeight float64
	// DistanceToWaypoint is -1 when the ASV has no active waypoint.
	DistanceToWaypoint float64
}

// OutputSink is the external collaborator that consumes per-tick state
// records (spec.md 6). Record must not block the calling goroutine for
// long, and must be safe to call concurrently when the SwarmRunner runs
// with sync disabled.
type OutputSink interface {
	Record(rec StateRecord)
}
