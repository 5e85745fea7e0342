package asvsim

import (
	"context"
	"sync"

	"github.com/alitto/pond"
)

// SwarmRunner advances a fixed set of independent ASVs across a shared
// wall-clock schedule, stepping them in parallel on a worker pool each
// tick (spec.md 4.5). Grounded on the teacher's worker-pool usage
// (sixy6e-go-gsf cmd/main.go: pond.New + Submit + StopAndWait).
type SwarmRunner struct {
	asvs        []*ASV
	controllers []Controller
	sink        OutputSink

	startTime, endTime, dt float64
	syncEnabled            bool
}

// NewSwarmRunner constructs a runner. controllers[i] may be nil, meaning
// ASV i always continues with unchanged thrusters/rudder. Fails with
// InvalidParameter on mismatched slice lengths, dt <= 0, or endTime <=
// startTime.
func NewSwarmRunner(asvs []*ASV, controllers []Controller, sink OutputSink, startTime, endTime, dt float64, syncEnabled bool) (*SwarmRunner, error) {
	if len(controllers) != 0 && len(controllers) != len(asvs) {
		return nil, invalidParameter("NewSwarmRunner", "controllers must be empty or match the ASV count")
	}
	if dt <= 0 {
		return nil, invalidParameter("NewSwarmRunner", "dt must be > 0")
	}
	if endTime <= startTime {
		return nil, invalidParameter("NewSwarmRunner", "endTime must be > startTime")
	}
	if sink == nil {
		return nil, invalidParameter("NewSwarmRunner", "sink must not be nil")
	}
	if len(controllers) == 0 {
		controllers = make([]Controller, len(asvs))
	}
	return &SwarmRunner{
		asvs:        asvs,
		controllers: controllers,
		sink:        sink,
		startTime:   startTime,
		endTime:     endTime,
		dt:          dt,
		syncEnabled: syncEnabled,
	}, nil
}

func controllerContextFor(a *ASV) ControllerContext {
	return ControllerContext{
		SimTime:  a.SimTime(),
		Position: a.Position(),
		Attitude: a.Attitude(),
		Velocity: a.VelocityVector(),
		Sea:      a.SeaSurfaceRef(),
	}
}

func applyControlCommand(a *ASV, cmd ControlCommand) error {
	for _, tc := range cmd.Thrusts {
		if err := a.SetThrust(tc.ThrusterIdx, tc.Orientation, tc.Magnitude); err != nil {
			return err
		}
	}
	return nil
}

func recordFor(id string, a *ASV) StateRecord {
	return StateRecord{
		AsvID:                 id,
		SimTime:               a.SimTime(),
		Position:              a.CenterOfGravityPosition(),
		Attitude:              a.Attitude(),
		Velocity:              a.VelocityVector(),
		SignificantWaveHeight: a.SeaSurfaceRef().SignificantHeight(),
		DistanceToWaypoint:    a.DistanceToWaypoint(),
	}
}

// Run advances every ASV from startTime to endTime in dt-sized ticks,
// returning when the schedule completes, ctx is cancelled, or every ASV's
// controller signals stop. Cancellation is cooperative and checked between
// ticks; there is no partial-tick cancellation (spec.md 4.5).
func (r *SwarmRunner) Run(ctx context.Context) error {
	if r.syncEnabled {
		return r.runSynced(ctx)
	}
	return r.runIndependent(ctx)
}

// runSynced steps every ASV's compute_dynamics in parallel each tick,
// behind a barrier: all ASVs finish tick k before any starts tick k+1. An
// ASV whose controller signals stop is latched out of ComputeDynamics and
// sink recording for the remainder of the run, matching runIndependent;
// the whole run only ends early once every ASV has stopped.
func (r *SwarmRunner) runSynced(ctx context.Context) error {
	pool := pond.New(len(r.asvs), 0, pond.MinWorkers(len(r.asvs)))
	defer pool.StopAndWait()

	stopped := make([]bool, len(r.asvs))

	for t := r.startTime; t < r.endTime; t += r.dt {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		allStopped := true
		for i, asv := range r.asvs {
			if stopped[i] {
				continue
			}
			if r.controllers[i] == nil {
				allStopped = false
				continue
			}
			cmd, cont := r.controllers[i].Step(controllerContextFor(asv))
			if !cont {
				stopped[i] = true
				continue
			}
			allStopped = false
			if err := applyControlCommand(asv, cmd); err != nil {
				return err
			}
		}
		if allStopped {
			return nil
		}

		var wg sync.WaitGroup
		var mu sync.Mutex
		var firstErr error
		for i, asv := range r.asvs {
			if stopped[i] {
				continue
			}
			asv := asv
			wg.Add(1)
			pool.Submit(func() {
				defer wg.Done()
				if err := asv.ComputeDynamics(r.dt); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
				}
			})
		}
		wg.Wait()
		if firstErr != nil {
			return firstErr
		}

		for i, asv := range r.asvs {
			if stopped[i] {
				continue
			}
			r.sink.Record(recordFor(asv.Spec().Name, asv))
		}
	}
	return nil
}

// runIndependent strides each ASV through the full schedule on its own
// pool worker, with no inter-ASV ordering guarantee on sink writes. Safe
// here because ASVs share only the immutable SeaSurface (spec.md 5).
func (r *SwarmRunner) runIndependent(ctx context.Context) error {
	pool := pond.New(len(r.asvs), 0, pond.MinWorkers(len(r.asvs)), pond.Context(ctx))
	defer pool.StopAndWait()

	var wg sync.WaitGroup
	for i, asv := range r.asvs {
		i, asv := i, asv
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			r.runOneIndependent(ctx, i, asv)
		})
	}
	wg.Wait()
	return nil
}

func (r *SwarmRunner) runOneIndependent(ctx context.Context, idx int, asv *ASV) {
	for t := r.startTime; t < r.endTime; t += r.dt {
		select {
		case <-ctx.Done():
			return
		default:
		}

		controller := r.controllers[idx]
		if controller != nil {
			cmd, cont := controller.Step(controllerContextFor(asv))
			if !cont {
				return
			}
			if err := applyControlCommand(asv, cmd); err != nil {
				return
			}
		}

		if err := asv.ComputeDynamics(r.dt); err != nil {
			return
		}
		r.sink.Record(recordFor(asv.Spec().Name, asv))
	}
}
