// Command swarmrun loads a scenario file and runs a swarm of ASVs against
// a shared directional sea surface, streaming per-tick state records to a
// CSV, JSON, or InfluxDB sink.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"

	kitlog "github.com/go-kit/kit/log"
	"github.com/samber/lo"
	asvsim "github.com/resilient-swarms/ASVLite"
)

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

func buildVessel(vc VesselConfig, sea *asvsim.SeaSurface) (*asvsim.ASV, error) {
	spec, err := asvsim.NewAsvSpec(
		vc.Name, vc.Length, vc.Beam, vc.Depth, vc.Draft, vc.MaxSpeed, vc.Displacement,
		vc.RRoll, vc.RPitch, vc.RYaw,
		asvsim.Coord3D{X: vc.CogX, Y: vc.CogY, Z: vc.CogZ},
	)
	if err != nil {
		return nil, fmt.Errorf("building spec for %s: %w", vc.Name, err)
	}

	start := asvsim.Coord3D{X: vc.StartX, Y: vc.StartY, Z: vc.StartZ}
	attitude := asvsim.Coord3D{X: deg2rad(vc.StartRollDeg), Y: deg2rad(vc.StartPitchDeg), Z: deg2rad(vc.StartYawDeg)}

	a, err := asvsim.NewASV(spec, sea, start, attitude)
	if err != nil {
		return nil, fmt.Errorf("building ASV %s: %w", vc.Name, err)
	}
	a.Init()

	thrusters := lo.Map(vc.Thrusters, func(tc ThrusterConfig, _ int) *asvsim.Thruster {
		return asvsim.NewThruster(asvsim.Coord3D{X: tc.X, Y: tc.Y, Z: tc.Z})
	})
	if err := a.SetThrusters(thrusters); err != nil {
		return nil, fmt.Errorf("attaching thrusters to %s: %w", vc.Name, err)
	}
	for i, tc := range vc.Thrusters {
		if tc.Magnitude == 0 {
			continue
		}
		orientation := asvsim.Coord3D{X: tc.OrientX, Y: tc.OrientY, Z: tc.OrientZ}
		if err := a.SetThrust(i, orientation, tc.Magnitude); err != nil {
			return nil, fmt.Errorf("setting initial thrust on %s thruster %d: %w", vc.Name, i, err)
		}
	}
	return a, nil
}

func buildVessels(vessels []VesselConfig, sea *asvsim.SeaSurface) ([]*asvsim.ASV, error) {
	out := make([]*asvsim.ASV, 0, len(vessels))
	for _, vc := range vessels {
		a, err := buildVessel(vc, sea)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// buildWaypointSequence turns a vessel's waypoint config list into a
// *asvsim.WaypointSequence, or nil if none were configured.
func buildWaypointSequence(wcs []WaypointConfig) (*asvsim.WaypointSequence, error) {
	if len(wcs) == 0 {
		return nil, nil
	}
	waypoints := make([]asvsim.Waypoint, 0, len(wcs))
	for i, wc := range wcs {
		pos := asvsim.Coord3D{X: wc.X, Y: wc.Y, Z: wc.Z}
		if wc.Loiter {
			wp, err := asvsim.NewLoiter(pos, wc.Radius, wc.Duration)
			if err != nil {
				return nil, fmt.Errorf("building loiter waypoint %d: %w", i, err)
			}
			waypoints = append(waypoints, wp)
			continue
		}
		wp, err := asvsim.NewPointWaypoint(pos, wc.Radius)
		if err != nil {
			return nil, fmt.Errorf("building point waypoint %d: %w", i, err)
		}
		waypoints = append(waypoints, wp)
	}
	return asvsim.NewWaypointSequence(waypoints), nil
}

// buildControllers attaches a WaypointSequence (if configured) to each
// non-wave-glider vessel and returns a parallel []asvsim.Controller slice
// for NewSwarmRunner; vessels with no waypoints get a nil controller, so
// they continue under unchanged thrusters (spec.md 6).
func buildControllers(vessels []VesselConfig, asvs []*asvsim.ASV) ([]asvsim.Controller, error) {
	controllers := make([]asvsim.Controller, len(asvs))
	for i, vc := range vessels {
		seq, err := buildWaypointSequence(vc.Waypoints)
		if err != nil {
			return nil, fmt.Errorf("building waypoints for %s: %w", vc.Name, err)
		}
		if seq == nil {
			continue
		}
		asvs[i].SetWaypoints(seq)
		controllers[i] = NewWaypointRudderController(seq, vc.Controller.ThrusterIdx, vc.Controller.Thrust, vc.Controller.Gain, deg2rad(vc.Controller.MaxRudderDeg))
	}
	return controllers, nil
}

func recordWaveGlider(a *asvsim.ASV) asvsim.StateRecord {
	return asvsim.StateRecord{
		AsvID:                 a.Spec().Name,
		SimTime:               a.SimTime(),
		Position:              a.CenterOfGravityPosition(),
		Attitude:              a.Attitude(),
		Velocity:              a.VelocityVector(),
		SignificantWaveHeight: a.SeaSurfaceRef().SignificantHeight(),
		DistanceToWaypoint:    a.DistanceToWaypoint(),
	}
}

// runWaveGliders steps vessels flagged WaveGlider in the scenario file
// through WaveGliderComputeDynamics rather than ComputeDynamics: the
// Controller contract has no way to select that path per-tick, so
// wave-glider vessels run a dedicated loop instead of going through
// SwarmRunner (spec.md 4.4's wave-glider thrust model).
func runWaveGliders(ctx context.Context, gliders []*asvsim.ASV, startTime, endTime, dt float64, sink asvsim.OutputSink, logger kitlog.Logger) error {
	for t := startTime; t < endTime; t += dt {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		for _, a := range gliders {
			if err := a.WaveGliderComputeDynamics(0, dt); err != nil {
				return fmt.Errorf("wave-glider step for %s: %w", a.Spec().Name, err)
			}
			sink.Record(recordWaveGlider(a))
		}
	}
	logger.Log("msg", "wave-glider run complete", "count", len(gliders))
	return nil
}

func buildSink(cfg *ScenarioConfig) (asvsim.OutputSink, func() error, error) {
	switch cfg.Output.Format {
	case "csv":
		s, err := NewCSVSink(cfg.Output.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "json":
		s, err := NewJSONSink(cfg.Output.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "influx":
		s := NewInfluxSink(cfg.Output.InfluxURL, os.Getenv("INFLUX_TOKEN"), cfg.Output.InfluxOrg, cfg.Output.InfluxBkt)
		return s, func() error { return s.Close(context.Background()) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown output format %q", cfg.Output.Format)
	}
}

func main() {
	scenarioPath := flag.String("scenario", "", "path to a TOML scenario file")
	noiseSigma := flag.Float64("position-noise-sigma", 0, "stddev (metres) of Gaussian position noise applied to every recorded state; 0 disables")
	noiseSeed := flag.Int64("position-noise-seed", 1, "seed for the position noise generator")
	flag.Parse()

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "component", "swarmrun")

	if *scenarioPath == "" {
		logger.Log("err", "missing -scenario flag")
		os.Exit(2)
	}

	cfg, err := loadScenario(*scenarioPath)
	if err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}

	sea, err := asvsim.NewSeaSurface(cfg.Sea.SignificantHeight, deg2rad(cfg.Sea.PredominantDegree), cfg.Sea.Seed, cfg.Sea.DirectionBins, cfg.Sea.FrequencyBins)
	if err != nil {
		logger.Log("err", fmt.Errorf("building sea surface: %w", err))
		os.Exit(1)
	}

	sink, closeSink, err := buildSink(cfg)
	if err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
	if *noiseSigma > 0 {
		sink = NewNoisySink(sink, *noiseSigma, *noiseSeed)
	}

	steppedVessels := lo.Filter(cfg.Vessels, func(vc VesselConfig, _ int) bool { return !vc.WaveGlider })
	glideVessels := lo.Filter(cfg.Vessels, func(vc VesselConfig, _ int) bool { return vc.WaveGlider })

	asvs, err := buildVessels(steppedVessels, sea)
	if err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
	gliderASVs, err := buildVessels(glideVessels, sea)
	if err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if len(gliderASVs) > 0 {
		if err := runWaveGliders(ctx, gliderASVs, cfg.Schedule.StartTime, cfg.Schedule.EndTime, cfg.Schedule.Dt, sink, logger); err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
	}

	if len(asvs) > 0 {
		controllers, err := buildControllers(steppedVessels, asvs)
		if err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
		runner, err := asvsim.NewSwarmRunner(asvs, controllers, sink, cfg.Schedule.StartTime, cfg.Schedule.EndTime, cfg.Schedule.Dt, cfg.Schedule.SyncEnabled)
		if err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
		if err := runner.Run(ctx); err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
	}

	if err := closeSink(); err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
	logger.Log("msg", "swarm run complete", "vessels", len(asvs)+len(gliderASVs))
}
