package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// ThrusterConfig is one scenario-file thruster entry.
type ThrusterConfig struct {
	X, Y, Z                   float64
	OrientX, OrientY, OrientZ float64
	Magnitude                 float64
}

// WaypointConfig is one scenario-file waypoint entry. Duration is only
// meaningful when Loiter is true; Radius must be > 0.
type WaypointConfig struct {
	X, Y, Z float64
	Radius  float64

	Loiter   bool
	Duration float64
}

// WaypointControllerConfig configures the demonstration proportional
// rudder controller steering a vessel along its Waypoints list.
type WaypointControllerConfig struct {
	ThrusterIdx  int
	Thrust       float64
	Gain         float64
	MaxRudderDeg float64
}

// VesselConfig is one scenario-file ASV entry: hull spec, initial pose and
// thruster loadout.
type VesselConfig struct {
	Name string

	Length, Beam, Depth, Draft float64
	MaxSpeed, Displacement     float64
	RRoll, RPitch, RYaw        float64
	CogX, CogY, CogZ           float64

	StartX, StartY, StartZ                   float64
	StartRollDeg, StartPitchDeg, StartYawDeg float64

	WaveGlider bool

	Thrusters []ThrusterConfig

	Waypoints  []WaypointConfig
	Controller WaypointControllerConfig
}

// ScenarioConfig is the top-level TOML schema consumed by swarmrun,
// grounded on the teacher's cmd/mission scenario file (sections read via
// viper.Get*).
type ScenarioConfig struct {
	Sea struct {
		SignificantHeight float64
		PredominantDegree float64
		Seed              int64
		DirectionBins     int
		FrequencyBins     int
	}
	Schedule struct {
		StartTime   float64
		EndTime     float64
		Dt          float64
		SyncEnabled bool
	}
	Output struct {
		Format    string // "csv", "json" or "influx"
		Path      string
		InfluxURL string
		InfluxOrg string
		InfluxBkt string
	}
	Vessels []VesselConfig
}

// loadScenario reads a TOML scenario file via viper and unmarshals it into
// a ScenarioConfig.
func loadScenario(path string) (*ScenarioConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	var cfg ScenarioConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return &cfg, nil
}
