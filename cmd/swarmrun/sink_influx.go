package main

import (
	"context"
	"time"

	influxdb "github.com/influxdata/influxdb-client-go/v2"
	asvsim "github.com/resilient-swarms/ASVLite"
)

// InfluxSink writes each state record as a point to an InfluxDB bucket
// using the non-blocking write API, grounded on the gnssgo plotting tool's
// influxdb-client-go usage (app/plot/plot.go OutENU).
type InfluxSink struct {
	client   influxdb.Client
	writeAPI api
	epoch    time.Time
}

// api is the subset of influxdb's WriteAPI this sink needs.
type api interface {
	WritePoint(point *influxdb.Point)
	Flush()
}

// NewInfluxSink opens a client against url/token and returns a sink that
// writes to org/bucket. epoch anchors simulation time (seconds) onto wall
// clock timestamps for InfluxDB's time index.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	client := influxdb.NewClient(url, token)
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPI(org, bucket),
		epoch:    time.Now(),
	}
}

// Record implements asvsim.OutputSink.
func (s *InfluxSink) Record(rec asvsim.StateRecord) {
	ts := s.epoch.Add(time.Duration(rec.SimTime * float64(time.Second)))
	p := influxdb.NewPointWithMeasurement("asv_state").
		AddTag("asv_id", rec.AsvID).
		AddField("x", rec.Position.X).
		AddField("y", rec.Position.Y).
		AddField("z", rec.Position.Z).
		AddField("roll", rec.Attitude.X).
		AddField("pitch", rec.Attitude.Y).
		AddField("yaw", rec.Attitude.Z).
		AddField("significant_wave_height", rec.SignificantWaveHeight).
		SetTime(ts)
	s.writeAPI.WritePoint(p)
}

// Close flushes pending writes and closes the client.
func (s *InfluxSink) Close(ctx context.Context) error {
	s.writeAPI.Flush()
	s.client.Close()
	return nil
}
