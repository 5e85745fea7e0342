package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	asvsim "github.com/resilient-swarms/ASVLite"
)

// CSVSink streams state records to a CSV file, one row per Record call.
// Grounded on the teacher's export.go use of encoding/csv for its
// StreamStates path.
type CSVSink struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVSink opens path for writing and emits a header row.
func NewCSVSink(path string) (*CSVSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating CSV sink: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write([]string{"asv_id", "sim_time", "x", "y", "z", "roll", "pitch", "yaw", "surge", "sway", "heave", "hs", "dist_to_waypoint"}); err != nil {
		f.Close()
		return nil, err
	}
	return &CSVSink{file: f, writer: w}, nil
}

// Record implements asvsim.OutputSink.
func (s *CSVSink) Record(rec asvsim.StateRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := []string{
		rec.AsvID,
		fmt.Sprintf("%.6f", rec.SimTime),
		fmt.Sprintf("%.6f", rec.Position.X),
		fmt.Sprintf("%.6f", rec.Position.Y),
		fmt.Sprintf("%.6f", rec.Position.Z),
		fmt.Sprintf("%.6f", rec.Attitude.X),
		fmt.Sprintf("%.6f", rec.Attitude.Y),
		fmt.Sprintf("%.6f", rec.Attitude.Z),
		fmt.Sprintf("%.6f", rec.Velocity.Surge()),
		fmt.Sprintf("%.6f", rec.Velocity.Sway()),
		fmt.Sprintf("%.6f", rec.Velocity.Heave()),
		fmt.Sprintf("%.6f", rec.SignificantWaveHeight),
		fmt.Sprintf("%.6f", rec.DistanceToWaypoint),
	}
	_ = s.writer.Write(row)
}

// Close flushes and closes the underlying file.
func (s *CSVSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writer.Flush()
	return s.file.Close()
}

// JSONSink streams newline-delimited JSON state records to a file.
type JSONSink struct {
	mu      sync.Mutex
	file    *os.File
	encoder *json.Encoder
}

// NewJSONSink opens path for writing.
func NewJSONSink(path string) (*JSONSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating JSON sink: %w", err)
	}
	return &JSONSink{file: f, encoder: json.NewEncoder(f)}, nil
}

// Record implements asvsim.OutputSink.
func (s *JSONSink) Record(rec asvsim.StateRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.encoder.Encode(rec)
}

// Close closes the underlying file.
func (s *JSONSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
