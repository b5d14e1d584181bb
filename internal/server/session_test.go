package server

import (
	"testing"

	"github.com/gravitas-games/pipeworks/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080},
		World: config.WorldConfig{
			BoundsX: 12, BoundsY: 12, BoundsZ: 12,
			TurnProbability: 0.1,
			StopProbability: 0.1,
		},
		Generation: config.GenerationConfig{Seed: 7, InitialSegments: 50},
	}
}

func TestNewSessionGrowsInitialBurst(t *testing.T) {
	s, err := NewSession("test", testConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	status := s.Status()
	if got := status.StraightCount + status.ElbowCount; got != 50 {
		t.Fatalf("expected 50 segments after the initial burst, got %d", got)
	}
	if status.OccupiedCells != 50 {
		t.Fatalf("expected 50 occupied cells, got %d", status.OccupiedCells)
	}
	if status.Done {
		t.Fatalf("session must not be done with no segment limit")
	}
}

func TestSessionStopsAtSegmentLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Generation.InitialSegments = 100
	cfg.Generation.MaxSegments = 30
	s, err := NewSession("test", cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	status := s.Status()
	if got := status.StraightCount + status.ElbowCount; got != 30 {
		t.Fatalf("expected the burst to stop at 30 segments, got %d", got)
	}
	if !status.Done {
		t.Fatalf("session must report done at the segment limit")
	}
}

func TestSessionStopsWhenSaturated(t *testing.T) {
	cfg := testConfig()
	cfg.World.BoundsX, cfg.World.BoundsY, cfg.World.BoundsZ = 2, 1, 1
	cfg.Generation.InitialSegments = 10
	s, err := NewSession("test", cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	status := s.Status()
	if status.OccupiedCells != 2 {
		t.Fatalf("expected both cells occupied, got %d", status.OccupiedCells)
	}
	if !status.Done {
		t.Fatalf("session must report done once the grid saturates")
	}
	if status.TotalCells != 2 {
		t.Fatalf("expected 2 total cells, got %d", status.TotalCells)
	}
}

func TestGrowOneAdvancesTheWorld(t *testing.T) {
	cfg := testConfig()
	cfg.Generation.InitialSegments = 0
	cfg.Generation.TickMS = 10
	s, err := NewSession("test", cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if got := s.Status(); got.StraightCount+got.ElbowCount != 0 {
		t.Fatalf("expected an empty world before growth")
	}
	if !s.growOne() {
		t.Fatalf("growOne must report generation still running")
	}
	if got := s.Status(); got.StraightCount+got.ElbowCount != 1 {
		t.Fatalf("expected one segment after growOne, got %+v", got)
	}
}
