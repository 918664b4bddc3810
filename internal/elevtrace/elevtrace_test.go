package elevtrace

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/heislab/elevator-simulator/internal/elevcmd"
	"github.com/heislab/elevator-simulator/internal/elevconsts"
	"github.com/heislab/elevator-simulator/internal/elevevent"
	"github.com/heislab/elevator-simulator/internal/logger"
)

func TestLogObserver(t *testing.T) {
	previous := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(previous)

	var buf bytes.Buffer
	log := logger.NewLogger(&buf)
	observe := NewLogObserver(&log)

	events := []elevevent.ElevatorEvent{
		{RunID: "r1", Value: elevevent.RunStartedEvent{Floor: 1, NumberOfFloors: 10, Pending: 2}},
		{RunID: "r1", Value: elevevent.HeadCommandEvent{Command: elevcmd.NewFloorCommand(9, elevconsts.Down)}},
		{RunID: "r1", Value: elevevent.InterveningStopEvent{Command: elevcmd.NewFloorCommand(6, elevconsts.Up)}},
		{RunID: "r1", Value: elevevent.ArrivalEvent{Floor: 9}},
		{RunID: "r1", Value: elevevent.RunFailedEvent{Command: elevcmd.NewFloorCommand(9, elevconsts.Up), Err: errors.New("invalid operation")}},
		{RunID: "r1", Value: elevevent.RunCompletedEvent{FinalFloor: 9, VisitedFloors: []int{1, 6, 9}}},
	}
	for _, event := range events {
		observe(event)
	}

	output := buf.String()
	for _, expected := range []string{
		"Run started at floor 1",
		"floor = 9, buttonDirection = Down",
		"Intervening stop at floor 6 (Up)",
		"Arrived at floor 9",
		"Run stopped at command (9, Up)",
		"invalid operation",
		"Run completed at floor 9",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("Expected log output to contain %q, got:\n%s", expected, output)
		}
	}
}

func TestFormatFloorStops(t *testing.T) {
	expected := "Floor stops:\n1\n3\n6\n7\n9\n5\n"
	if FormatFloorStops([]int{1, 3, 6, 7, 9, 5}) != expected {
		t.Errorf("FormatFloorStops() = %q, expected %q", FormatFloorStops([]int{1, 3, 6, 7, 9, 5}), expected)
	}
	if FormatFloorStops(nil) != "Floor stops:\n" {
		t.Errorf("FormatFloorStops(nil) = %q", FormatFloorStops(nil))
	}
}

func TestFormatHeader(t *testing.T) {
	header := FormatHeader(10, 1)
	if !strings.Contains(header, "NumberFloors = 10") || !strings.Contains(header, "InitialFloor = 1") {
		t.Errorf("FormatHeader() = %q", header)
	}
}
