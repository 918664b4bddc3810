package elevator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/heislab/elevator-simulator/internal/elevconfig"
	"github.com/heislab/elevator-simulator/internal/elevmetadata"
	"github.com/heislab/elevator-simulator/internal/elevstate"
	"github.com/heislab/elevator-simulator/internal/elevtrace"
	"github.com/heislab/elevator-simulator/internal/elevutils"
	"github.com/heislab/elevator-simulator/internal/logger"
)

var Logger = logger.GetLogger()

var ErrExpectationFailed = errors.New("expectation failed")

type Elevator struct {
	Identifier string
	Scenario   elevconfig.Scenario
	State      *elevstate.ElevatorState
}

// NewElevator builds a car for scenario with every scheduler event traced to
// the package logger.
func NewElevator(identifier string, scenario elevconfig.Scenario, opts ...elevstate.Option) *Elevator {
	opts = append([]elevstate.Option{elevstate.WithObserver(elevtrace.NewLogObserver(Logger))}, opts...)

	return &Elevator{
		Identifier: elevmetadata.NewIdentifier(identifier),
		Scenario:   scenario,
		State:      elevstate.NewElevatorState(scenario.Floors, scenario.InitialFloor, opts...),
	}
}

// Run executes the scenario's commands once. The report is filled in even
// when the run fails.
func (e *Elevator) Run() (*elevmetadata.RunReport, error) {
	runErr := e.State.RunCommands(e.Scenario.Worklist())

	report := &elevmetadata.RunReport{
		SoftwareVersion: elevutils.GetGitHash(),
		Identifier:      e.Identifier,
		Scenario:        e.Scenario.Name,
		NumberOfFloors:  e.State.GetNumberOfFloors(),
		InitialFloor:    e.State.GetInitialFloor(),
		FinalFloor:      e.State.GetFinalFloor(),
		VisitedFloors:   e.State.GetVisitedFloors(),
	}
	if runErr != nil {
		report.Error = runErr.Error()
	}
	return report, runErr
}

// Verify runs the scenario and compares the outcome against its expectation.
// Without an expectation the run error is returned as is.
func (e *Elevator) Verify() (*elevmetadata.RunReport, error) {
	report, runErr := e.Run()

	expect := e.Scenario.Expect
	if expect == nil {
		return report, runErr
	}

	switch expect.Error {
	case elevconfig.ExpectInvalidOperation:
		if !errors.Is(runErr, elevstate.ErrInvalidOperation) {
			return report, fmt.Errorf("%w: %s: expected invalid operation, got %v", ErrExpectationFailed, e.Scenario.Name, runErr)
		}
	case elevconfig.ExpectInvalidInput:
		if !errors.Is(runErr, elevstate.ErrInvalidInput) {
			return report, fmt.Errorf("%w: %s: expected invalid input, got %v", ErrExpectationFailed, e.Scenario.Name, runErr)
		}
	case "":
		if runErr != nil {
			return report, fmt.Errorf("%w: %s: unexpected error: %w", ErrExpectationFailed, e.Scenario.Name, runErr)
		}
	default:
		return report, fmt.Errorf("%w: %s: unknown expected error %q", ErrExpectationFailed, e.Scenario.Name, expect.Error)
	}

	if expect.FinalFloor != nil && report.FinalFloor != *expect.FinalFloor {
		return report, fmt.Errorf("%w: %s: final floor %d, expected %d", ErrExpectationFailed, e.Scenario.Name, report.FinalFloor, *expect.FinalFloor)
	}
	if expect.Stops != nil && !slices.Equal(report.VisitedFloors, expect.Stops) {
		return report, fmt.Errorf("%w: %s: stops %v, expected %v", ErrExpectationFailed, e.Scenario.Name, report.VisitedFloors, expect.Stops)
	}
	return report, nil
}
