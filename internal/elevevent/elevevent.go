package elevevent

import (
	"github.com/heislab/elevator-simulator/internal/elevcmd"
)

type ElevatorEvent struct {
	RunID string
	//Golang doesnt support union types,
	//so we have to pass any of the below
	//structs
	Value any
}

// Observer receives every event of a run, in order, on the caller's goroutine.
type Observer func(ElevatorEvent)

type RunStartedEvent struct {
	Floor          int
	NumberOfFloors int
	Pending        int
}

type HeadCommandEvent struct {
	Command elevcmd.FloorCommand
}

type InterveningStopEvent struct {
	Command elevcmd.FloorCommand
}

type ArrivalEvent struct {
	Floor int
}

type RunCompletedEvent struct {
	FinalFloor    int
	VisitedFloors []int
}

type RunFailedEvent struct {
	Command elevcmd.FloorCommand
	Err     error
}

func (e *ElevatorEvent) EventType() string {
	switch e.Value.(type) {
	case RunStartedEvent:
		return "RunStartedEvent"
	case HeadCommandEvent:
		return "HeadCommandEvent"
	case InterveningStopEvent:
		return "InterveningStopEvent"
	case ArrivalEvent:
		return "ArrivalEvent"
	case RunCompletedEvent:
		return "RunCompletedEvent"
	case RunFailedEvent:
		return "RunFailedEvent"
	default:
		return "UnknownEvent"
	}
}

// Recorder keeps every event it observes.
type Recorder struct {
	Events []ElevatorEvent
}

func (r *Recorder) Observe(event ElevatorEvent) {
	r.Events = append(r.Events, event)
}

func (r *Recorder) EventTypes() []string {
	types := make([]string, 0, len(r.Events))
	for i := range r.Events {
		types = append(types, r.Events[i].EventType())
	}
	return types
}

// Fanout combines observers; nil entries are skipped.
func Fanout(observers ...Observer) Observer {
	return func(event ElevatorEvent) {
		for _, observe := range observers {
			if observe != nil {
				observe(event)
			}
		}
	}
}
