package elevstate

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"

	"github.com/heislab/elevator-simulator/internal/elevcmd"
	"github.com/heislab/elevator-simulator/internal/elevconsts"
	"github.com/heislab/elevator-simulator/internal/elevevent"
	"github.com/heislab/elevator-simulator/internal/logger"
)

var Log = logger.GetLogger()

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrFloorOutOfRange  = fmt.Errorf("%w: floor out of range", ErrInvalidOperation)
)

// ElevatorState is one car over floors 1..NumberOfFloors. It is not safe for
// concurrent use; confine a state and the worklist it runs to one goroutine.
type ElevatorState struct {
	NumberOfFloors int
	InitialFloor   int
	CurrentFloor   int
	FinalFloor     int
	VisitedFloors  []int

	//Internal Variables
	observers        []elevevent.Observer
	boundsChecking   bool
	directionalOrder bool
	runID            string
}

// Snapshot is the plain data of an ElevatorState.
type Snapshot struct {
	NumberOfFloors int
	InitialFloor   int
	CurrentFloor   int
	FinalFloor     int
	VisitedFloors  []int
}

type Option func(*ElevatorState)

func WithObserver(observer elevevent.Observer) Option {
	return func(es *ElevatorState) {
		if observer != nil {
			es.observers = append(es.observers, observer)
		}
	}
}

// WithBoundsChecking rejects floors outside 1..NumberOfFloors and commands
// without a button direction. Off by default.
func WithBoundsChecking() Option {
	return func(es *ElevatorState) {
		es.boundsChecking = true
	}
}

// WithDirectionalOrder services intervening stops top-down when travelling
// down instead of always bottom-up.
func WithDirectionalOrder() Option {
	return func(es *ElevatorState) {
		es.directionalOrder = true
	}
}

func NewElevatorState(numberOfFloors int, initialFloor int, opts ...Option) *ElevatorState {
	es := &ElevatorState{
		NumberOfFloors: numberOfFloors,
		InitialFloor:   initialFloor,
		CurrentFloor:   initialFloor,
		FinalFloor:     initialFloor,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *ElevatorState) GetNumberOfFloors() int { return es.NumberOfFloors }
func (es *ElevatorState) GetInitialFloor() int   { return es.InitialFloor }
func (es *ElevatorState) GetCurrentFloor() int   { return es.CurrentFloor }
func (es *ElevatorState) GetFinalFloor() int     { return es.FinalFloor }

// GetVisitedFloors returns a copy of every stop so far, initial floor first.
func (es *ElevatorState) GetVisitedFloors() []int {
	visited := make([]int, len(es.VisitedFloors))
	copy(visited, es.VisitedFloors)
	return visited
}

// RunID identifies the latest run in emitted events. Empty before the first run.
func (es *ElevatorState) RunID() string {
	return es.runID
}

// Validate checks the construction parameters. Only enforced by RunCommands
// when bounds checking is on.
func (es *ElevatorState) Validate() error {
	if es.NumberOfFloors < elevconsts.BOTTOM_FLOOR {
		return fmt.Errorf("%w: number of floors %d", ErrFloorOutOfRange, es.NumberOfFloors)
	}
	if es.CurrentFloor < elevconsts.BOTTOM_FLOOR || es.CurrentFloor > es.NumberOfFloors {
		return fmt.Errorf("%w: current floor %d outside floors %d..%d", ErrFloorOutOfRange, es.CurrentFloor, elevconsts.BOTTOM_FLOOR, es.NumberOfFloors)
	}
	return nil
}

func (es *ElevatorState) emit(value any) {
	event := elevevent.ElevatorEvent{RunID: es.runID, Value: value}
	for _, observe := range es.observers {
		observe(event)
	}
}

// RunCommands consumes w from the front. Each head command sets the next
// target and direction; queued commands between here and the target with a
// matching button are stopped at on the way and removed. A run that fails
// keeps every stop recorded before the failing command.
func (es *ElevatorState) RunCommands(w *elevcmd.Worklist) error {
	if w == nil {
		return fmt.Errorf("%w: floor command worklist is nil", ErrInvalidInput)
	}
	if es.boundsChecking {
		if err := es.Validate(); err != nil {
			return err
		}
	}

	es.runID = uuid.NewString()
	es.VisitedFloors = append(es.VisitedFloors, es.CurrentFloor)
	es.emit(elevevent.RunStartedEvent{Floor: es.CurrentFloor, NumberOfFloors: es.NumberOfFloors, Pending: w.Len()})

	for {
		head, ok := w.PopFront()
		if !ok {
			break
		}
		es.emit(elevevent.HeadCommandEvent{Command: head})

		if err := es.requestsValidate(head); err != nil {
			es.emit(elevevent.RunFailedEvent{Command: head, Err: err})
			return err
		}

		dirn := elevconsts.DirnTowards(es.CurrentFloor, head.Floor)
		for _, stop := range es.requestsIntervening(w, head.Floor, dirn) {
			es.VisitedFloors = append(es.VisitedFloors, stop.Floor)
			w.Remove(stop)
			es.emit(elevevent.InterveningStopEvent{Command: stop})
		}

		es.CurrentFloor = head.Floor
		es.FinalFloor = head.Floor
		es.VisitedFloors = append(es.VisitedFloors, head.Floor)
		es.emit(elevevent.ArrivalEvent{Floor: head.Floor})
	}

	es.emit(elevevent.RunCompletedEvent{FinalFloor: es.FinalFloor, VisitedFloors: es.GetVisitedFloors()})
	return nil
}

func (es *ElevatorState) Snapshot() (Snapshot, error) {
	var snapshot Snapshot
	if err := deepcopy.Copy(&snapshot, *es); err != nil {
		return Snapshot{}, err
	}
	return snapshot, nil
}

// Simulate reports the stops and final floor a run of w would produce without
// touching es or w. Observers are not called.
func (es *ElevatorState) Simulate(w *elevcmd.Worklist) ([]int, int, error) {
	if w == nil {
		return nil, es.FinalFloor, fmt.Errorf("%w: floor command worklist is nil", ErrInvalidInput)
	}

	snapshot, err := es.Snapshot()
	if err != nil {
		return nil, es.FinalFloor, err
	}
	sim := &ElevatorState{
		NumberOfFloors:   snapshot.NumberOfFloors,
		InitialFloor:     snapshot.InitialFloor,
		CurrentFloor:     snapshot.CurrentFloor,
		FinalFloor:       snapshot.FinalFloor,
		VisitedFloors:    snapshot.VisitedFloors,
		boundsChecking:   es.boundsChecking,
		directionalOrder: es.directionalOrder,
	}

	start := len(sim.VisitedFloors)
	err = sim.RunCommands(w.Clone())
	return sim.VisitedFloors[start:], sim.FinalFloor, err
}

func (es *ElevatorState) Print() {
	Log.Info().Msgf("NumberFloors = %d", es.NumberOfFloors)
	Log.Info().Msgf("InitialFloor = %d", es.InitialFloor)
	Log.Info().Msgf("Floor stops:")
	for _, floor := range es.VisitedFloors {
		Log.Info().Msgf("  %d", floor)
	}
	Log.Info().Msgf("FinalFloor = %d", es.FinalFloor)
}
