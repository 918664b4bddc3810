package elevstate

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/heislab/elevator-simulator/internal/elevcmd"
	"github.com/heislab/elevator-simulator/internal/elevconsts"
)

// requestsValidate rejects a head command that targets the current floor or
// the top floor. The top floor is rejected for both buttons; the bottom floor
// has no matching rule.
func (es *ElevatorState) requestsValidate(cmd elevcmd.FloorCommand) error {
	if es.boundsChecking {
		if err := es.requestsInBounds(cmd); err != nil {
			return err
		}
	}

	sameFloor := cmd.Floor == es.CurrentFloor
	downAtTopFloor := cmd.Floor == es.NumberOfFloors && cmd.Direction == elevconsts.Down
	upAtTopFloor := cmd.Floor == es.NumberOfFloors && cmd.Direction == elevconsts.Up

	switch {
	case sameFloor:
		return fmt.Errorf("%w: command %v targets current floor %d", ErrInvalidOperation, cmd, es.CurrentFloor)
	case downAtTopFloor, upAtTopFloor:
		return fmt.Errorf("%w: command %v targets top floor %d", ErrInvalidOperation, cmd, es.NumberOfFloors)
	}
	return nil
}

func (es *ElevatorState) requestsInBounds(cmd elevcmd.FloorCommand) error {
	if cmd.Floor < elevconsts.BOTTOM_FLOOR || cmd.Floor > es.NumberOfFloors {
		return fmt.Errorf("%w: command %v outside floors %d..%d", ErrFloorOutOfRange, cmd, elevconsts.BOTTOM_FLOOR, es.NumberOfFloors)
	}
	if !cmd.Direction.Valid() {
		return fmt.Errorf("%w: command %v has no button direction", ErrInvalidOperation, cmd)
	}
	return nil
}

// requestsIntervening picks the queued commands strictly between the current
// floor and target whose button matches the travel direction, ordered by floor.
func (es *ElevatorState) requestsIntervening(w *elevcmd.Worklist, target int, dirn elevconsts.Dirn) []elevcmd.FloorCommand {
	low, high := min(es.CurrentFloor, target), max(es.CurrentFloor, target)

	stops := w.Filter(func(c elevcmd.FloorCommand) bool {
		return c.Floor > low && c.Floor < high && c.Direction == dirn
	})

	slices.SortStableFunc(stops, func(a, b elevcmd.FloorCommand) int {
		return cmp.Compare(a.Floor, b.Floor)
	})
	if es.directionalOrder && dirn == elevconsts.Down {
		slices.Reverse(stops)
	}
	return stops
}
