package elevtrace

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/heislab/elevator-simulator/internal/elevevent"
)

// NewLogObserver renders scheduler events through log.
func NewLogObserver(log *zerolog.Logger) elevevent.Observer {
	return func(event elevevent.ElevatorEvent) {
		switch evnt := event.Value.(type) {
		case elevevent.RunStartedEvent:
			log.Debug().Str("run", event.RunID).Msgf("Run started at floor %d with %d commands pending", evnt.Floor, evnt.Pending)
		case elevevent.HeadCommandEvent:
			log.Info().Str("run", event.RunID).Msgf("Floor command: floor = %d, buttonDirection = %s", evnt.Command.Floor, evnt.Command.Direction)
		case elevevent.InterveningStopEvent:
			log.Info().Str("run", event.RunID).Msgf("Intervening stop at floor %d (%s)", evnt.Command.Floor, evnt.Command.Direction)
		case elevevent.ArrivalEvent:
			log.Debug().Str("run", event.RunID).Msgf("Arrived at floor %d", evnt.Floor)
		case elevevent.RunCompletedEvent:
			log.Info().Str("run", event.RunID).Ints("visited", evnt.VisitedFloors).Msgf("Run completed at floor %d", evnt.FinalFloor)
		case elevevent.RunFailedEvent:
			log.Error().Str("run", event.RunID).Err(evnt.Err).Msgf("Run stopped at command %v", evnt.Command)
		default:
			log.Warn().Msgf("Unknown event %s", event.EventType())
		}
	}
}

// FormatFloorStops lists one stop per line under a heading.
func FormatFloorStops(floors []int) string {
	var sb strings.Builder
	sb.WriteString("Floor stops:\n")
	for _, floor := range floors {
		fmt.Fprintf(&sb, "%d\n", floor)
	}
	return sb.String()
}

func FormatHeader(numberOfFloors int, initialFloor int) string {
	return fmt.Sprintf("Elevator simulator\n\nNumberFloors = %d\nInitialFloor = %d\n", numberOfFloors, initialFloor)
}
