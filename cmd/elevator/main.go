package main

import (
	"fmt"
	"io"
	"os"

	"github.com/heislab/elevator-simulator/internal/elevator"
	"github.com/heislab/elevator-simulator/internal/elevconfig"
	"github.com/heislab/elevator-simulator/internal/elevstate"
	"github.com/heislab/elevator-simulator/internal/elevtrace"
	"github.com/heislab/elevator-simulator/internal/elevutils"
	"github.com/heislab/elevator-simulator/internal/logger"
)

var Logger = logger.GetLogger()

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	cmdArgs, err := elevutils.ParseCmdArgs("elevator", args, stdout)
	if err != nil {
		return 2
	}
	if cmdArgs.Help || cmdArgs.Version {
		return 0
	}

	defaults, err := elevconfig.LoadEnv(cmdArgs.EnvFile)
	if err != nil {
		Logger.Error().Err(err).Msg("Loading env file failed")
		return 1
	}
	level := cmdArgs.LogLevel
	if level == "" {
		level = defaults.LogLevel
	}
	logger.GetLoggerConfigured(logger.ParseLevel(level))

	scenario, err := buildScenario(cmdArgs, defaults)
	if err != nil {
		Logger.Error().Err(err).Msg("Building scenario failed")
		return 1
	}

	var opts []elevstate.Option
	if cmdArgs.Bounds {
		opts = append(opts, elevstate.WithBoundsChecking())
	}
	if cmdArgs.Directional {
		opts = append(opts, elevstate.WithDirectionalOrder())
	}

	identifier := cmdArgs.Identifier
	if identifier == "" {
		identifier = defaults.Identifier
	}

	// Starting Programme
	Logger.Info().Msgf("Starting Elevator Simulator %s", elevutils.GetGitHash())
	fmt.Fprintln(stdout, elevtrace.FormatHeader(scenario.Floors, scenario.InitialFloor))

	elev := elevator.NewElevator(identifier, scenario, opts...)
	report, runErr := elev.Run()

	fmt.Fprint(stdout, elevtrace.FormatFloorStops(report.VisitedFloors))
	if cmdArgs.JSON {
		fmt.Fprintln(stdout, report.String())
	}
	if runErr != nil {
		Logger.Error().Err(runErr).Msgf("Elevator %s stopped at floor %d", report.Identifier, report.FinalFloor)
		return 1
	}
	Logger.Info().Msgf("Elevator %s resting at floor %d", report.Identifier, report.FinalFloor)
	return 0
}

// buildScenario picks the scenario file, then inline commands, then the demo
// list. Flags override file values, which override env defaults.
func buildScenario(cmdArgs elevutils.CmdArgs, defaults elevconfig.Defaults) (elevconfig.Scenario, error) {
	scenario := elevconfig.Scenario{Name: "demo", Commands: elevconfig.DemoCommands()}

	if cmdArgs.Scenario != "" {
		loaded, err := elevconfig.LoadScenario(cmdArgs.Scenario)
		if err != nil {
			return scenario, err
		}
		scenario = loaded
	}
	if cmdArgs.Commands != "" {
		commands, err := elevconfig.ParseCommands(cmdArgs.Commands)
		if err != nil {
			return scenario, err
		}
		scenario.Name = "inline"
		scenario.Commands = commands
		scenario.AbsentWorklist = false
	}

	scenario.ApplyDefaults(defaults)
	if cmdArgs.Floors != 0 {
		scenario.Floors = cmdArgs.Floors
	}
	if cmdArgs.Initial != 0 {
		scenario.InitialFloor = cmdArgs.Initial
	}
	return scenario, nil
}
