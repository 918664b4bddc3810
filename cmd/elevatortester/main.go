package main

import (
	"fmt"
	"io"
	"os"

	"github.com/heislab/elevator-simulator/internal/elevator"
	"github.com/heislab/elevator-simulator/internal/elevconfig"
	"github.com/heislab/elevator-simulator/internal/elevstate"
	"github.com/heislab/elevator-simulator/internal/elevutils"
	"github.com/heislab/elevator-simulator/internal/logger"
)

var Logger = logger.GetLogger()

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	cmdArgs, err := elevutils.ParseCmdArgs("elevatortester", args, stdout)
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

	scenarios := elevconfig.AcceptanceScenarios()
	if cmdArgs.Scenario != "" {
		scenarios, err = elevconfig.LoadScenarios(cmdArgs.Scenario)
		if err != nil {
			Logger.Error().Err(err).Msg("Loading scenarios failed")
			return 1
		}
	}

	var opts []elevstate.Option
	if cmdArgs.Bounds {
		opts = append(opts, elevstate.WithBoundsChecking())
	}
	if cmdArgs.Directional {
		opts = append(opts, elevstate.WithDirectionalOrder())
	}

	Logger.Info().Msgf("Running %d scenarios", len(scenarios))
	failed := 0
	for _, scenario := range scenarios {
		scenario.ApplyDefaults(defaults)

		report, err := elevator.NewElevator(cmdArgs.Identifier, scenario, opts...).Verify()
		if err != nil {
			failed++
			Logger.Error().Err(err).Msgf("FAIL %s", scenario.Name)
			fmt.Fprintf(stdout, "FAIL %s\n", scenario.Name)
		} else {
			Logger.Info().Msgf("PASS %s", scenario.Name)
			fmt.Fprintf(stdout, "PASS %s\n", scenario.Name)
		}
		if cmdArgs.JSON {
			fmt.Fprintln(stdout, report.String())
		}
	}

	fmt.Fprintf(stdout, "%d/%d scenarios passed\n", len(scenarios)-failed, len(scenarios))
	if failed > 0 {
		return 1
	}
	return 0
}
