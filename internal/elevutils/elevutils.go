package elevutils

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"strings"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > githash.txt"
//go:embed githash.txt
var gitHash string

func GetGitHash() string {
	return strings.TrimSpace(gitHash)
}

// CmdArgs holds the simulator flags. Zero values mean "not given".
type CmdArgs struct {
	Help        bool
	Version     bool
	Scenario    string
	EnvFile     string
	Identifier  string
	Floors      int
	Initial     int
	Commands    string
	LogLevel    string
	Bounds      bool
	Directional bool
	JSON        bool
}

// ParseCmdArgs parses args (without the program name) into CmdArgs.
func ParseCmdArgs(name string, args []string, output io.Writer) (CmdArgs, error) {
	var cmdArgs CmdArgs

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)
	flags.BoolVar(&cmdArgs.Help, "help", false, "Show Help Window")
	flags.BoolVar(&cmdArgs.Version, "version", false, "Show Version")
	flags.StringVar(&cmdArgs.Scenario, "scenario", "", "Path to a YAML scenario file")
	flags.StringVar(&cmdArgs.EnvFile, "env", ".env", "Path to a dotenv file with ELEVSIM_* defaults")
	flags.StringVar(&cmdArgs.Identifier, "id", "", "Set the identifier of the elevator. Defaults to random string")
	flags.IntVar(&cmdArgs.Floors, "floors", 0, "Number of floors. Overrides the scenario and env file")
	flags.IntVar(&cmdArgs.Initial, "initial", 0, "Initial floor. Overrides the scenario and env file")
	flags.StringVar(&cmdArgs.Commands, "commands", "", "Inline floor commands, e.g. \"9d,6u,3u\"")
	flags.StringVar(&cmdArgs.LogLevel, "loglevel", "", "Log level (trace, debug, info, warn, error, disabled)")
	flags.BoolVar(&cmdArgs.Bounds, "bounds", false, "Reject floors outside 1..floors")
	flags.BoolVar(&cmdArgs.Directional, "directional", false, "Service intervening stops in travel order when moving down")
	flags.BoolVar(&cmdArgs.JSON, "json", false, "Print the run report as JSON")

	if err := flags.Parse(args); err != nil {
		return cmdArgs, err
	}

	if cmdArgs.Floors < 0 || cmdArgs.Initial < 0 {
		return cmdArgs, fmt.Errorf("floors and initial floor must not be negative")
	}

	if cmdArgs.Help {
		fmt.Fprintf(output, "Usage: ./%s [OPTIONS]\n", name)
		fmt.Fprintln(output, "Single elevator floor command simulator")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Options:")
		flags.PrintDefaults()
	}
	if cmdArgs.Version {
		fmt.Fprintln(output, "Version:", GetGitHash())
	}

	return cmdArgs, nil
}
