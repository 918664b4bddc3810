package elevconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/heislab/elevator-simulator/internal/elevcmd"
	"github.com/heislab/elevator-simulator/internal/elevconsts"
	"github.com/heislab/elevator-simulator/internal/logger"
)

var Log = logger.GetLogger()

const (
	DEFAULT_ENV_PATH = ".env"

	ENV_FLOORS        = "ELEVSIM_FLOORS"
	ENV_INITIAL_FLOOR = "ELEVSIM_INITIAL_FLOOR"
	ENV_LOG_LEVEL     = "ELEVSIM_LOG_LEVEL"
	ENV_ID            = "ELEVSIM_ID"

	ExpectInvalidOperation = "invalid_operation"
	ExpectInvalidInput     = "invalid_input"
)

type Defaults struct {
	Floors       int
	InitialFloor int
	LogLevel     string
	Identifier   string
}

func BuiltinDefaults() Defaults {
	return Defaults{
		Floors:       elevconsts.DEFAULT_N_FLOORS,
		InitialFloor: elevconsts.DEFAULT_INITIAL_FLOOR,
		LogLevel:     "info",
	}
}

// LoadEnv reads defaults from a dotenv file, then lets process environment
// variables override them. A missing file is not an error.
func LoadEnv(path string) (Defaults, error) {
	defaults := BuiltinDefaults()

	values, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return defaults, fmt.Errorf("reading %s: %w", path, err)
		}
		Log.Debug().Msgf("No env file at %s, using built-in defaults", path)
		values = map[string]string{}
	}

	for _, key := range []string{ENV_FLOORS, ENV_INITIAL_FLOOR, ENV_LOG_LEVEL, ENV_ID} {
		if value, ok := os.LookupEnv(key); ok {
			values[key] = value
		}
	}

	if value := values[ENV_FLOORS]; value != "" {
		floors, err := strconv.Atoi(value)
		if err != nil {
			return defaults, fmt.Errorf("%s: %w", ENV_FLOORS, err)
		}
		defaults.Floors = floors
	}
	if value := values[ENV_INITIAL_FLOOR]; value != "" {
		initialFloor, err := strconv.Atoi(value)
		if err != nil {
			return defaults, fmt.Errorf("%s: %w", ENV_INITIAL_FLOOR, err)
		}
		defaults.InitialFloor = initialFloor
	}
	if value := values[ENV_LOG_LEVEL]; value != "" {
		defaults.LogLevel = value
	}
	defaults.Identifier = values[ENV_ID]

	return defaults, nil
}

type Expectation struct {
	FinalFloor *int  `yaml:"final_floor,omitempty"`
	Stops      []int `yaml:"stops,omitempty"`
	// Error is empty, ExpectInvalidOperation or ExpectInvalidInput.
	Error string `yaml:"error,omitempty"`
}

type Scenario struct {
	Name         string                 `yaml:"name,omitempty"`
	Floors       int                    `yaml:"floors,omitempty"`
	InitialFloor int                    `yaml:"initial_floor,omitempty"`
	Commands     []elevcmd.FloorCommand `yaml:"commands,omitempty"`
	// AbsentWorklist runs the scenario with no worklist at all.
	AbsentWorklist bool         `yaml:"absent_worklist,omitempty"`
	Expect         *Expectation `yaml:"expect,omitempty"`
}

// Worklist returns a fresh worklist for the scenario, nil when absent.
func (s Scenario) Worklist() *elevcmd.Worklist {
	if s.AbsentWorklist {
		return nil
	}
	return elevcmd.NewWorklist(s.Commands...)
}

func (s *Scenario) ApplyDefaults(defaults Defaults) {
	if s.Floors == 0 {
		s.Floors = defaults.Floors
	}
	if s.InitialFloor == 0 {
		s.InitialFloor = defaults.InitialFloor
	}
}

type scenarioFile struct {
	Scenario  `yaml:",inline"`
	Scenarios []Scenario `yaml:"scenarios,omitempty"`
}

// ParseScenarios decodes either a single scenario document or a document
// with a top-level scenarios list.
func ParseScenarios(data []byte) ([]Scenario, error) {
	var file scenarioFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}
	if len(file.Scenarios) > 0 {
		return file.Scenarios, nil
	}
	return []Scenario{file.Scenario}, nil
}

func ParseScenario(data []byte) (Scenario, error) {
	scenarios, err := ParseScenarios(data)
	if err != nil {
		return Scenario{}, err
	}
	if len(scenarios) != 1 {
		return Scenario{}, fmt.Errorf("expected one scenario, found %d", len(scenarios))
	}
	return scenarios[0], nil
}

func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	scenarios, err := ParseScenarios(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}

func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario file: %w", err)
	}
	scenario, err := ParseScenario(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return scenario, nil
}

func MarshalScenarios(scenarios []Scenario) ([]byte, error) {
	return yaml.Marshal(scenarioFile{Scenarios: scenarios})
}

// ParseCommands reads an inline list such as "9d,6u,3:up 5:down".
func ParseCommands(s string) ([]elevcmd.FloorCommand, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})

	commands := make([]elevcmd.FloorCommand, 0, len(fields))
	for _, field := range fields {
		split := strings.IndexFunc(field, func(r rune) bool { return !unicode.IsDigit(r) })
		if split <= 0 {
			return nil, fmt.Errorf("command %q: expected <floor><direction>", field)
		}
		floor, err := strconv.Atoi(field[:split])
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", field, err)
		}
		dirn, err := elevconsts.ParseDirn(strings.TrimPrefix(field[split:], ":"))
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", field, err)
		}
		commands = append(commands, elevcmd.NewFloorCommand(floor, dirn))
	}
	return commands, nil
}

// DemoCommands is the command list the simulator runs when given nothing else.
func DemoCommands() []elevcmd.FloorCommand {
	return []elevcmd.FloorCommand{
		elevcmd.NewFloorCommand(9, elevconsts.Down),
		elevcmd.NewFloorCommand(6, elevconsts.Up),
		elevcmd.NewFloorCommand(3, elevconsts.Up),
		elevcmd.NewFloorCommand(7, elevconsts.Up),
		elevcmd.NewFloorCommand(5, elevconsts.Down),
	}
}

func finalFloor(floor int) *int {
	return &floor
}

// AcceptanceScenarios are the reference runs every build must reproduce.
func AcceptanceScenarios() []Scenario {
	up := func(floor int) elevcmd.FloorCommand { return elevcmd.NewFloorCommand(floor, elevconsts.Up) }
	down := func(floor int) elevcmd.FloorCommand { return elevcmd.NewFloorCommand(floor, elevconsts.Down) }

	return []Scenario{
		{
			Name: "MoveUpMoveDown", Floors: 10, InitialFloor: 1,
			Commands: []elevcmd.FloorCommand{down(2), up(1)},
			Expect:   &Expectation{FinalFloor: finalFloor(1)},
		},
		{
			Name: "MoveDownMoveUp", Floors: 10, InitialFloor: 2,
			Commands: []elevcmd.FloorCommand{up(1), down(2)},
			Expect:   &Expectation{FinalFloor: finalFloor(2)},
		},
		{
			Name: "ComplexSequence", Floors: 10, InitialFloor: 1,
			Commands: DemoCommands(),
			Expect:   &Expectation{FinalFloor: finalFloor(5), Stops: []int{1, 3, 6, 7, 9, 5}},
		},
		{
			Name: "TwoAdjacentCommandsWithSameFloor", Floors: 10, InitialFloor: 1,
			Commands: []elevcmd.FloorCommand{up(3), up(3)},
			Expect:   &Expectation{Error: ExpectInvalidOperation},
		},
		{
			Name: "MoveUpOnTopFloor", Floors: 10, InitialFloor: 10,
			Commands: []elevcmd.FloorCommand{up(10)},
			Expect:   &Expectation{Error: ExpectInvalidOperation},
		},
		{
			Name: "MoveDownOnBottomFloor", Floors: 10, InitialFloor: 1,
			Commands: []elevcmd.FloorCommand{down(1)},
			Expect:   &Expectation{Error: ExpectInvalidOperation},
		},
		{
			Name: "EmptyCommandList", Floors: 10, InitialFloor: 1,
			Commands: []elevcmd.FloorCommand{},
			Expect:   &Expectation{FinalFloor: finalFloor(1), Stops: []int{1}},
		},
		{
			Name: "NullCommandList", Floors: 10, InitialFloor: 1,
			AbsentWorklist: true,
			Expect:         &Expectation{Error: ExpectInvalidInput},
		},
	}
}
