package elevconfig

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/heislab/elevator-simulator/internal/elevcmd"
	"github.com/heislab/elevator-simulator/internal/elevconsts"
	"github.com/heislab/elevator-simulator/internal/logger"
)

func TestLoadScenario(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	scenario, err := LoadScenario(filepath.Join("testdata", "complex.yaml"))
	if err != nil {
		t.Fatalf("LoadScenario() returned %v", err)
	}

	if scenario.Name != "ComplexSequence" || scenario.Floors != 10 || scenario.InitialFloor != 1 {
		t.Errorf("Unexpected scenario header %+v", scenario)
	}
	if len(scenario.Commands) != 5 {
		t.Fatalf("Expected 5 commands, got %d", len(scenario.Commands))
	}
	for i, cmd := range DemoCommands() {
		if scenario.Commands[i] != cmd {
			t.Errorf("Command %d = %v, expected %v", i, scenario.Commands[i], cmd)
		}
	}
	if scenario.Expect == nil || scenario.Expect.FinalFloor == nil || *scenario.Expect.FinalFloor != 5 {
		t.Errorf("Expected final_floor 5 in expectation, got %+v", scenario.Expect)
	}
	if len(scenario.Expect.Stops) != 6 {
		t.Errorf("Expected 6 stops in expectation, got %v", scenario.Expect.Stops)
	}
	if scenario.Worklist().Len() != 5 {
		t.Errorf("Worklist() length = %d, expected 5", scenario.Worklist().Len())
	}
}

func TestLoadScenarios(t *testing.T) {
	scenarios, err := LoadScenarios(filepath.Join("testdata", "suite.yaml"))
	if err != nil {
		t.Fatalf("LoadScenarios() returned %v", err)
	}
	if len(scenarios) != 3 {
		t.Fatalf("Expected 3 scenarios, got %d", len(scenarios))
	}

	if scenarios[1].Expect.Error != ExpectInvalidOperation {
		t.Errorf("Expected invalid_operation, got %q", scenarios[1].Expect.Error)
	}
	if scenarios[1].Floors != 0 {
		t.Errorf("Expected floors to be left unset, got %d", scenarios[1].Floors)
	}
	scenarios[1].ApplyDefaults(BuiltinDefaults())
	if scenarios[1].Floors != elevconsts.DEFAULT_N_FLOORS || scenarios[1].InitialFloor != 10 {
		t.Errorf("ApplyDefaults() = floors %d initial %d, expected %d and 10",
			scenarios[1].Floors, scenarios[1].InitialFloor, elevconsts.DEFAULT_N_FLOORS)
	}

	if !scenarios[2].AbsentWorklist || scenarios[2].Worklist() != nil {
		t.Errorf("Expected an absent worklist for %s", scenarios[2].Name)
	}
	if _, err := LoadScenario(filepath.Join("testdata", "suite.yaml")); err == nil {
		t.Errorf("LoadScenario() expected an error for a file with several scenarios")
	}
}

func TestParseScenarioErrors(t *testing.T) {
	if _, err := LoadScenario(filepath.Join("testdata", "unknown_field.yaml")); err == nil {
		t.Errorf("Expected an error for an unknown field")
	}
	if _, err := LoadScenario(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
	if _, err := ParseScenario([]byte("commands:\n  - {floor: 3, direction: sideways}\n")); err == nil {
		t.Errorf("Expected an error for an unknown direction")
	}
}

func TestMarshalScenariosRoundTrip(t *testing.T) {
	data, err := MarshalScenarios(AcceptanceScenarios())
	if err != nil {
		t.Fatalf("MarshalScenarios() returned %v", err)
	}
	scenarios, err := ParseScenarios(data)
	if err != nil {
		t.Fatalf("ParseScenarios() returned %v on marshalled data:\n%s", err, data)
	}
	if len(scenarios) != len(AcceptanceScenarios()) {
		t.Fatalf("Expected %d scenarios, got %d", len(AcceptanceScenarios()), len(scenarios))
	}
	if scenarios[2].Commands[0] != elevcmd.NewFloorCommand(9, elevconsts.Down) {
		t.Errorf("Expected first complex command (9, Down), got %v", scenarios[2].Commands[0])
	}
}

func TestLoadEnv(t *testing.T) {
	defaults, err := LoadEnv(filepath.Join("testdata", "test.env"))
	if err != nil {
		t.Fatalf("LoadEnv() returned %v", err)
	}
	if defaults.Floors != 12 || defaults.InitialFloor != 3 || defaults.LogLevel != "debug" || defaults.Identifier != "carA" {
		t.Errorf("Unexpected defaults %+v", defaults)
	}

	t.Setenv(ENV_FLOORS, "20")
	defaults, err = LoadEnv(filepath.Join("testdata", "test.env"))
	if err != nil {
		t.Fatalf("LoadEnv() returned %v", err)
	}
	if defaults.Floors != 20 {
		t.Errorf("Expected the environment to override floors, got %d", defaults.Floors)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	defaults, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("LoadEnv() returned %v", err)
	}
	if defaults.Floors != elevconsts.DEFAULT_N_FLOORS || defaults.InitialFloor != elevconsts.DEFAULT_INITIAL_FLOOR {
		t.Errorf("Expected built-in defaults, got %+v", defaults)
	}

	t.Setenv(ENV_INITIAL_FLOOR, "two")
	if _, err := LoadEnv(filepath.Join(t.TempDir(), ".env")); err == nil {
		t.Errorf("Expected an error for a non-numeric initial floor")
	}
}

func TestParseCommands(t *testing.T) {
	commands, err := ParseCommands("9d, 6u,3:up 7up;5:down")
	if err != nil {
		t.Fatalf("ParseCommands() returned %v", err)
	}
	expected := DemoCommands()
	if len(commands) != len(expected) {
		t.Fatalf("Expected %d commands, got %v", len(expected), commands)
	}
	for i := range expected {
		if commands[i] != expected[i] {
			t.Errorf("Command %d = %v, expected %v", i, commands[i], expected[i])
		}
	}

	empty, err := ParseCommands("  ")
	if err != nil || len(empty) != 0 {
		t.Errorf("ParseCommands(\"  \") = %v, %v, expected no commands", empty, err)
	}

	for _, bad := range []string{"up", "9", "9x", "9:"} {
		if _, err := ParseCommands(bad); err == nil {
			t.Errorf("ParseCommands(%q) expected an error", bad)
		}
	}
}

func TestAcceptanceScenarios(t *testing.T) {
	scenarios := AcceptanceScenarios()
	names := map[string]bool{}
	for _, scenario := range scenarios {
		if scenario.Expect == nil {
			t.Errorf("%s has no expectation", scenario.Name)
		}
		if names[scenario.Name] {
			t.Errorf("Duplicate scenario name %s", scenario.Name)
		}
		names[scenario.Name] = true
	}
	if !names["ComplexSequence"] || !names["NullCommandList"] {
		t.Errorf("Missing reference scenarios in %v", names)
	}
}
