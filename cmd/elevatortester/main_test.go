package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunAcceptance(t *testing.T) {
	var out bytes.Buffer
	env := filepath.Join(t.TempDir(), ".env")
	if code := run([]string{"-env", env, "-loglevel", "disabled"}, &out); code != 0 {
		t.Fatalf("run() = %d, expected 0; output:\n%s", code, out.String())
	}
	if strings.Contains(out.String(), "FAIL") {
		t.Errorf("Expected every scenario to pass, got:\n%s", out.String())
	}
}

func TestRunScenarioFile(t *testing.T) {
	var out bytes.Buffer
	env := filepath.Join(t.TempDir(), ".env")
	suite := filepath.Join("..", "..", "configs", "acceptance.yaml")
	if code := run([]string{"-env", env, "-loglevel", "disabled", "-scenario", suite}, &out); code != 0 {
		t.Fatalf("run() = %d, expected 0; output:\n%s", code, out.String())
	}
}

func TestRunReportsFailures(t *testing.T) {
	dir := t.TempDir()
	suite := filepath.Join(dir, "suite.yaml")
	content := `scenarios:
  - name: WrongFinalFloor
    floors: 10
    initial_floor: 1
    commands:
      - {floor: 9, direction: down}
    expect:
      final_floor: 4
`
	if err := os.WriteFile(suite, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if code := run([]string{"-env", filepath.Join(dir, ".env"), "-loglevel", "disabled", "-scenario", suite}, &out); code != 1 {
		t.Errorf("run() = %d, expected 1", code)
	}
	if !strings.Contains(out.String(), "FAIL WrongFinalFloor") || !strings.Contains(out.String(), "0/1 scenarios passed") {
		t.Errorf("Unexpected output:\n%s", out.String())
	}
}
