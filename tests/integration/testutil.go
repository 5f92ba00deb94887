// Package integration exercises the SDK and the lawg CLI end to end
// against an in-memory API server.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
)

var (
	// lawgBin is the path to the built lawg binary.
	lawgBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetLawgBin sets the path to the lawg binary (called from TestMain).
func SetLawgBin(path string) {
	lawgBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv is an isolated CLI environment: its own mock API server and
// config directory, with LAWG_* variables scrubbed from the child
// process so the host environment cannot leak in.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
	Token     string
	API       *mockAPI
	ServerURL string

	// ExtraEnv is appended to the child process environment.
	ExtraEnv []string
}

// NewTestEnv creates a new isolated test environment with a running
// mock API and a config.yaml pointing at it.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build lawg: %v", buildErr)
	}
	if lawgBin == "" {
		t.Fatal("lawg binary not built (lawgBin is empty)")
	}

	const token = "integration-token"
	api, server := newMockAPI(token)
	t.Cleanup(server.Close)

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	env := &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: configDir,
		Token:     token,
		API:       api,
		ServerURL: server.URL,
	}
	env.WriteConfig("token: " + token + "\nbase_url: " + server.URL + "\n")
	return env
}

// WriteConfig replaces config.yaml in the environment's config directory.
func (e *TestEnv) WriteConfig(content string) {
	e.t.Helper()
	path := filepath.Join(e.ConfigDir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write config: %v", err)
	}
}

// CmdResult holds the result of a lawg command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunLawg executes the lawg CLI with the given arguments.
func (e *TestEnv) RunLawg(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir}, args...)
	cmd := exec.Command(lawgBin, allArgs...)
	cmd.Dir = e.TempDir

	// Empty LAWG_* values read as unset through viper, so the host
	// environment cannot interfere with the test config.
	cmd.Env = append(os.Environ(),
		"LAWG_TOKEN=",
		"LAWG_BASE_URL=",
		"LAWG_CONFIG_DIR=",
	)
	cmd.Env = append(cmd.Env, e.ExtraEnv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run lawg: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunLawg executes the lawg CLI and fails the test on a non-zero exit.
func (e *TestEnv) MustRunLawg(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunLawg(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("lawg %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}
