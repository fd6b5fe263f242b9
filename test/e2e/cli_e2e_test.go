package e2e

import (
	"errors"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	apperrors "github.com/agbru/intcalc/internal/errors"
	fake "github.com/agbru/intcalc/internal/testutil"
)

// buildBinary compiles cmd/intcalc into a temporary directory.
func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	binName := "intcalc"
	if runtime.GOOS == "windows" {
		binName = "intcalc.exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	// go test runs from the package directory; build from the module root.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/intcalc")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build intcalc: %v", err)
	}
	return binPath
}

// TestCLI_E2E verifies the built binary against a fake calculation service.
func TestCLI_E2E(t *testing.T) {
	binPath := buildBinary(t)

	ok := fake.NewService(t, fake.Square())
	bad := fake.NewService(t, fake.Error(http.StatusBadRequest, "Invalid bounds: lower must be a number"))

	tests := []struct {
		name     string
		args     []string
		env      []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Calculation",
			args:     []string{"-url", ok.URL, "-f", "x^2", "-a", "0", "-b", "2"},
			wantOut:  "8/3 ≈ 2.6667",
			wantCode: apperrors.ExitSuccess,
		},
		{
			name:     "Environment configuration",
			args:     []string{"-f", "x^2", "-a", "0", "-b", "2"},
			env:      []string{"INTCALC_URL=" + ok.URL},
			wantOut:  "Graph of f(x) from 0 to 2",
			wantCode: apperrors.ExitSuccess,
		},
		{
			name:     "Service error",
			args:     []string{"-url", bad.URL, "-f", "x", "-a", "a", "-b", "1"},
			wantOut:  "Invalid bounds: lower must be a number",
			wantCode: apperrors.ExitErrorService,
		},
		{
			name:     "Service unreachable",
			args:     []string{"-url", "http://127.0.0.1:1", "-f", "x", "-a", "0", "-b", "1"},
			wantOut:  apperrors.GenericTransportMessage,
			wantCode: apperrors.ExitErrorTransport,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: apperrors.ExitSuccess,
		},
		{
			name:     "Invalid URL",
			args:     []string{"-url", "ftp://example.com"},
			wantOut:  "invalid service url",
			wantCode: apperrors.ExitErrorConfig,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "intcalc",
			wantCode: apperrors.ExitSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(append(os.Environ(), "NO_COLOR=1"), tt.env...)
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("Command did not run: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}

			if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
