package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/circlegrid/pkg/observability"
)

func TestNewLoggerTimestampFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, LogInfo)
	logger.Info("packed clusters", "clusters", 4)

	line := buf.String()
	// "15:04:05.00" renders as e.g. "14:32:01.45".
	if len(line) < 11 || line[2] != ':' || line[5] != ':' || line[8] != '.' {
		t.Errorf("log line %q does not start with an HH:MM:SS.ms timestamp", line)
	}
	if !strings.Contains(line, "clusters=4") {
		t.Errorf("log line %q is missing clusters=4", line)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		debug   bool
		wantLog bool
	}{
		{"info shown by default", LogInfo, false, true},
		{"debug hidden by default", LogInfo, true, false},
		{"debug shown with -v", LogDebug, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			if tt.debug {
				logger.Debug("cache miss", "kind", "layout")
			} else {
				logger.Info("layout written")
			}
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, LogInfo))
	time.Sleep(5 * time.Millisecond)

	prog.done("loaded", "records", 3)

	out := buf.String()
	for _, want := range []string{"loaded", "records=3", "took="} {
		if !strings.Contains(out, want) {
			t.Errorf("progress output %q is missing %q", out, want)
		}
	}
	// took comes after the caller's fields.
	if strings.Index(out, "took=") < strings.Index(out, "records=3") {
		t.Errorf("took should follow caller keyvals in %q", out)
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("a bare context should yield log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, LogInfo)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Fatal("loggerFromContext should return the attached logger")
	}
}

func TestVerboseFlagEnablesDebug(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"cache", "path", "-v"})
	t.Cleanup(observability.Reset)

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want debug after -v", c.Logger.GetLevel())
	}
}

func TestSpinnerSilentAtDebugLevel(t *testing.T) {
	var logs bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&logs, LogDebug))

	s, buf := quietSpinner(ctx, "Computing layout...")
	s.Start()
	time.Sleep(3 * spinnerInterval)
	s.Stop()

	if buf.String() != "" {
		t.Errorf("spinner wrote %q while debug logging is on", buf.String())
	}
}
