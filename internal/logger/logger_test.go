package logger

import (
	"bytes"
	"os"
	"testing"
)

func reset() {
	SetLevel(LevelWarn)
	SetOutput(os.Stderr)
}

func TestSetVerbosity(t *testing.T) {
	defer reset()

	tests := []struct {
		count int
		want  Level
	}{
		{0, LevelWarn},
		{-1, LevelWarn},
		{1, LevelInfo},
		{2, LevelDebug},
		{5, LevelDebug},
	}

	for _, tt := range tests {
		SetVerbosity(tt.count)
		if !Enabled(tt.want) {
			t.Errorf("verbosity %d: expected level %d enabled", tt.count, tt.want)
		}
		if tt.want < LevelDebug && Enabled(tt.want+1) {
			t.Errorf("verbosity %d: expected level %d disabled", tt.count, tt.want+1)
		}
	}
}

func TestDebug_WhenDebugLevel(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelDebug)

	Debug("test message %s", "arg")

	output := buf.String()
	if output != "[DEBUG] test message arg\n" {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestDebug_WhenInfoLevel(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelInfo)

	Debug("test message")

	if buf.Len() > 0 {
		t.Error("expected no debug output at info level")
	}
}

func TestInfo(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Info("hidden")
	if buf.Len() > 0 {
		t.Error("expected no info output at warn level")
	}

	SetLevel(LevelInfo)
	Info("info message %d", 42)

	output := buf.String()
	if output != "[INFO] info message 42\n" {
		t.Errorf("unexpected info output: %q", output)
	}
}

func TestWarn_AlwaysPrinted(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelWarn)

	Warn("warning message")

	output := buf.String()
	if output != "[WARN] warning message\n" {
		t.Errorf("unexpected warn output: %q", output)
	}
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelInfo)

	Section("Test Section")

	output := buf.String()
	if output != "\n=== Test Section ===\n" {
		t.Errorf("unexpected section output: %q", output)
	}
}

func TestConcurrentAccess(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		i := i
		go func() {
			SetLevel(LevelDebug)
			Debug("concurrent %d", i)
			Enabled(LevelInfo)
			SetLevel(LevelWarn)
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
