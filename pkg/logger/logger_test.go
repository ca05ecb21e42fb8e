package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_LevelAndSingleton(t *testing.T) {
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "warn", Output: &buf})
	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	if strings.Contains(buf.String(), "dropped") || !strings.Contains(buf.String(), "kept") {
		t.Fatalf("unexpected output: %s", buf.String())
	}

	// A second Init is a no-op.
	Init(Options{Level: "debug"})
	if Get().GetLevel() != zerolog.WarnLevel {
		t.Fatalf("expected singleton to keep warn level, got %s", Get().GetLevel())
	}
}

func TestInit_FileOutput(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "storefront.log")
	var buf bytes.Buffer
	log := Init(Options{Level: "info", Output: &buf, File: path, App: "storefront"})
	log.Info().Msg("order placed")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"app":"storefront"`) || !strings.Contains(buf.String(), "order placed") {
		t.Fatalf("expected entry in both outputs")
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Get()
}
