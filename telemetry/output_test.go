package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputManager_Disabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// All methods must be safe on a nil manager
	if err := om.WriteFrame(FrameRecord{}); err != nil {
		t.Errorf("nil WriteFrame returned error: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close returned error: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("expected empty dir, got %q", om.Dir())
	}
}

func TestOutputManager_WritesFrames(t *testing.T) {
	dir := t.TempDir()

	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("creating output manager: %v", err)
	}

	if err := om.WriteFrame(FrameRecord{Frame: 0, Offset: 0, ElapsedUS: 1200}); err != nil {
		t.Fatalf("writing first frame: %v", err)
	}
	if err := om.WriteFrame(FrameRecord{Frame: 1, Offset: 256, ElapsedUS: 900}); err != nil {
		t.Fatalf("writing second frame: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("closing: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "frames.csv"))
	if err != nil {
		t.Fatalf("reading frames.csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "frame") || !strings.Contains(lines[0], "elapsed_us") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "1,256,") {
		t.Errorf("unexpected second row: %q", lines[2])
	}
}
