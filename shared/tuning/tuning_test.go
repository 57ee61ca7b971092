package tuning

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/tilehop/shared/controller"
	"github.com/automoto/tilehop/shared/gamemath"
)

func TestDecodeKeepsDefaults(t *testing.T) {
	got, err := Decode([]byte("fall_gravity: 0.5\ntop_speed: 3\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := controller.DefaultTuning()
	want.FallGravity = 0.5
	want.TopSpeed = 3
	if got != want {
		t.Fatalf("Decode = %+v, want %+v", got, want)
	}
}

func TestDecodeRejects(t *testing.T) {
	cases := []struct {
		name string
		data string
		is   error
	}{
		{"zero_duration", "jump_duration: 0\n", gamemath.ErrInvalidJumpDuration},
		{"negative_duration", "jump_duration: -4\n", gamemath.ErrInvalidJumpDuration},
		{"not_yaml", "top_speed: [1, 2\n", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Decode([]byte(c.data))
			if err == nil {
				t.Fatal("Decode accepted invalid tuning")
			}
			if c.is != nil && !errors.Is(err, c.is) {
				t.Fatalf("err = %v, want %v", err, c.is)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	in := controller.DefaultTuning()
	in.Acceleration = 0.08
	data, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out != in {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("LoadFile of a missing file succeeded")
	}

	if err := os.WriteFile(path, []byte("apex_height: 48\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.ApexHeight != 48 || got.JumpDuration != 18 {
		t.Fatalf("LoadFile = %+v", got)
	}
}

func TestWriteFile(t *testing.T) {
	in := controller.DefaultTuning()
	in.ApexHeight = 40
	in.TopSpeed = 2.5

	cases := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"new file", filepath.Join(t.TempDir(), "tuning.yaml"), false},
		{"missing directory", filepath.Join(t.TempDir(), "nope", "tuning.yaml"), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := WriteFile(c.path, in)
			if c.wantErr {
				if err == nil {
					t.Fatal("WriteFile succeeded")
				}
				return
			}
			if err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			got, err := LoadFile(c.path)
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			if got != in {
				t.Fatalf("LoadFile = %+v, want %+v", got, in)
			}
		})
	}
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("fall_gravity: 0.33\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("fall_gravity: 0.4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Updates:
		if got.FallGravity != 0.4 {
			t.Fatalf("reloaded fall gravity = %v, want 0.4", got.FallGravity)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// Ranging only ends once Updates is closed.
	for range w.Updates {
	}
}
