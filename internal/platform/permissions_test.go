package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	tests := []struct {
		name  string
		mode  os.FileMode
		isDir bool
	}{
		{"file", FileMode, false},
		{"private file", 0600, false},
		{"dir", DirMode, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "target")
			if tt.isDir {
				if err := os.Mkdir(path, 0700); err != nil {
					t.Fatal(err)
				}
			} else if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
				t.Fatal(err)
			}

			if err := Chmod(path, tt.mode); err != nil {
				t.Fatalf("Chmod: %v", err)
			}
			if runtime.GOOS == "windows" {
				return
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if perm := info.Mode().Perm(); perm != tt.mode {
				t.Errorf("permissions = %o, want %o", perm, tt.mode)
			}
		})
	}
}

func TestChmodMissing(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no-op on windows")
	}
	if err := Chmod(filepath.Join(t.TempDir(), "missing"), FileMode); err == nil {
		t.Fatal("expected error for missing path")
	}
}
