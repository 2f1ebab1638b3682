package fsops

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadFile_SplitLines(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "day03.txt")
	content := "#1 @ 1,3: 4x4\r\n#2 @ 3,1: 4x4\n\n   \n  #3 @ 5,5: 2x2  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	for name, fs := range map[string]FS{
		"real": NewRealFS(),
		"mem": func() FS {
			m := NewMemFS()
			m.WriteFile(path, []byte(content))
			return m
		}(),
	} {
		t.Run(name, func(t *testing.T) {
			data, err := fs.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile failed: %v", err)
			}
			got := SplitLines(data)
			want := []string{"#1 @ 1,3: 4x4", "#2 @ 3,1: 4x4", "#3 @ 5,5: 2x2"}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("SplitLines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadFile_Missing(t *testing.T) {
	for name, fs := range map[string]FS{"real": NewRealFS(), "mem": NewMemFS()} {
		t.Run(name, func(t *testing.T) {
			_, err := fs.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
			if !errors.Is(err, os.ErrNotExist) {
				t.Errorf("ReadFile error = %v, want os.ErrNotExist", err)
			}
		})
	}
}

func TestSplitLines_Empty(t *testing.T) {
	if got := SplitLines(nil); len(got) != 0 {
		t.Errorf("SplitLines(nil) = %v, want empty", got)
	}
}

func TestMemFS_CopiesData(t *testing.T) {
	m := NewMemFS()
	data := []byte("abc")
	m.WriteFile("in.txt", data)
	data[0] = 'x'

	got, err := m.ReadFile("in.txt")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "abc" {
		t.Errorf("ReadFile = %q, want %q", got, "abc")
	}
}
