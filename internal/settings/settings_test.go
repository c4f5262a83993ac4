package settings

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestTouch(t *testing.T) {
	tests := []struct {
		name    string
		initial []string
		touch   string
		want    []string
	}{
		{
			name:  "First file",
			touch: "/data/a.csv",
			want:  []string{"/data/a.csv"},
		},
		{
			name:    "New file goes first",
			initial: []string{"/data/a.csv"},
			touch:   "/data/b.csv",
			want:    []string{"/data/b.csv", "/data/a.csv"},
		},
		{
			name:    "Existing file moves up without duplicating",
			initial: []string{"/data/a.csv", "/data/b.csv", "/data/c.csv"},
			touch:   "/data/b.csv",
			want:    []string{"/data/b.csv", "/data/a.csv", "/data/c.csv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{RecentFiles: tt.initial}
			s.Touch(tt.touch)
			if s.LastFile != tt.touch {
				t.Errorf("LastFile = %q; want %q", s.LastFile, tt.touch)
			}
			if !reflect.DeepEqual(s.RecentFiles, tt.want) {
				t.Errorf("RecentFiles = %v; want %v", s.RecentFiles, tt.want)
			}
		})
	}
}

func TestTouchCapsList(t *testing.T) {
	s := &Settings{}
	for i := 0; i < MaxRecentFiles+5; i++ {
		s.Touch(filepath.Join("/data", string(rune('a'+i))+".csv"))
	}
	if len(s.RecentFiles) != MaxRecentFiles {
		t.Errorf("len(RecentFiles) = %d; want %d", len(s.RecentFiles), MaxRecentFiles)
	}
	if s.RecentFiles[0] != s.LastFile {
		t.Errorf("RecentFiles[0] = %q; want %q", s.RecentFiles[0], s.LastFile)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")

	s := &Settings{}
	s.Touch("/data/a.csv")
	s.Touch("/data/b.csv")
	if err := s.saveTo(path); err != nil {
		t.Fatalf("saveTo() error: %v", err)
	}

	got, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom() error: %v", err)
	}
	if !reflect.DeepEqual(got, s) {
		t.Errorf("loadFrom() = %+v; want %+v", got, s)
	}
}

func TestLoadMissingFile(t *testing.T) {
	got, err := loadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("loadFrom() error: %v", err)
	}
	if got.LastFile != "" || len(got.RecentFiles) != 0 {
		t.Errorf("loadFrom() = %+v; want zero value", got)
	}
}
