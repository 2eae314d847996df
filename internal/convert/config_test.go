package convert

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFile(t *testing.T) {
	conf := loadFrom(filepath.Join(t.TempDir(), "config.json"))
	if conf.LoadedFromFile {
		t.Error("LoadedFromFile = true for a missing file")
	}
	if got := conf.Indent(); got != "  " {
		t.Errorf("default Indent() = %q; want two spaces", got)
	}
	if got := conf.Limit(); got != 20 {
		t.Errorf("default Limit() = %d; want 20", got)
	}
	if got := conf.Concurrency(); got != 2 {
		t.Errorf("default Concurrency() = %d; want 2", got)
	}
}

func TestLoadFrom_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"indentWidth":4,"previewLimit":5}`), 0644); err != nil {
		t.Fatal(err)
	}
	conf := loadFrom(path)
	if !conf.LoadedFromFile {
		t.Error("LoadedFromFile = false after reading a config file")
	}
	if got := conf.Indent(); got != "    " {
		t.Errorf("Indent() = %q; want four spaces", got)
	}
	if got := conf.Limit(); got != 5 {
		t.Errorf("Limit() = %d; want 5", got)
	}
}

func TestLoadFrom_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	conf := loadFrom(path)
	if conf.LoadedFromFile {
		t.Error("LoadedFromFile = true for malformed config")
	}
}

func TestConfig_CompactIndent(t *testing.T) {
	conf := Config{Compact: true, IndentWidth: 4}
	if got := conf.Indent(); got != "" {
		t.Errorf("Indent() = %q for compact config; want empty", got)
	}
}
