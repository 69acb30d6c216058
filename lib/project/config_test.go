package project

import (
	"path"
	"testing"
)

func TestConfRoundTrip(t *testing.T) {
	dir := t.TempDir()

	conf := ScanConf{
		Atomics:  []string{"std::cout", "my::thing"},
		Keywords: []string{"fn", "let"},
		Plain:    true,
	}
	if err := conf.Save(path.Join(dir, ConfFileName), true); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := GetScanConf(dir)
	if err != nil {
		t.Fatalf("GetScanConf: %v", err)
	}
	if len(got.Atomics) != 2 || got.Atomics[1] != "my::thing" {
		t.Fatalf("atomics: %v", got.Atomics)
	}
	if len(got.Keywords) != 2 || got.Keywords[0] != "fn" {
		t.Fatalf("keywords: %v", got.Keywords)
	}
	if !got.Plain {
		t.Fatal("plain flag lost")
	}
}

func TestCreateDefault(t *testing.T) {
	var conf ScanConf
	conf.CreateDefault()
	if len(conf.Atomics) != 2 {
		t.Fatalf("default atomics: %v", conf.Atomics)
	}
	if conf.Plain {
		t.Fatal("default should be colored")
	}
}

func TestSaveOverwrite(t *testing.T) {
	dir := t.TempDir()
	file := path.Join(dir, ConfFileName)

	first := ScanConf{Atomics: []string{"a::b"}}
	if err := first.Save(file, true); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second := ScanConf{Atomics: []string{"c::d"}}
	if err := second.Save(file, true); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}

	got, err := GetScanConf(dir)
	if err != nil {
		t.Fatalf("GetScanConf: %v", err)
	}
	if len(got.Atomics) != 1 || got.Atomics[0] != "c::d" {
		t.Fatalf("overwrite not applied: %v", got.Atomics)
	}
}

func TestGetScanConfMissing(t *testing.T) {
	if _, err := GetScanConf(t.TempDir()); err == nil {
		t.Fatal("expected error for missing config")
	}
}
