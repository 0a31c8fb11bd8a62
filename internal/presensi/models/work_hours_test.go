package models

import (
	"testing"
	"time"
)

func TestBatasMasuk(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	hari := time.Date(2024, time.March, 5, 0, 0, 0, 0, wib)
	cfg := WorkHoursConfig{JamMasuk: "09:00", JamPulang: "17:00", ToleransiMenit: 5}

	batas, ok := cfg.BatasMasuk(hari)
	if !ok {
		t.Fatal("expected batas masuk to resolve")
	}
	want := time.Date(2024, time.March, 5, 9, 5, 0, 0, wib)
	if !batas.Equal(want) {
		t.Fatalf("expected %v, got %v", want, batas)
	}
}

func TestBatasMasukMissingConfig(t *testing.T) {
	hari := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	if _, ok := (WorkHoursConfig{Missing: true}).BatasMasuk(hari); ok {
		t.Fatal("missing config must not resolve a threshold")
	}
	if _, ok := (WorkHoursConfig{}).BatasMasuk(hari); ok {
		t.Fatal("empty jam masuk must not resolve a threshold")
	}
	if _, ok := (WorkHoursConfig{JamMasuk: "9am"}).BatasMasuk(hari); ok {
		t.Fatal("unparseable jam masuk must not resolve a threshold")
	}
}

func TestJamPulangPada(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	hari := time.Date(2024, time.March, 5, 0, 0, 0, 0, wib)
	cfg := WorkHoursConfig{JamMasuk: "09:00", JamPulang: "17:00"}

	pulang, ok := cfg.JamPulangPada(hari)
	if !ok {
		t.Fatal("expected jam pulang to resolve")
	}
	want := time.Date(2024, time.March, 5, 17, 0, 0, 0, wib)
	if !pulang.Equal(want) {
		t.Fatalf("expected %v, got %v", want, pulang)
	}
}
