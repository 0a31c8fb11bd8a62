package models

import (
	"fmt"
	"time"
)

// WorkHoursConfig adalah konfigurasi jam kerja, dimuat sekali per proses.
// Missing true berarti konfigurasi tidak ditemukan; tanpa baseline, semua
// check-in dianggap tepat waktu.
type WorkHoursConfig struct {
	JamMasuk       string `json:"jam_masuk"`  // format "15:04"
	JamPulang      string `json:"jam_pulang"` // format "15:04"
	ToleransiMenit int    `json:"toleransi_menit"`
	Missing        bool   `json:"-"`
}

func parseJam(hari time.Time, jam string) (time.Time, error) {
	t, err := time.Parse("15:04", jam)
	if err != nil {
		return time.Time{}, fmt.Errorf("format jam tidak valid %q: %v", jam, err)
	}
	return time.Date(hari.Year(), hari.Month(), hari.Day(), t.Hour(), t.Minute(), 0, 0, hari.Location()), nil
}

// BatasMasuk mengembalikan ambang terakhir check-in masih dianggap tepat
// waktu (jam masuk + toleransi) pada tanggal hari. ok false kalau konfigurasi
// hilang atau jamnya tidak bisa diparse.
func (c WorkHoursConfig) BatasMasuk(hari time.Time) (time.Time, bool) {
	if c.Missing || c.JamMasuk == "" {
		return time.Time{}, false
	}
	masuk, err := parseJam(hari, c.JamMasuk)
	if err != nil {
		return time.Time{}, false
	}
	return masuk.Add(time.Duration(c.ToleransiMenit) * time.Minute), true
}

// JamPulangPada mengembalikan jam pulang nominal pada tanggal hari.
func (c WorkHoursConfig) JamPulangPada(hari time.Time) (time.Time, bool) {
	if c.Missing || c.JamPulang == "" {
		return time.Time{}, false
	}
	pulang, err := parseJam(hari, c.JamPulang)
	if err != nil {
		return time.Time{}, false
	}
	return pulang, true
}
