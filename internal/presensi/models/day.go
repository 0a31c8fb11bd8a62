package models

import "time"

// DayState adalah status rekonsiliasi satu hari untuk satu karyawan.
type DayState string

const (
	StateEmpty     DayState = "empty"
	StateCheckedIn DayState = "checked_in"
	StateCompleted DayState = "completed"
)

// DayClass adalah klasifikasi sel kalender untuk rendering.
type DayClass string

const (
	ClassWeekend      DayClass = "weekend"
	ClassComplete     DayClass = "complete"
	ClassCheckinOnly  DayClass = "checkin_only"
	ClassCheckoutOnly DayClass = "checkout_only"
	ClassMissed       DayClass = "missed"
	ClassNeutral      DayClass = "neutral"
)

// DayRecord adalah hasil turunan (tidak disimpan) dari event satu hari.
// CheckIn/CheckOut hanya diisi dari event sukses; kalau ada duplikat sukses
// dengan jenis sama, yang timestamp-nya paling akhir yang dipakai.
type DayRecord struct {
	Tanggal        time.Time        `json:"tanggal"`
	CheckIn        *AttendanceEvent `json:"check_in,omitempty"`
	CheckOut       *AttendanceEvent `json:"check_out,omitempty"`
	State          DayState         `json:"state"`
	Terlambat      bool             `json:"terlambat"`
	MenitTerlambat int              `json:"menit_terlambat"`
}

// MonthlySummary adalah rekap bulanan satu karyawan. Degraded true berarti
// pengambilan event gagal dan semua angka di-nol-kan, bukan benar-benar nol.
type MonthlySummary struct {
	Bulan          string  `json:"bulan"`
	TotalHariKerja int     `json:"total_hari_kerja"`
	TotalHadir     int     `json:"total_hadir"`
	HariTepatWaktu int     `json:"hari_tepat_waktu"`
	HariTerlambat  int     `json:"hari_terlambat"`
	TotalAbsen     int     `json:"total_absen"`
	GajiDiharapkan float64 `json:"gaji_diharapkan"`
	GajiBerjalan   float64 `json:"gaji_berjalan"`
	DidapatHariIni float64 `json:"didapat_hari_ini"`
	Degraded       bool    `json:"degraded"`
}
