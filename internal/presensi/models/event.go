package models

import "time"

// Jenis event presensi.
type EventKind string

const (
	KindMasuk  EventKind = "masuk"
	KindPulang EventKind = "pulang"
)

// Hasil verifikasi dari layanan wajah/lokasi di hulu.
type EventOutcome string

const (
	OutcomeSukses           EventOutcome = "sukses"
	OutcomeWajahTidakValid  EventOutcome = "wajah_tidak_valid"
	OutcomeLokasiTidakValid EventOutcome = "lokasi_tidak_valid"
)

// AttendanceEvent adalah satu aksi check yang tercatat. Baris ini immutable:
// dibuat sekali saat karyawan melakukan presensi dan hanya bisa hilang lewat
// bulk delete oleh admin.
type AttendanceEvent struct {
	ID                string       `json:"id"`
	IDKaryawan        string       `json:"id_karyawan"`
	Waktu             time.Time    `json:"waktu"`
	Jenis             EventKind    `json:"jenis"`
	Hasil             EventOutcome `json:"hasil"`
	Terlambat         bool         `json:"terlambat"`
	MenitTerlambat    int          `json:"menit_terlambat"`
	JamKerja          float64      `json:"jam_kerja"`
	JamLembur         float64      `json:"jam_lembur"`
	GajiHarianDidapat float64      `json:"gaji_harian_didapat"`
	Latitude          *float64     `json:"latitude,omitempty"`
	Longitude         *float64     `json:"longitude,omitempty"`
}

// Sukses melaporkan apakah event lolos verifikasi. Hanya event sukses yang
// ikut menentukan status harian; event gagal tetap tampil di riwayat.
func (e AttendanceEvent) Sukses() bool {
	return e.Hasil == OutcomeSukses
}
