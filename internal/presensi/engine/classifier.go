// Package engine berisi logika rekonsiliasi presensi: turunan status harian,
// rekap bulanan, klasifikasi kalender, dan inferensi absen. Semua fungsi di
// sini murni — bekerja di atas event yang sudah diambil dari database, tanpa
// state internal, sehingga bisa diuji tanpa koneksi apa pun.
package engine

import (
	"time"

	"github.com/rakhapw/absensi-backend/internal/presensi/models"
)

const formatTanggal = "2006-01-02"

// ClassifyDay menurunkan DayRecord dari event satu karyawan pada satu tanggal.
// Hanya event sukses yang menentukan status; event gagal diabaikan di sini
// (tetap tampil di riwayat). Duplikat sukses dengan jenis sama diselesaikan
// deterministik: timestamp paling akhir yang menang.
//
// Keterlambatan dihitung ulang dari cfg, bukan dipercaya dari flag tersimpan,
// supaya klasifikasi ulang setelah konfigurasi berubah tetap konsisten. Tanpa
// konfigurasi, semua check-in dianggap tepat waktu.
func ClassifyDay(tanggal time.Time, events []models.AttendanceEvent, cfg models.WorkHoursConfig) models.DayRecord {
	rec := models.DayRecord{
		Tanggal: awalHari(tanggal),
		State:   models.StateEmpty,
	}

	for i := range events {
		ev := &events[i]
		if !ev.Sukses() {
			continue
		}
		switch ev.Jenis {
		case models.KindMasuk:
			if rec.CheckIn == nil || ev.Waktu.After(rec.CheckIn.Waktu) {
				rec.CheckIn = ev
			}
		case models.KindPulang:
			if rec.CheckOut == nil || ev.Waktu.After(rec.CheckOut.Waktu) {
				rec.CheckOut = ev
			}
		}
	}

	switch {
	case rec.CheckIn != nil && rec.CheckOut != nil:
		rec.State = models.StateCompleted
	case rec.CheckIn != nil:
		rec.State = models.StateCheckedIn
	}
	// Check-out tanpa check-in adalah anomali data; state dibiarkan empty
	// tapi pointer CheckOut tetap diisi agar kalender bisa menandainya.

	if rec.CheckIn != nil {
		if batas, ok := cfg.BatasMasuk(rec.Tanggal); ok && rec.CheckIn.Waktu.After(batas) {
			rec.Terlambat = true
			rec.MenitTerlambat = int(rec.CheckIn.Waktu.Sub(batas).Minutes())
		}
	}

	return rec
}

// DayRecords mengelompokkan event per tanggal (zona waktu loc) lalu
// mengklasifikasikan tiap hari. Kunci map berformat "2006-01-02".
func DayRecords(events []models.AttendanceEvent, cfg models.WorkHoursConfig, loc *time.Location) map[string]models.DayRecord {
	perHari := make(map[string][]models.AttendanceEvent)
	for _, ev := range events {
		key := ev.Waktu.In(loc).Format(formatTanggal)
		perHari[key] = append(perHari[key], ev)
	}

	records := make(map[string]models.DayRecord, len(perHari))
	for key, evs := range perHari {
		tanggal, err := time.ParseInLocation(formatTanggal, key, loc)
		if err != nil {
			continue
		}
		records[key] = ClassifyDay(tanggal, evs, cfg)
	}
	return records
}

func awalHari(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// akhirPekan: Sabtu/Minggu tidak masuk hitungan hari kerja.
func akhirPekan(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

func tanggalSama(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
