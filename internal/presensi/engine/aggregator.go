package engine

import (
	"time"

	manajemen "github.com/rakhapw/absensi-backend/internal/manajemen/models"
	"github.com/rakhapw/absensi-backend/internal/presensi/models"
)

// Pembagi standar 22 hari kerja per bulan untuk estimasi gaji. Angka
// estimasi, bukan payroll resmi.
const hariKerjaPerBulan = 22

// AggregateMonth merekap event satu karyawan dalam satu bulan menjadi
// MonthlySummary. bulan boleh tanggal berapa pun di bulan yang dituju; now
// membatasi evaluasi — bulan berjalan hanya dihitung sampai saat ini, hari
// yang belum lewat tidak pernah dianggap absen.
//
// Hadir berarti punya check-in sukses hari itu; check-out tidak wajib untuk
// hitungan hadir. TotalAbsen di-clamp di nol supaya anomali data (hadir di
// akhir pekan, duplikat) tidak menghasilkan angka negatif.
func AggregateMonth(karyawan manajemen.Karyawan, events []models.AttendanceEvent, cfg models.WorkHoursConfig, bulan, now time.Time) models.MonthlySummary {
	loc := bulan.Location()
	awalBulan := time.Date(bulan.Year(), bulan.Month(), 1, 0, 0, 0, 0, loc)
	akhirBulan := awalBulan.AddDate(0, 1, -1)

	ringkasan := models.MonthlySummary{Bulan: awalBulan.Format("2006-01")}

	efektif := akhirBulan
	if now.Before(efektif) {
		efektif = now.In(loc)
	}
	if efektif.Before(awalBulan) {
		// Bulan yang belum mulai: tidak ada hari kerja yang lewat.
		isiGaji(&ringkasan, karyawan)
		return ringkasan
	}

	records := DayRecords(events, cfg, loc)

	for hari := awalBulan; !hari.After(efektif); hari = hari.AddDate(0, 0, 1) {
		if !akhirPekan(hari) {
			ringkasan.TotalHariKerja++
		}
		rec, ok := records[hari.Format(formatTanggal)]
		if !ok || rec.CheckIn == nil {
			continue
		}
		ringkasan.TotalHadir++
		if rec.Terlambat {
			ringkasan.HariTerlambat++
		} else {
			ringkasan.HariTepatWaktu++
		}
	}

	ringkasan.TotalAbsen = ringkasan.TotalHariKerja - ringkasan.TotalHadir
	if ringkasan.TotalAbsen < 0 {
		ringkasan.TotalAbsen = 0
	}

	isiGaji(&ringkasan, karyawan)
	ringkasan.GajiBerjalan = 0
	if karyawan.GajiPokok != nil {
		ringkasan.GajiBerjalan = *karyawan.GajiPokok / hariKerjaPerBulan * float64(ringkasan.TotalHadir)
	}

	// DidapatHariIni: pass-through dari kolom gaji_harian_didapat pada
	// check-in sukses hari ini, tidak dihitung ulang di sini.
	for _, ev := range events {
		if ev.Jenis == models.KindMasuk && ev.Sukses() && tanggalSama(ev.Waktu.In(loc), now.In(loc)) {
			ringkasan.DidapatHariIni += ev.GajiHarianDidapat
		}
	}

	return ringkasan
}

func isiGaji(r *models.MonthlySummary, k manajemen.Karyawan) {
	switch {
	case k.GajiHarian != nil:
		r.GajiDiharapkan = *k.GajiHarian * hariKerjaPerBulan
	case k.GajiPokok != nil:
		r.GajiDiharapkan = *k.GajiPokok
	}
}

// DegradedSummary adalah rekap nol ber-flag yang dikembalikan saat
// pengambilan event gagal, supaya dashboard bisa menampilkan "data tidak
// tersedia" alih-alih crash.
func DegradedSummary(bulan time.Time) models.MonthlySummary {
	awalBulan := time.Date(bulan.Year(), bulan.Month(), 1, 0, 0, 0, 0, bulan.Location())
	return models.MonthlySummary{Bulan: awalBulan.Format("2006-01"), Degraded: true}
}
