package engine

import (
	"time"

	"github.com/rakhapw/absensi-backend/internal/presensi/models"
)

// MarkMonth memetakan setiap tanggal di bulan yang memuat bulan ke kelas
// tampilan kalender. Urutan prioritas (yang pertama cocok yang menang):
// weekend, complete, checkin_only, checkout_only, missed (tanggal sebelum
// today tanpa data), neutral (today atau masa depan). Fungsi ini murni dan
// deterministik: input sama selalu menghasilkan map yang sama.
func MarkMonth(records map[string]models.DayRecord, bulan, today time.Time) map[string]models.DayClass {
	loc := bulan.Location()
	awalBulan := time.Date(bulan.Year(), bulan.Month(), 1, 0, 0, 0, 0, loc)
	akhirBulan := awalBulan.AddDate(0, 1, -1)
	batasHariIni := awalHari(today.In(loc))

	marks := make(map[string]models.DayClass)
	for hari := awalBulan; !hari.After(akhirBulan); hari = hari.AddDate(0, 0, 1) {
		key := hari.Format(formatTanggal)
		marks[key] = kelasHari(hari, records[key], batasHariIni)
	}
	return marks
}

func kelasHari(hari time.Time, rec models.DayRecord, batasHariIni time.Time) models.DayClass {
	switch {
	case akhirPekan(hari):
		return models.ClassWeekend
	case rec.CheckIn != nil && rec.CheckOut != nil:
		return models.ClassComplete
	case rec.CheckIn != nil:
		return models.ClassCheckinOnly
	case rec.CheckOut != nil:
		// Check-out tanpa check-in: anomali, tetap ditandai tanpa error.
		return models.ClassCheckoutOnly
	case hari.Before(batasHariIni):
		return models.ClassMissed
	default:
		return models.ClassNeutral
	}
}
