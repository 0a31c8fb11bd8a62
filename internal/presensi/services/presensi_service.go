package services

import (
	"time"

	"github.com/rakhapw/absensi-backend/internal/presensi/engine"
	"github.com/rakhapw/absensi-backend/internal/presensi/models"
)

// PresensiService mencatat aksi check-in/check-out. Verifikasi wajah dan
// lokasi terjadi di hulu; di sini hanya hasilnya yang diterima dan disimpan.
type PresensiService struct {
	Events *EventService
	Config WorkHoursProvider
}

func NewPresensiService(events *EventService, cfg WorkHoursProvider) *PresensiService {
	return &PresensiService{Events: events, Config: cfg}
}

// CheckMasuk mencatat event masuk. Flag terlambat yang tersimpan dihitung
// saat pencatatan (audit); agregasi tetap menghitung ulang sendiri dari
// konfigurasi saat membaca.
func (s *PresensiService) CheckMasuk(idKaryawan string, hasil models.EventOutcome, lat, lng *float64, gajiHarian float64, now time.Time) (models.AttendanceEvent, error) {
	ev := models.AttendanceEvent{
		IDKaryawan:        idKaryawan,
		Waktu:             now,
		Jenis:             models.KindMasuk,
		Hasil:             hasil,
		GajiHarianDidapat: gajiHarian,
		Latitude:          lat,
		Longitude:         lng,
	}
	if hasil == models.OutcomeSukses {
		if batas, ok := s.Config.WorkHours().BatasMasuk(now); ok && now.After(batas) {
			ev.Terlambat = true
			ev.MenitTerlambat = int(now.Sub(batas).Minutes())
		}
	}
	return s.Events.RecordEvent(ev)
}

// CheckPulang mencatat event pulang. Jam kerja dihitung dari check-in sukses
// hari ini (kalau ada); lembur dari selisih terhadap jam pulang nominal.
func (s *PresensiService) CheckPulang(idKaryawan string, hasil models.EventOutcome, lat, lng *float64, now time.Time) (models.AttendanceEvent, error) {
	ev := models.AttendanceEvent{
		IDKaryawan: idKaryawan,
		Waktu:      now,
		Jenis:      models.KindPulang,
		Hasil:      hasil,
		Latitude:   lat,
		Longitude:  lng,
	}

	if hasil == models.OutcomeSukses {
		awal := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		akhir := awal.Add(24*time.Hour - time.Second)
		cfg := s.Config.WorkHours()
		if hariIni, err := s.Events.FetchRange(&idKaryawan, awal, akhir); err == nil {
			rec := engine.ClassifyDay(awal, hariIni, cfg)
			if rec.CheckIn != nil {
				ev.JamKerja = now.Sub(rec.CheckIn.Waktu).Hours()
			}
		}
		if pulang, ok := cfg.JamPulangPada(now); ok && now.After(pulang) {
			ev.JamLembur = now.Sub(pulang).Hours()
		}
	}

	return s.Events.RecordEvent(ev)
}
