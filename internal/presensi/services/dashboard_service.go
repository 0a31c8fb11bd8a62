package services

import (
	"log"
	"time"

	manajemen "github.com/rakhapw/absensi-backend/internal/manajemen/models"
	"github.com/rakhapw/absensi-backend/internal/presensi/engine"
	"github.com/rakhapw/absensi-backend/internal/presensi/models"
)

// WorkHoursProvider disediakan oleh manajemen.ConfigService; di sini cukup
// kontraknya supaya paket presensi tidak bergantung balik ke manajemen.
type WorkHoursProvider interface {
	WorkHours() models.WorkHoursConfig
}

// DashboardService merangkai event store dan engine untuk dashboard
// karyawan. Kegagalan pengambilan event tidak pernah diteruskan sebagai
// error ke UI: hasilnya nilai degraded ber-flag.
type DashboardService struct {
	Events *EventService
	Config WorkHoursProvider
}

func NewDashboardService(events *EventService, cfg WorkHoursProvider) *DashboardService {
	return &DashboardService{Events: events, Config: cfg}
}

// RingkasanBulanan menghitung MonthlySummary satu karyawan. Saat event store
// gagal, kembalinya ringkasan nol dengan flag Degraded, bukan error.
func (svc *DashboardService) RingkasanBulanan(karyawan manajemen.Karyawan, bulan, now time.Time) models.MonthlySummary {
	awal, akhir := rentangBulan(bulan)
	events, err := svc.Events.FetchRange(&karyawan.IDKaryawan, awal, akhir)
	if err != nil {
		log.Printf("Ringkasan bulanan %s degraded: %v", karyawan.IDKaryawan, err)
		return engine.DegradedSummary(bulan)
	}
	return engine.AggregateMonth(karyawan, events, svc.Config.WorkHours(), bulan, now)
}

// KalenderBulanan memetakan tanggal ke kelas tampilan. degraded true berarti
// event gagal diambil dan kalender dihitung dari data kosong.
func (svc *DashboardService) KalenderBulanan(idKaryawan string, bulan, now time.Time) (map[string]models.DayClass, bool) {
	awal, akhir := rentangBulan(bulan)
	events, err := svc.Events.FetchRange(&idKaryawan, awal, akhir)
	degraded := false
	if err != nil {
		log.Printf("Kalender bulanan %s degraded: %v", idKaryawan, err)
		events = nil
		degraded = true
	}
	records := engine.DayRecords(events, svc.Config.WorkHours(), bulan.Location())
	return engine.MarkMonth(records, bulan, now), degraded
}

// HariIni mengembalikan DayRecord karyawan untuk hari ini.
func (svc *DashboardService) HariIni(idKaryawan string, now time.Time) (models.DayRecord, bool) {
	awal := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	akhir := awal.Add(24*time.Hour - time.Second)
	events, err := svc.Events.FetchRange(&idKaryawan, awal, akhir)
	if err != nil {
		log.Printf("Status hari ini %s degraded: %v", idKaryawan, err)
		return engine.ClassifyDay(awal, nil, svc.Config.WorkHours()), true
	}
	return engine.ClassifyDay(awal, events, svc.Config.WorkHours()), false
}

// Riwayat mengembalikan semua event mentah (termasuk yang gagal verifikasi)
// pada satu bulan, untuk tampilan audit/riwayat.
func (svc *DashboardService) Riwayat(idKaryawan string, bulan time.Time) ([]models.AttendanceEvent, error) {
	awal, akhir := rentangBulan(bulan)
	return svc.Events.FetchRange(&idKaryawan, awal, akhir)
}

func rentangBulan(bulan time.Time) (time.Time, time.Time) {
	awal := time.Date(bulan.Year(), bulan.Month(), 1, 0, 0, 0, 0, bulan.Location())
	akhir := awal.AddDate(0, 1, 0).Add(-time.Second)
	return awal, akhir
}
