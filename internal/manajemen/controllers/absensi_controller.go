package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rakhapw/absensi-backend/internal/manajemen/services"
	presensiServices "github.com/rakhapw/absensi-backend/internal/presensi/services"
)

type AbsensiController struct {
	Absence   *services.AbsenceService
	Events    *presensiServices.EventService
	Dashboard *presensiServices.DashboardService
	Mgmt      *services.ManagementService
}

func NewAbsensiController(absence *services.AbsenceService, events *presensiServices.EventService,
	dashboard *presensiServices.DashboardService, mgmt *services.ManagementService) *AbsensiController {
	return &AbsensiController{Absence: absence, Events: events, Dashboard: dashboard, Mgmt: mgmt}
}

func parseTanggal(c echo.Context, param string, loc *time.Location) (time.Time, error) {
	s := c.QueryParam(param)
	if s == "" {
		now := time.Now().In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
	}
	return time.ParseInLocation("2006-01-02", s, loc)
}

// TidakHadir handles GET /api/management/absensi/tidak-hadir?tanggal=YYYY-MM-DD&simpan=true
// simpan=true menjalankan upsert baris absen yang idempotent untuk tanggal itu.
func (ac *AbsensiController) TidakHadir(c echo.Context) error {
	loc, _ := time.LoadLocation("Asia/Jakarta")
	tanggal, err := parseTanggal(c, "tanggal", loc)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid tanggal"})
	}

	absen, err := ac.Absence.TidakHadir(tanggal)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "data tidak tersedia: " + err.Error()})
	}

	if c.QueryParam("simpan") == "true" {
		if _, err := ac.Absence.SyncAbsences(tanggal); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "gagal menyimpan absen: " + err.Error()})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"tanggal":     tanggal.Format("2006-01-02"),
		"tidak_hadir": absen,
	})
}

// Tersimpan handles GET /api/management/absensi/tersimpan?tanggal=YYYY-MM-DD
// Baris absen hasil sintesis yang sudah dipersist.
func (ac *AbsensiController) Tersimpan(c echo.Context) error {
	loc, _ := time.LoadLocation("Asia/Jakarta")
	tanggal, err := parseTanggal(c, "tanggal", loc)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid tanggal"})
	}

	baris, err := ac.Absence.Tersimpan(tanggal)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, baris)
}

// Laporan handles GET /api/management/absensi/laporan?id_karyawan=&bulan=YYYY-MM
// Rekap bulanan satu karyawan untuk tampilan admin.
func (ac *AbsensiController) Laporan(c echo.Context) error {
	idKaryawan := c.QueryParam("id_karyawan")
	if idKaryawan == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "id_karyawan is required"})
	}

	loc, _ := time.LoadLocation("Asia/Jakarta")
	now := time.Now().In(loc)
	bulan := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	if s := c.QueryParam("bulan"); s != "" {
		var err error
		bulan, err = time.ParseInLocation("2006-01", s, loc)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid bulan"})
		}
	}

	karyawan, err := ac.Mgmt.GetKaryawan(idKaryawan)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": err.Error()})
	}

	return c.JSON(http.StatusOK, ac.Dashboard.RingkasanBulanan(*karyawan, bulan, now))
}

// HapusRentang handles DELETE /api/management/absensi?awal=YYYY-MM-DD&akhir=YYYY-MM-DD
// Destruktif; konfirmasi terjadi di UI, endpoint ini mengeksekusi saja.
func (ac *AbsensiController) HapusRentang(c echo.Context) error {
	loc, _ := time.LoadLocation("Asia/Jakarta")
	awal, err := parseTanggal(c, "awal", loc)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid awal"})
	}
	akhir, err := parseTanggal(c, "akhir", loc)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid akhir"})
	}
	// Rentang inklusif sampai akhir hari.
	akhir = akhir.Add(24*time.Hour - time.Second)

	terhapus, err := ac.Events.DeleteRange(awal, akhir)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "gagal menghapus: " + err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"terhapus": terhapus})
}
