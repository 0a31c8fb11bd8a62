package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rakhapw/absensi-backend/internal/common/middlewares"
	manajemenServices "github.com/rakhapw/absensi-backend/internal/manajemen/services"
	"github.com/rakhapw/absensi-backend/internal/presensi/services"
)

type DashboardController struct {
	Service *services.DashboardService
	Mgmt    *manajemenServices.ManagementService
}

func NewDashboardController(svc *services.DashboardService, mgmt *manajemenServices.ManagementService) *DashboardController {
	return &DashboardController{Service: svc, Mgmt: mgmt}
}

// parseBulan membaca query param bulan (format 2006-01), default bulan
// berjalan.
func parseBulan(c echo.Context, loc *time.Location, now time.Time) (time.Time, error) {
	s := c.QueryParam("bulan")
	if s == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc), nil
	}
	return time.ParseInLocation("2006-01", s, loc)
}

// Ringkasan handles GET /api/presensi/ringkasan?bulan=YYYY-MM
// Kegagalan event store menghasilkan HTTP 200 dengan flag degraded, bukan 500.
func (dc *DashboardController) Ringkasan(c echo.Context) error {
	claims, ok := middlewares.ClaimsFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "missing claims"})
	}

	loc, _ := time.LoadLocation("Asia/Jakarta")
	now := time.Now().In(loc)
	bulan, err := parseBulan(c, loc, now)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid bulan"})
	}

	karyawan, err := dc.Mgmt.GetKaryawan(claims.IDKaryawan)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}

	return c.JSON(http.StatusOK, dc.Service.RingkasanBulanan(*karyawan, bulan, now))
}

// Kalender handles GET /api/presensi/kalender?bulan=YYYY-MM
func (dc *DashboardController) Kalender(c echo.Context) error {
	claims, ok := middlewares.ClaimsFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "missing claims"})
	}

	loc, _ := time.LoadLocation("Asia/Jakarta")
	now := time.Now().In(loc)
	bulan, err := parseBulan(c, loc, now)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid bulan"})
	}

	marks, degraded := dc.Service.KalenderBulanan(claims.IDKaryawan, bulan, now)
	return c.JSON(http.StatusOK, echo.Map{"kalender": marks, "degraded": degraded})
}

// HariIni handles GET /api/presensi/hari-ini
func (dc *DashboardController) HariIni(c echo.Context) error {
	claims, ok := middlewares.ClaimsFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "missing claims"})
	}

	loc, _ := time.LoadLocation("Asia/Jakarta")
	rec, degraded := dc.Service.HariIni(claims.IDKaryawan, time.Now().In(loc))
	return c.JSON(http.StatusOK, echo.Map{"hari_ini": rec, "degraded": degraded})
}

// Riwayat handles GET /api/presensi/riwayat?bulan=YYYY-MM
// Mengembalikan event mentah termasuk percobaan yang gagal verifikasi.
func (dc *DashboardController) Riwayat(c echo.Context) error {
	claims, ok := middlewares.ClaimsFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "missing claims"})
	}

	loc, _ := time.LoadLocation("Asia/Jakarta")
	now := time.Now().In(loc)
	bulan, err := parseBulan(c, loc, now)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid bulan"})
	}

	events, err := dc.Service.Riwayat(claims.IDKaryawan, bulan)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "riwayat tidak tersedia: " + err.Error()})
	}
	return c.JSON(http.StatusOK, events)
}
