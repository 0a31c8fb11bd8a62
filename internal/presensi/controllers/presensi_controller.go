package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rakhapw/absensi-backend/internal/common/middlewares"
	manajemenServices "github.com/rakhapw/absensi-backend/internal/manajemen/services"
	"github.com/rakhapw/absensi-backend/internal/presensi/models"
	"github.com/rakhapw/absensi-backend/internal/presensi/services"
	"github.com/rakhapw/absensi-backend/pkg/utils"
	"github.com/rakhapw/absensi-backend/ws"
)

type PresensiController struct {
	Service *services.PresensiService
	Mgmt    *manajemenServices.ManagementService
	Hub     *ws.Hub
}

func NewPresensiController(svc *services.PresensiService, mgmt *manajemenServices.ManagementService, hub *ws.Hub) *PresensiController {
	return &PresensiController{Service: svc, Mgmt: mgmt, Hub: hub}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// checkRequest membawa hasil verifikasi wajah/lokasi dari layanan hulu.
type checkRequest struct {
	Hasil             string   `json:"hasil" validate:"required,oneof=sukses wajah_tidak_valid lokasi_tidak_valid"`
	Latitude          *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude         *float64 `json:"longitude" validate:"omitempty,longitude"`
	GajiHarianDidapat float64  `json:"gaji_harian_didapat" validate:"omitempty,gte=0"`
}

// Login handles POST /api/presensi/login
func (pc *PresensiController) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	karyawan, err := pc.Mgmt.AuthenticateKaryawan(req.Username, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": err.Error()})
	}

	token, err := utils.GenerateJWTToken(karyawan.IDKaryawan, karyawan.Nama, karyawan.Role,
		karyawan.Username, time.Now().Add(12*time.Hour))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to generate token: " + err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token, "karyawan": karyawan})
}

// Masuk handles POST /api/presensi/masuk
func (pc *PresensiController) Masuk(c echo.Context) error {
	return pc.catat(c, models.KindMasuk)
}

// Pulang handles POST /api/presensi/pulang
func (pc *PresensiController) Pulang(c echo.Context) error {
	return pc.catat(c, models.KindPulang)
}

func (pc *PresensiController) catat(c echo.Context, jenis models.EventKind) error {
	claims, ok := middlewares.ClaimsFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "missing claims"})
	}

	var req checkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	loc, _ := time.LoadLocation("Asia/Jakarta")
	now := time.Now().In(loc)
	hasil := models.EventOutcome(req.Hasil)

	var ev models.AttendanceEvent
	var err error
	if jenis == models.KindMasuk {
		ev, err = pc.Service.CheckMasuk(claims.IDKaryawan, hasil, req.Latitude, req.Longitude, req.GajiHarianDidapat, now)
	} else {
		ev, err = pc.Service.CheckPulang(claims.IDKaryawan, hasil, req.Latitude, req.Longitude, now)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to record: " + err.Error()})
	}

	if pc.Hub != nil {
		pc.Hub.BroadcastEvent(ev)
	}

	return c.JSON(http.StatusCreated, ev)
}
