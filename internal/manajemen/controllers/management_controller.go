package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rakhapw/absensi-backend/internal/manajemen/services"
	"github.com/rakhapw/absensi-backend/pkg/utils"
)

type ManagementController struct {
	Service *services.ManagementService
	Config  *services.ConfigService
}

func NewManagementController(svc *services.ManagementService, cfg *services.ConfigService) *ManagementController {
	return &ManagementController{Service: svc, Config: cfg}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/management/login
func (mc *ManagementController) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	admin, err := mc.Service.AuthenticateAdmin(req.Username, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": err.Error()})
	}

	token, err := utils.GenerateJWTToken(admin.IDKaryawan, admin.Nama, admin.Role,
		admin.Username, time.Now().Add(12*time.Hour))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to generate token: " + err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token, "admin": admin})
}

// ReloadJamKerja handles POST /api/management/jam-kerja/reload
// Membuang cache konfigurasi supaya perubahan jam kerja terbaca tanpa
// restart proses.
func (mc *ManagementController) ReloadJamKerja(c echo.Context) error {
	mc.Config.Reload()
	return c.JSON(http.StatusOK, echo.Map{"jam_kerja": mc.Config.WorkHours()})
}
