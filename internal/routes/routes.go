package routes

import (
	"database/sql"

	"github.com/labstack/echo/v4"

	"github.com/rakhapw/absensi-backend/internal/common/middlewares"
	manajemenControllers "github.com/rakhapw/absensi-backend/internal/manajemen/controllers"
	manajemenModels "github.com/rakhapw/absensi-backend/internal/manajemen/models"
	manajemenServices "github.com/rakhapw/absensi-backend/internal/manajemen/services"
	presensiControllers "github.com/rakhapw/absensi-backend/internal/presensi/controllers"
	presensiServices "github.com/rakhapw/absensi-backend/internal/presensi/services"
	"github.com/rakhapw/absensi-backend/ws"
)

// Init menginisialisasi semua routes menggunakan Echo framework
func Init(e *echo.Echo, db *sql.DB, hub *ws.Hub) {
	// Inisialisasi service
	eventService := presensiServices.NewEventService(db)
	configService := manajemenServices.NewConfigService(db)
	managementService := manajemenServices.NewManagementService(db)
	presensiService := presensiServices.NewPresensiService(eventService, configService)
	dashboardService := presensiServices.NewDashboardService(eventService, configService)
	absenceService := manajemenServices.NewAbsenceService(db, eventService, managementService)

	// Inisialisasi controller dengan service yang sesuai
	presensiController := presensiControllers.NewPresensiController(presensiService, managementService, hub)
	dashboardController := presensiControllers.NewDashboardController(dashboardService, managementService)
	managementController := manajemenControllers.NewManagementController(managementService, configService)
	absensiController := manajemenControllers.NewAbsensiController(absenceService, eventService, dashboardService, managementService)

	// Grup API utama
	api := e.Group("/api")

	// **Grup Presensi (karyawan)**
	presensi := api.Group("/presensi")
	presensi.POST("/login", presensiController.Login) // Tidak pakai JWT
	presensi.POST("/masuk", presensiController.Masuk, middlewares.JWTMiddleware())
	presensi.POST("/pulang", presensiController.Pulang, middlewares.JWTMiddleware())
	presensi.GET("/hari-ini", dashboardController.HariIni, middlewares.JWTMiddleware())
	presensi.GET("/ringkasan", dashboardController.Ringkasan, middlewares.JWTMiddleware())
	presensi.GET("/kalender", dashboardController.Kalender, middlewares.JWTMiddleware())
	presensi.GET("/riwayat", dashboardController.Riwayat, middlewares.JWTMiddleware())

	// **Grup Management (admin)**
	management := api.Group("/management")
	management.POST("/login", managementController.Login) // Tidak pakai JWT
	adminOnly := []echo.MiddlewareFunc{middlewares.JWTMiddleware(), middlewares.RequireRole(manajemenModels.RoleAdmin)}
	management.GET("/absensi/tidak-hadir", absensiController.TidakHadir, adminOnly...)
	management.GET("/absensi/tersimpan", absensiController.Tersimpan, adminOnly...)
	management.GET("/absensi/laporan", absensiController.Laporan, adminOnly...)
	management.DELETE("/absensi", absensiController.HapusRentang, adminOnly...)
	management.POST("/jam-kerja/reload", managementController.ReloadJamKerja, adminOnly...)

	// Feed presensi langsung untuk dashboard admin
	e.GET("/ws/presensi", ws.ServeWS(hub))
}
