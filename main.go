package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/rakhapw/absensi-backend/config"
	"github.com/rakhapw/absensi-backend/internal/routes"
	"github.com/rakhapw/absensi-backend/pkg/storage/mariadb"
	"github.com/rakhapw/absensi-backend/pkg/utils"
	"github.com/rakhapw/absensi-backend/ws"
)

func main() {
	cfg := config.LoadConfig()
	db := mariadb.Connect()

	e := echo.New()
	e.Validator = utils.NewRequestValidator()

	routes.Init(e, db, ws.HubInstance)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Server berjalan pada port %s...", port)
	log.Fatal(e.Start(":" + port))
}
