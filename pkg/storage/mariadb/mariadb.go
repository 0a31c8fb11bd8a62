package mariadb

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "github.com/go-sql-driver/mysql"

	"github.com/rakhapw/absensi-backend/config"
)

var (
	db   *sql.DB
	once sync.Once
)

// Connect membuka koneksi ke database absensi (MariaDB).
// Kredensial diambil dari .env melalui config.LoadConfig.
func Connect() *sql.DB {
	once.Do(func() {
		cfg := config.LoadConfig()
		// parseTime wajib aktif supaya kolom waktu langsung ter-scan ke time.Time
		// dalam zona Asia/Jakarta.
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=Asia%%2FJakarta",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

		var err error
		db, err = sql.Open("mysql", dsn)
		if err != nil {
			log.Fatalf("Gagal membuka koneksi ke database: %v", err)
		}

		if err = db.Ping(); err != nil {
			log.Fatalf("Gagal melakukan ping ke database: %v", err)
		}

		log.Println("Berhasil terhubung ke MariaDB.")
	})

	return db
}

// GetDB mengembalikan instance koneksi database yang sudah terbentuk.
func GetDB() *sql.DB {
	return db
}
