package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv     string
	Port       string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	JWTSecret  string

	// Default jam kerja, dipakai kalau tabel Pengaturan_Jam_Kerja kosong.
	JamMasuk       string
	JamPulang      string
	ToleransiMenit string
}

var (
	cfg  *Config
	once sync.Once
)

func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found. Relying on environment variables.")
		}
		cfg = &Config{
			AppEnv:         os.Getenv("APP_ENV"),
			Port:           os.Getenv("PORT"),
			DBUser:         os.Getenv("DB_USER"),
			DBPassword:     os.Getenv("DB_PASSWORD"),
			DBHost:         os.Getenv("DB_HOST"),
			DBPort:         os.Getenv("DB_PORT"),
			DBName:         os.Getenv("DB_NAME"),
			JWTSecret:      os.Getenv("JWT_SECRET_KEY"),
			JamMasuk:       os.Getenv("JAM_MASUK"),
			JamPulang:      os.Getenv("JAM_PULANG"),
			ToleransiMenit: os.Getenv("TOLERANSI_MENIT"),
		}
	})
	return cfg
}
