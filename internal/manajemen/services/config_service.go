package services

import (
	"database/sql"
	"log"
	"strconv"
	"sync"

	"github.com/rakhapw/absensi-backend/config"
	presensi "github.com/rakhapw/absensi-backend/internal/presensi/models"
)

// ConfigService memuat konfigurasi jam kerja sekali per proses lalu
// menyimpannya di memori. Perubahan di database tidak mengklasifikasi ulang
// data yang sudah tampil kecuali proses di-restart (atau Reload dipanggil).
type ConfigService struct {
	DB *sql.DB

	mu     sync.Mutex
	loaded bool
	cached presensi.WorkHoursConfig
}

func NewConfigService(db *sql.DB) *ConfigService {
	return &ConfigService{DB: db}
}

// WorkHours mengembalikan konfigurasi jam kerja. Urutan sumber: tabel
// Pengaturan_Jam_Kerja, lalu env (JAM_MASUK dkk). Kalau dua-duanya kosong,
// konfigurasi dianggap hilang dan classifier memperlakukan semua check-in
// tepat waktu.
func (s *ConfigService) WorkHours() presensi.WorkHoursConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.cached
	}

	s.cached = s.muatJamKerja()
	s.loaded = true
	return s.cached
}

// Reload membuang cache supaya pembacaan berikutnya mengambil ulang dari
// database. Dipanggil admin setelah mengubah jam kerja.
func (s *ConfigService) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
}

func (s *ConfigService) muatJamKerja() presensi.WorkHoursConfig {
	var cfg presensi.WorkHoursConfig
	err := s.DB.QueryRow(
		"SELECT jam_masuk, jam_pulang, toleransi_menit FROM Pengaturan_Jam_Kerja ORDER BY id LIMIT 1",
	).Scan(&cfg.JamMasuk, &cfg.JamPulang, &cfg.ToleransiMenit)
	if err == nil {
		return cfg
	}
	if err != sql.ErrNoRows {
		log.Printf("Gagal memuat jam kerja dari database: %v", err)
	}

	// Fallback ke env.
	env := config.LoadConfig()
	if env.JamMasuk == "" {
		log.Println("Konfigurasi jam kerja tidak ditemukan; semua check-in dianggap tepat waktu.")
		return presensi.WorkHoursConfig{Missing: true}
	}
	toleransi, convErr := strconv.Atoi(env.ToleransiMenit)
	if convErr != nil {
		toleransi = 0
	}
	return presensi.WorkHoursConfig{
		JamMasuk:       env.JamMasuk,
		JamPulang:      env.JamPulang,
		ToleransiMenit: toleransi,
	}
}
