package services

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/rakhapw/absensi-backend/internal/manajemen/models"
	"github.com/rakhapw/absensi-backend/internal/presensi/engine"
	presensiServices "github.com/rakhapw/absensi-backend/internal/presensi/services"
)

// AbsenceService menggabungkan roster dan event store untuk tampilan admin
// "siapa yang tidak hadir", plus sintesis baris absen yang idempotent.
type AbsenceService struct {
	DB     *sql.DB
	Events *presensiServices.EventService
	Mgmt   *ManagementService
}

func NewAbsenceService(db *sql.DB, events *presensiServices.EventService, mgmt *ManagementService) *AbsenceService {
	return &AbsenceService{DB: db, Events: events, Mgmt: mgmt}
}

// TidakHadir mengembalikan karyawan aktif non-admin tanpa event apa pun pada
// tanggal tersebut.
func (s *AbsenceService) TidakHadir(tanggal time.Time) ([]models.Karyawan, error) {
	roster, err := s.Mgmt.ActiveNonAdmins()
	if err != nil {
		return nil, err
	}
	hadir, err := s.Events.PresentIDs(tanggal)
	if err != nil {
		return nil, err
	}
	return engine.InferAbsent(roster, hadir), nil
}

// SyncAbsences menyimpan baris absen untuk tanggal tersebut. Upsert dengan
// kunci unik (id_karyawan, tanggal): dijalankan ulang atau bersamaan untuk
// tanggal yang sama tidak menghasilkan duplikat.
func (s *AbsenceService) SyncAbsences(tanggal time.Time) (int, error) {
	absen, err := s.TidakHadir(tanggal)
	if err != nil {
		return 0, err
	}

	upsert := `
		INSERT INTO Absensi_Tidak_Hadir (id_karyawan, tanggal)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE updated_at = CURRENT_TIMESTAMP
	`
	hari := tanggal.Format("2006-01-02")
	for _, k := range absen {
		if _, err := s.DB.Exec(upsert, k.IDKaryawan, hari); err != nil {
			return 0, fmt.Errorf("gagal menyimpan baris absen %s/%s: %v", k.IDKaryawan, hari, err)
		}
	}
	log.Printf("Sinkronisasi absen %s: %d karyawan", hari, len(absen))
	return len(absen), nil
}

// Tersimpan membaca kembali baris absen hasil sintesis untuk satu tanggal.
func (s *AbsenceService) Tersimpan(tanggal time.Time) ([]models.TidakHadir, error) {
	rows, err := s.DB.Query(
		"SELECT id, id_karyawan, tanggal, created_at, updated_at FROM Absensi_Tidak_Hadir WHERE tanggal = ?",
		tanggal.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("gagal membaca baris absen: %v", err)
	}
	defer rows.Close()

	var hasil []models.TidakHadir
	for rows.Next() {
		var th models.TidakHadir
		if err := rows.Scan(&th.ID, &th.IDKaryawan, &th.Tanggal, &th.CreatedAt, &th.UpdatedAt); err != nil {
			return nil, fmt.Errorf("gagal membaca baris absen: %v", err)
		}
		hasil = append(hasil, th)
	}
	return hasil, rows.Err()
}
