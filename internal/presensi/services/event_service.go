package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rakhapw/absensi-backend/internal/presensi/models"
)

// ErrEventStoreUnavailable menandai kegagalan koneksi/kueri ke penyimpanan
// event, dibedakan dari hasil kosong. Aggregator di atasnya menukar error ini
// dengan ringkasan degraded, bukan meneruskannya ke UI.
var ErrEventStoreUnavailable = errors.New("penyimpanan event presensi tidak dapat diakses")

type EventService struct {
	DB *sql.DB
}

func NewEventService(db *sql.DB) *EventService {
	return &EventService{DB: db}
}

const kolomEvent = `id, id_karyawan, waktu, jenis, hasil, terlambat, menit_terlambat,
		jam_kerja, jam_lembur, gaji_harian_didapat, latitude, longitude`

// FetchRange mengambil event pada rentang [awal, akhir] terurut waktu.
// idKaryawan nil berarti semua karyawan (tampilan admin). Hasil kosong bukan
// error; kegagalan kueri dibungkus ErrEventStoreUnavailable.
func (s *EventService) FetchRange(idKaryawan *string, awal, akhir time.Time) ([]models.AttendanceEvent, error) {
	q := "SELECT " + kolomEvent + " FROM Absensi_Event WHERE waktu BETWEEN ? AND ?"
	params := []interface{}{awal, akhir}
	if idKaryawan != nil {
		q += " AND id_karyawan = ?"
		params = append(params, *idKaryawan)
	}
	q += " ORDER BY waktu"

	rows, err := s.DB.Query(q, params...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEventStoreUnavailable, err)
	}
	defer rows.Close()

	var events []models.AttendanceEvent
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEventStoreUnavailable, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEventStoreUnavailable, err)
	}
	return events, nil
}

// PresentIDs mengembalikan id karyawan yang punya minimal satu event (jenis
// dan hasil apa pun) pada tanggal tersebut. Percobaan gagal pun dihitung
// sudah mencoba, jadi tidak masuk inferensi absen.
func (s *EventService) PresentIDs(tanggal time.Time) (map[string]struct{}, error) {
	awal := time.Date(tanggal.Year(), tanggal.Month(), tanggal.Day(), 0, 0, 0, 0, tanggal.Location())
	akhir := awal.Add(24*time.Hour - time.Second)

	rows, err := s.DB.Query(
		"SELECT DISTINCT id_karyawan FROM Absensi_Event WHERE waktu BETWEEN ? AND ?",
		awal, akhir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEventStoreUnavailable, err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEventStoreUnavailable, err)
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEventStoreUnavailable, err)
	}
	return ids, nil
}

// RecordEvent menyimpan satu aksi check. ID di-generate di sini (UUID) kalau
// belum diisi klien.
func (s *EventService) RecordEvent(ev models.AttendanceEvent) (models.AttendanceEvent, error) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	insert := `
		INSERT INTO Absensi_Event
			(id, id_karyawan, waktu, jenis, hasil, terlambat, menit_terlambat,
			 jam_kerja, jam_lembur, gaji_harian_didapat, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.DB.Exec(insert,
		ev.ID, ev.IDKaryawan, ev.Waktu, ev.Jenis, ev.Hasil, ev.Terlambat, ev.MenitTerlambat,
		ev.JamKerja, ev.JamLembur, ev.GajiHarianDidapat, ev.Latitude, ev.Longitude)
	if err != nil {
		return models.AttendanceEvent{}, fmt.Errorf("gagal menyimpan event presensi: %v", err)
	}
	return ev, nil
}

// DeleteRange menghapus semua event pada rentang tanggal. Destruktif dan
// tidak bisa dibatalkan; hanya dipanggil dari aksi admin eksplisit.
func (s *EventService) DeleteRange(awal, akhir time.Time) (int64, error) {
	result, err := s.DB.Exec("DELETE FROM Absensi_Event WHERE waktu BETWEEN ? AND ?", awal, akhir)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEventStoreUnavailable, err)
	}
	return result.RowsAffected()
}

func scanEvent(rows *sql.Rows) (models.AttendanceEvent, error) {
	var ev models.AttendanceEvent
	var terlambat sql.NullBool
	var menit sql.NullInt64
	var jamKerja, jamLembur, gaji sql.NullFloat64
	var lat, lng sql.NullFloat64

	err := rows.Scan(&ev.ID, &ev.IDKaryawan, &ev.Waktu, &ev.Jenis, &ev.Hasil,
		&terlambat, &menit, &jamKerja, &jamLembur, &gaji, &lat, &lng)
	if err != nil {
		return ev, err
	}
	ev.Terlambat = terlambat.Valid && terlambat.Bool
	ev.MenitTerlambat = int(menit.Int64)
	ev.JamKerja = jamKerja.Float64
	ev.JamLembur = jamLembur.Float64
	ev.GajiHarianDidapat = gaji.Float64
	if lat.Valid {
		ev.Latitude = &lat.Float64
	}
	if lng.Valid {
		ev.Longitude = &lng.Float64
	}
	return ev, nil
}
