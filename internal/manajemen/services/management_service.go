package services

import (
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rakhapw/absensi-backend/internal/manajemen/models"
)

type ManagementService struct {
	DB *sql.DB
}

func NewManagementService(db *sql.DB) *ManagementService {
	return &ManagementService{DB: db}
}

const kolomKaryawan = `k.id_karyawan, k.nama, k.username, k.password, k.status, k.role,
		k.gaji_pokok, g.gaji_harian`

const joinGaji = ` FROM Karyawan k
		LEFT JOIN Penugasan_Gaji g ON g.id_karyawan = k.id_karyawan AND g.status = 'aktif'`

// AuthenticateAdmin memverifikasi kredensial dan memastikan role admin.
func (s *ManagementService) AuthenticateAdmin(username, password string) (*models.Karyawan, error) {
	k, err := s.cariByUsername(username)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(k.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}
	if k.Role != models.RoleAdmin {
		return nil, errors.New("user does not have admin privileges")
	}
	return k, nil
}

// AuthenticateKaryawan memverifikasi kredensial karyawan biasa (non-admin).
func (s *ManagementService) AuthenticateKaryawan(username, password string) (*models.Karyawan, error) {
	k, err := s.cariByUsername(username)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(k.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}
	if k.Status != models.StatusAktif {
		return nil, errors.New("akun tidak aktif")
	}
	return k, nil
}

// ActiveNonAdmins mengembalikan roster karyawan aktif non-admin, lengkap
// dengan gaji harian dari penugasan gaji aktif bila ada. Inilah denominator
// untuk inferensi absen.
func (s *ManagementService) ActiveNonAdmins() ([]models.Karyawan, error) {
	q := "SELECT " + kolomKaryawan + joinGaji + `
		WHERE k.status = 'aktif' AND k.role <> 'admin'
		ORDER BY k.nama`
	rows, err := s.DB.Query(q)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil roster karyawan: %v", err)
	}
	defer rows.Close()

	var roster []models.Karyawan
	for rows.Next() {
		k, err := scanKaryawan(rows)
		if err != nil {
			return nil, fmt.Errorf("gagal membaca baris karyawan: %v", err)
		}
		roster = append(roster, k)
	}
	return roster, rows.Err()
}

// GetKaryawan mengambil satu karyawan berdasarkan id.
func (s *ManagementService) GetKaryawan(idKaryawan string) (*models.Karyawan, error) {
	q := "SELECT " + kolomKaryawan + joinGaji + " WHERE k.id_karyawan = ?"
	row := s.DB.QueryRow(q, idKaryawan)

	var k models.Karyawan
	var gajiPokok, gajiHarian sql.NullFloat64
	err := row.Scan(&k.IDKaryawan, &k.Nama, &k.Username, &k.Password, &k.Status, &k.Role,
		&gajiPokok, &gajiHarian)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("karyawan dengan ID %s tidak ditemukan", idKaryawan)
	}
	if err != nil {
		return nil, err
	}
	if gajiPokok.Valid {
		k.GajiPokok = &gajiPokok.Float64
	}
	if gajiHarian.Valid {
		k.GajiHarian = &gajiHarian.Float64
	}
	return &k, nil
}

func (s *ManagementService) cariByUsername(username string) (*models.Karyawan, error) {
	q := "SELECT " + kolomKaryawan + joinGaji + " WHERE k.username = ?"
	row := s.DB.QueryRow(q, username)

	var k models.Karyawan
	var gajiPokok, gajiHarian sql.NullFloat64
	err := row.Scan(&k.IDKaryawan, &k.Nama, &k.Username, &k.Password, &k.Status, &k.Role,
		&gajiPokok, &gajiHarian)
	if err == sql.ErrNoRows {
		return nil, errors.New("invalid credentials")
	}
	if err != nil {
		return nil, err
	}
	if gajiPokok.Valid {
		k.GajiPokok = &gajiPokok.Float64
	}
	if gajiHarian.Valid {
		k.GajiHarian = &gajiHarian.Float64
	}
	return &k, nil
}

func scanKaryawan(rows *sql.Rows) (models.Karyawan, error) {
	var k models.Karyawan
	var gajiPokok, gajiHarian sql.NullFloat64
	err := rows.Scan(&k.IDKaryawan, &k.Nama, &k.Username, &k.Password, &k.Status, &k.Role,
		&gajiPokok, &gajiHarian)
	if err != nil {
		return k, err
	}
	if gajiPokok.Valid {
		k.GajiPokok = &gajiPokok.Float64
	}
	if gajiHarian.Valid {
		k.GajiHarian = &gajiHarian.Float64
	}
	return k, nil
}
