package models

import "time"

// TidakHadir adalah baris absen hasil sintesis untuk karyawan tanpa event
// sama sekali pada satu tanggal. Kunci unik (id_karyawan, tanggal) di skema
// yang menjamin upsert berulang tidak membuat duplikat.
type TidakHadir struct {
	ID         int64     `json:"id"`
	IDKaryawan string    `json:"id_karyawan"`
	Tanggal    time.Time `json:"tanggal"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
