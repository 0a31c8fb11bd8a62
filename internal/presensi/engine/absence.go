package engine

import (
	manajemen "github.com/rakhapw/absensi-backend/internal/manajemen/models"
)

// InferAbsent mengembalikan karyawan aktif non-admin yang tidak punya event
// sama sekali pada tanggal yang presentIDs-nya diberikan. presentIDs memuat
// semua karyawan dengan minimal satu event apa pun hari itu — percobaan yang
// gagal verifikasi wajah/lokasi tetap dihitung "sudah mencoba" dan tidak
// dianggap absen diam-diam, supaya HR bisa membedakan "tidak pernah datang"
// dari "datang tapi gagal".
//
// Fungsi ini total: roster kosong menghasilkan slice kosong, tidak pernah
// error. Urutan hasil mengikuti urutan roster.
func InferAbsent(roster []manajemen.Karyawan, presentIDs map[string]struct{}) []manajemen.Karyawan {
	absen := make([]manajemen.Karyawan, 0)
	for _, k := range roster {
		if !k.AktifNonAdmin() {
			continue
		}
		if _, hadir := presentIDs[k.IDKaryawan]; hadir {
			continue
		}
		absen = append(absen, k)
	}
	return absen
}
