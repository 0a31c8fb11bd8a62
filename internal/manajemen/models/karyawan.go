package models

// Role dan status yang dikenal aplikasi. Role lain dibiarkan lewat apa
// adanya; hanya "admin" yang dikecualikan dari ekspektasi presensi.
const (
	RoleAdmin    = "admin"
	RoleKaryawan = "karyawan"

	StatusAktif = "aktif"
)

// Karyawan adalah satu baris roster.
type Karyawan struct {
	IDKaryawan string   `json:"id_karyawan"`
	Nama       string   `json:"nama"`
	Username   string   `json:"username"`
	Password   string   `json:"-"`
	Status     string   `json:"status"`
	Role       string   `json:"role"`
	GajiPokok  *float64 `json:"gaji_pokok,omitempty"`
	GajiHarian *float64 `json:"gaji_harian,omitempty"` // dari penugasan gaji aktif, bila ada
}

// AktifNonAdmin melaporkan apakah karyawan masuk hitungan ekspektasi hadir.
func (k Karyawan) AktifNonAdmin() bool {
	return k.Status == StatusAktif && k.Role != RoleAdmin
}
