package engine

import (
	"fmt"
	"testing"

	manajemen "github.com/rakhapw/absensi-backend/internal/manajemen/models"
)

func rosterAktif(n int) []manajemen.Karyawan {
	roster := make([]manajemen.Karyawan, 0, n)
	for i := 1; i <= n; i++ {
		roster = append(roster, manajemen.Karyawan{
			IDKaryawan: fmt.Sprintf("k-%d", i),
			Status:     manajemen.StatusAktif,
			Role:       manajemen.RoleKaryawan,
		})
	}
	return roster
}

func TestInferAbsent(t *testing.T) {
	roster := rosterAktif(10)
	hadir := map[string]struct{}{}
	for i := 1; i <= 7; i++ {
		hadir[fmt.Sprintf("k-%d", i)] = struct{}{}
	}

	absen := InferAbsent(roster, hadir)

	if len(absen) != 3 {
		t.Fatalf("expected 3 absen, got %d", len(absen))
	}
	for _, k := range absen {
		if _, ada := hadir[k.IDKaryawan]; ada {
			t.Fatalf("%s is present and must not be reported absent", k.IDKaryawan)
		}
	}
	// Hasil + hadir harus menutup seluruh roster aktif non-admin.
	if len(absen)+len(hadir) != len(roster) {
		t.Fatalf("absen (%d) + hadir (%d) must cover the roster (%d)",
			len(absen), len(hadir), len(roster))
	}
}

func TestInferAbsentSkipsAdminAndNonAktif(t *testing.T) {
	roster := []manajemen.Karyawan{
		{IDKaryawan: "admin-1", Status: manajemen.StatusAktif, Role: manajemen.RoleAdmin},
		{IDKaryawan: "resign-1", Status: "nonaktif", Role: manajemen.RoleKaryawan},
		{IDKaryawan: "k-1", Status: manajemen.StatusAktif, Role: manajemen.RoleKaryawan},
	}

	absen := InferAbsent(roster, map[string]struct{}{})

	if len(absen) != 1 || absen[0].IDKaryawan != "k-1" {
		t.Fatalf("only active non-admin staff count as absent, got %+v", absen)
	}
}

func TestInferAbsentEmptyRoster(t *testing.T) {
	absen := InferAbsent(nil, map[string]struct{}{"k-1": {}})

	if len(absen) != 0 {
		t.Fatalf("empty roster must yield empty result, got %d", len(absen))
	}
}

func TestInferAbsentAllPresent(t *testing.T) {
	roster := rosterAktif(3)
	hadir := map[string]struct{}{"k-1": {}, "k-2": {}, "k-3": {}}

	if absen := InferAbsent(roster, hadir); len(absen) != 0 {
		t.Fatalf("expected no absen, got %d", len(absen))
	}
}
