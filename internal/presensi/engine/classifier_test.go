package engine

import (
	"testing"
	"time"

	"github.com/rakhapw/absensi-backend/internal/presensi/models"
)

var wib = time.FixedZone("WIB", 7*3600)

func jam(t *testing.T, tahun int, bulan time.Month, hari, h, m int) time.Time {
	t.Helper()
	return time.Date(tahun, bulan, hari, h, m, 0, 0, wib)
}

func eventAt(id string, jenis models.EventKind, hasil models.EventOutcome, waktu time.Time) models.AttendanceEvent {
	return models.AttendanceEvent{
		ID:         id,
		IDKaryawan: "k-1",
		Waktu:      waktu,
		Jenis:      jenis,
		Hasil:      hasil,
	}
}

func cfgStandar() models.WorkHoursConfig {
	return models.WorkHoursConfig{JamMasuk: "09:00", JamPulang: "17:00", ToleransiMenit: 5}
}

func TestClassifyDayRecomputesLateness(t *testing.T) {
	tanggal := jam(t, 2024, time.March, 5, 0, 0)
	masuk := eventAt("e1", models.KindMasuk, models.OutcomeSukses, jam(t, 2024, time.March, 5, 9, 7))
	// Flag tersimpan sengaja salah; klasifikasi harus menghitung ulang.
	masuk.Terlambat = false

	rec := ClassifyDay(tanggal, []models.AttendanceEvent{masuk}, cfgStandar())

	if rec.State != models.StateCheckedIn {
		t.Fatalf("expected state checked_in, got %v", rec.State)
	}
	if !rec.Terlambat {
		t.Fatal("expected terlambat true for 09:07 with batas 09:05")
	}
	if rec.MenitTerlambat != 2 {
		t.Fatalf("expected 2 menit terlambat, got %d", rec.MenitTerlambat)
	}
}

func TestClassifyDayCompleted(t *testing.T) {
	tanggal := jam(t, 2024, time.March, 5, 0, 0)
	events := []models.AttendanceEvent{
		eventAt("e1", models.KindMasuk, models.OutcomeSukses, jam(t, 2024, time.March, 5, 8, 50)),
		eventAt("e2", models.KindPulang, models.OutcomeSukses, jam(t, 2024, time.March, 5, 17, 30)),
	}

	rec := ClassifyDay(tanggal, events, cfgStandar())

	if rec.State != models.StateCompleted {
		t.Fatalf("expected state completed, got %v", rec.State)
	}
	if rec.Terlambat {
		t.Fatal("check-in 08:50 should not be terlambat")
	}
}

func TestClassifyDayDuplicateSuccessLatestWins(t *testing.T) {
	tanggal := jam(t, 2024, time.March, 5, 0, 0)
	events := []models.AttendanceEvent{
		eventAt("awal", models.KindMasuk, models.OutcomeSukses, jam(t, 2024, time.March, 5, 8, 0)),
		eventAt("akhir", models.KindMasuk, models.OutcomeSukses, jam(t, 2024, time.March, 5, 9, 30)),
	}

	rec := ClassifyDay(tanggal, events, cfgStandar())

	if rec.CheckIn == nil || rec.CheckIn.ID != "akhir" {
		t.Fatalf("expected latest check-in to win, got %+v", rec.CheckIn)
	}
	if !rec.Terlambat {
		t.Fatal("lateness must follow the winning event")
	}
}

func TestClassifyDayIgnoresFailedOutcomes(t *testing.T) {
	tanggal := jam(t, 2024, time.March, 5, 0, 0)
	events := []models.AttendanceEvent{
		eventAt("e1", models.KindMasuk, models.OutcomeWajahTidakValid, jam(t, 2024, time.March, 5, 8, 0)),
		eventAt("e2", models.KindMasuk, models.OutcomeLokasiTidakValid, jam(t, 2024, time.March, 5, 8, 5)),
	}

	rec := ClassifyDay(tanggal, events, cfgStandar())

	if rec.State != models.StateEmpty {
		t.Fatalf("failed attempts must not count as present, got state %v", rec.State)
	}
	if rec.CheckIn != nil {
		t.Fatal("CheckIn must stay nil for failed-only days")
	}
}

func TestClassifyDayMissingConfigAllOnTime(t *testing.T) {
	tanggal := jam(t, 2024, time.March, 5, 0, 0)
	masuk := eventAt("e1", models.KindMasuk, models.OutcomeSukses, jam(t, 2024, time.March, 5, 13, 0))

	rec := ClassifyDay(tanggal, []models.AttendanceEvent{masuk}, models.WorkHoursConfig{Missing: true})

	if rec.Terlambat {
		t.Fatal("without a baseline every check-in counts as on time")
	}
	if rec.MenitTerlambat != 0 {
		t.Fatalf("expected 0 menit terlambat, got %d", rec.MenitTerlambat)
	}
}

func TestClassifyDayCheckoutOnlyAnomaly(t *testing.T) {
	tanggal := jam(t, 2024, time.March, 5, 0, 0)
	pulang := eventAt("e1", models.KindPulang, models.OutcomeSukses, jam(t, 2024, time.March, 5, 17, 0))

	rec := ClassifyDay(tanggal, []models.AttendanceEvent{pulang}, cfgStandar())

	if rec.State != models.StateEmpty {
		t.Fatalf("checkout without checkin keeps state empty, got %v", rec.State)
	}
	if rec.CheckOut == nil {
		t.Fatal("the anomalous check-out must still be carried for the calendar")
	}
}

func TestClassifyDayNoEvents(t *testing.T) {
	rec := ClassifyDay(jam(t, 2024, time.March, 5, 0, 0), nil, cfgStandar())

	if rec.State != models.StateEmpty {
		t.Fatalf("expected state empty, got %v", rec.State)
	}
	if rec.CheckIn != nil || rec.CheckOut != nil {
		t.Fatal("empty day must have no events attached")
	}
}

func TestDayRecordsGroupsByDate(t *testing.T) {
	events := []models.AttendanceEvent{
		eventAt("e1", models.KindMasuk, models.OutcomeSukses, jam(t, 2024, time.March, 5, 8, 50)),
		eventAt("e2", models.KindPulang, models.OutcomeSukses, jam(t, 2024, time.March, 5, 17, 30)),
		eventAt("e3", models.KindMasuk, models.OutcomeSukses, jam(t, 2024, time.March, 6, 9, 0)),
	}

	records := DayRecords(events, cfgStandar(), wib)

	if len(records) != 2 {
		t.Fatalf("expected 2 days, got %d", len(records))
	}
	if records["2024-03-05"].State != models.StateCompleted {
		t.Fatalf("expected 2024-03-05 completed, got %v", records["2024-03-05"].State)
	}
	if records["2024-03-06"].State != models.StateCheckedIn {
		t.Fatalf("expected 2024-03-06 checked_in, got %v", records["2024-03-06"].State)
	}
}
