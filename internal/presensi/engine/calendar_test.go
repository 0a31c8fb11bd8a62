package engine

import (
	"reflect"
	"testing"
	"time"

	"github.com/rakhapw/absensi-backend/internal/presensi/models"
)

func TestMarkMonthClasses(t *testing.T) {
	bulan := jam(t, 2024, time.March, 1, 0, 0)
	today := jam(t, 2024, time.March, 15, 10, 0)
	cfg := cfgStandar()

	events := []models.AttendanceEvent{
		// 5 Maret lengkap.
		eventAt("e1", models.KindMasuk, models.OutcomeSukses, jam(t, 2024, time.March, 5, 8, 50)),
		eventAt("e2", models.KindPulang, models.OutcomeSukses, jam(t, 2024, time.March, 5, 17, 30)),
		// 6 Maret hanya masuk.
		eventAt("e3", models.KindMasuk, models.OutcomeSukses, jam(t, 2024, time.March, 6, 9, 0)),
		// 7 Maret hanya pulang (anomali).
		eventAt("e4", models.KindPulang, models.OutcomeSukses, jam(t, 2024, time.March, 7, 17, 0)),
	}

	marks := MarkMonth(DayRecords(events, cfg, wib), bulan, today)

	tests := []struct {
		tanggal string
		want    models.DayClass
	}{
		{"2024-03-02", models.ClassWeekend}, // Sabtu
		{"2024-03-05", models.ClassComplete},
		{"2024-03-06", models.ClassCheckinOnly},
		{"2024-03-07", models.ClassCheckoutOnly},
		{"2024-03-04", models.ClassMissed},  // sebelum today, tanpa data
		{"2024-03-15", models.ClassNeutral}, // today
		{"2024-03-20", models.ClassNeutral}, // masa depan
	}
	for _, tc := range tests {
		if got := marks[tc.tanggal]; got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.tanggal, tc.want, got)
		}
	}

	if len(marks) != 31 {
		t.Fatalf("expected a class for all 31 days of March, got %d", len(marks))
	}
}

func TestMarkMonthWeekendWinsOverData(t *testing.T) {
	bulan := jam(t, 2024, time.March, 1, 0, 0)
	today := jam(t, 2024, time.March, 15, 10, 0)

	// Check-in lengkap di Sabtu 9 Maret: weekend tetap menang.
	events := []models.AttendanceEvent{
		eventAt("e1", models.KindMasuk, models.OutcomeSukses, jam(t, 2024, time.March, 9, 9, 0)),
		eventAt("e2", models.KindPulang, models.OutcomeSukses, jam(t, 2024, time.March, 9, 17, 0)),
	}

	marks := MarkMonth(DayRecords(events, cfgStandar(), wib), bulan, today)

	if marks["2024-03-09"] != models.ClassWeekend {
		t.Fatalf("weekend has highest precedence, got %v", marks["2024-03-09"])
	}
}

func TestMarkMonthIdempotent(t *testing.T) {
	bulan := jam(t, 2024, time.March, 1, 0, 0)
	today := jam(t, 2024, time.March, 15, 10, 0)
	events := []models.AttendanceEvent{
		eventAt("e1", models.KindMasuk, models.OutcomeSukses, jam(t, 2024, time.March, 5, 8, 50)),
	}
	records := DayRecords(events, cfgStandar(), wib)

	pertama := MarkMonth(records, bulan, today)
	kedua := MarkMonth(records, bulan, today)

	if !reflect.DeepEqual(pertama, kedua) {
		t.Fatal("MarkMonth must be idempotent for identical input")
	}
}

func TestMarkMonthEmptyInput(t *testing.T) {
	bulan := jam(t, 2024, time.March, 1, 0, 0)
	today := jam(t, 2024, time.March, 1, 0, 0)

	marks := MarkMonth(nil, bulan, today)

	// Tanpa event sama sekali: hanya weekend/missed/neutral yang muncul.
	for tanggal, kelas := range marks {
		switch kelas {
		case models.ClassWeekend, models.ClassMissed, models.ClassNeutral:
		default:
			t.Fatalf("%s: unexpected class %v for empty month", tanggal, kelas)
		}
	}
}
