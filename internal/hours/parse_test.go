package hours

import (
	"testing"
)

func TestParseWeekRangeWithSaturdayAndClosedSunday(t *testing.T) {
	schedule := Parse("Mo-Fr 09:00-18:00; Sa 10:00-14:00; Su off")
	if schedule == nil {
		t.Fatal("expected a schedule, got nil")
	}
	if schedule.Special != "" {
		t.Fatalf("expected no special marker, got %q", schedule.Special)
	}
	if len(schedule.Entries) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(schedule.Entries))
	}

	weekdays := []string{Monday, Tuesday, Wednesday, Thursday, Friday}
	for i, day := range weekdays {
		entry := schedule.Entries[i]
		if entry.Day != day {
			t.Errorf("entry %d: expected day %q, got %q", i, day, entry.Day)
		}
		if entry.Opens != "09:00" || entry.Closes != "18:00" {
			t.Errorf("entry %d: expected 09:00-18:00, got %s-%s", i, entry.Opens, entry.Closes)
		}
	}

	saturday := schedule.Entries[5]
	if saturday.Day != Saturday || saturday.Opens != "10:00" || saturday.Closes != "14:00" {
		t.Errorf("expected Saturday 10:00-14:00, got %s %s-%s", saturday.Day, saturday.Opens, saturday.Closes)
	}

	for _, entry := range schedule.Entries {
		if entry.Day == Sunday {
			t.Error("Sunday should have no entry")
		}
	}
}

func TestParseAlwaysOpen(t *testing.T) {
	schedule := Parse("24/7")
	if schedule == nil {
		t.Fatal("expected a schedule, got nil")
	}
	if schedule.Special != SpecialAlwaysOpen {
		t.Errorf("expected special %q, got %q", SpecialAlwaysOpen, schedule.Special)
	}
	if len(schedule.Entries) != 0 {
		t.Errorf("expected no entries, got %d", len(schedule.Entries))
	}
}

func TestParseByAppointment(t *testing.T) {
	for _, raw := range []string{`"by appointment"`, "Mo-Fr by Appointment", "APPOINTMENT only"} {
		schedule := Parse(raw)
		if schedule == nil {
			t.Fatalf("Parse(%q): expected a schedule, got nil", raw)
		}
		if schedule.Special != SpecialByAppointment {
			t.Errorf("Parse(%q): expected special %q, got %q", raw, SpecialByAppointment, schedule.Special)
		}
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		if schedule := Parse(raw); schedule != nil {
			t.Errorf("Parse(%q): expected nil, got %+v", raw, schedule)
		}
	}
}

func TestParseDayList(t *testing.T) {
	schedule := Parse("Mo,We,Fr 10:00-12:00")
	if schedule == nil {
		t.Fatal("expected a schedule, got nil")
	}
	if len(schedule.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(schedule.Entries))
	}

	expected := []string{Monday, Wednesday, Friday}
	for i, day := range expected {
		entry := schedule.Entries[i]
		if entry.Day != day {
			t.Errorf("entry %d: expected %q, got %q", i, day, entry.Day)
		}
		if entry.Opens != "10:00" || entry.Closes != "12:00" {
			t.Errorf("entry %d: expected 10:00-12:00, got %s-%s", i, entry.Opens, entry.Closes)
		}
	}
}

func TestParseReversedRangeIsUnparseable(t *testing.T) {
	if schedule := Parse("Fr-Mo 10:00-12:00"); schedule != nil {
		t.Errorf("reversed range should yield no structure, got %+v", schedule)
	}
}

func TestParseReversedRangeSegmentIsDropped(t *testing.T) {
	schedule := Parse("Fr-Mo 10:00-12:00; Sa 09:00-13:00")
	if schedule == nil {
		t.Fatal("expected a schedule, got nil")
	}
	if len(schedule.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(schedule.Entries))
	}
	if schedule.Entries[0].Day != Saturday {
		t.Errorf("expected Saturday, got %q", schedule.Entries[0].Day)
	}
}

func TestParseUnknownAbbreviationRange(t *testing.T) {
	if schedule := Parse("Xx-Fr 10:00-12:00"); schedule != nil {
		t.Errorf("unknown range bound should yield no structure, got %+v", schedule)
	}
}

func TestParseSegmentWithMultipleTimeRangesIsDropped(t *testing.T) {
	if schedule := Parse("Mo 08:00-12:00,14:00-18:00"); schedule != nil {
		t.Errorf("multiple time ranges per segment are unsupported, got %+v", schedule)
	}
}

func TestParseSegmentWithoutDayPartIsDropped(t *testing.T) {
	if schedule := Parse("10:00-12:00"); schedule != nil {
		t.Errorf("segment without day spec should be dropped, got %+v", schedule)
	}
}

func TestParseSingleDigitHoursArePadded(t *testing.T) {
	schedule := Parse("Mo 9:00-18:00")
	if schedule == nil {
		t.Fatal("expected a schedule, got nil")
	}
	if schedule.Entries[0].Opens != "09:00" {
		t.Errorf("expected padded 09:00, got %q", schedule.Entries[0].Opens)
	}
}

func TestParseOffSegmentContributesNothing(t *testing.T) {
	schedule := Parse("Mo-Fr 08:00-17:00; PH off")
	if schedule == nil {
		t.Fatal("expected a schedule, got nil")
	}
	if len(schedule.Entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(schedule.Entries))
	}
}

func TestParseExoticGrammarDegrades(t *testing.T) {
	// Constructs outside the supported subset must not error the caller.
	exotic := []string{
		"Mo-Fr 08:00-18:00 || \"nach Vereinbarung\"",
		"week 1-53/2 Fr 09:00-12:00",
		"no hours here",
	}
	for _, raw := range exotic {
		// Either nil or a partial schedule is acceptable; no panic.
		_ = Parse(raw)
	}
}
