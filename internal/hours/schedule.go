package hours

import "time"

var goWeekdays = map[time.Weekday]string{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// IsOpenAt reports whether the schedule is open at the given local time.
// Appointment-only schedules report closed; "24/7" always reports open.
// Intervals whose closing time is not after the opening time are treated as
// spanning midnight.
func (s *Schedule) IsOpenAt(t time.Time) bool {
	if s == nil {
		return false
	}
	if s.Special == SpecialAlwaysOpen {
		return true
	}
	if s.Special == SpecialByAppointment {
		return false
	}

	clock := t.Format("15:04")
	day := goWeekdays[t.Weekday()]
	previous := goWeekdays[t.AddDate(0, 0, -1).Weekday()]

	for _, entry := range s.Entries {
		if entry.Opens == "" || entry.Closes == "" {
			continue
		}

		overnight := entry.Closes <= entry.Opens
		switch {
		case entry.Day == day && !overnight:
			if clock >= entry.Opens && clock < entry.Closes {
				return true
			}
		case entry.Day == day && overnight:
			if clock >= entry.Opens {
				return true
			}
		case entry.Day == previous && overnight:
			if clock < entry.Closes {
				return true
			}
		}
	}

	return false
}
