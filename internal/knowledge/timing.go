package knowledge

// ScheduleKind tags the shape of a timing entry.
type ScheduleKind int

const (
	// PerYear schedules list one line per year (or per sub-course).
	PerYear ScheduleKind = iota
	// Single schedules are one line with no breakdown.
	Single
)

// ScheduleLine is a labelled schedule line.
type ScheduleLine struct {
	Label string
	Text  string
}

// Schedule is a tagged variant: Lines for PerYear, Text for Single.
type Schedule struct {
	Kind  ScheduleKind
	Lines []ScheduleLine
	Text  string
}

// PerYearSchedule builds a PerYear schedule.
func PerYearSchedule(lines ...ScheduleLine) Schedule {
	return Schedule{Kind: PerYear, Lines: lines}
}

// SingleSchedule builds a Single schedule.
func SingleSchedule(text string) Schedule {
	return Schedule{Kind: Single, Text: text}
}

// Entries returns the schedule's lines in order.
func (s Schedule) Entries() []string {
	switch s.Kind {
	case Single:
		if s.Text == "" {
			return nil
		}
		return []string{s.Text}
	default:
		out := make([]string, 0, len(s.Lines))
		for _, l := range s.Lines {
			out = append(out, l.Text)
		}
		return out
	}
}

// TimingEntry maps a course key to its schedule.
type TimingEntry struct {
	Key      string
	Schedule Schedule
}

func timingTable() []TimingEntry {
	return []TimingEntry{
		{Key: "mca", Schedule: PerYearSchedule(
			ScheduleLine{"1st year", "⏰ MCA 1st Year: Mon-Fri 10:00 AM - 5:00 PM, Lunch 1:00 PM - 2:00 PM; Sat 10:00 AM - 2:00 PM; Sun Holiday"},
			ScheduleLine{"2nd year", "⏰ MCA 2nd Year: Mon-Fri 10:00 AM - 5:00 PM, Lunch 1:00 PM - 2:00 PM; Sat 10:00 AM - 2:00 PM; Sun Holiday"},
		)},
		{Key: "btech", Schedule: PerYearSchedule(
			ScheduleLine{"1st year", "⏰ B.Tech 1st Year: Mon-Fri 9:00 AM - 4:00 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:00 AM - 1:00 PM; Sun Holiday"},
			ScheduleLine{"2nd year", "⏰ B.Tech 2nd Year: Mon-Fri 9:30 AM - 4:30 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:30 AM - 1:30 PM; Sun Holiday"},
			ScheduleLine{"3rd year", "⏰ B.Tech 3rd Year: Mon-Fri 9:30 AM - 4:30 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:30 AM - 1:30 PM; Sun Holiday"},
			ScheduleLine{"4th year", "⏰ B.Tech 4th Year: Mon-Fri 9:30 AM - 4:30 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:30 AM - 1:30 PM; Sun Holiday"},
		)},
		{Key: "mba", Schedule: PerYearSchedule(
			ScheduleLine{"1st year", "⏰ MBA 1st Year: Mon-Fri 9:30 AM - 4:30 PM, Lunch 1:00 PM - 2:00 PM; Sat 10:00 AM - 2:00 PM; Sun Holiday"},
			ScheduleLine{"2nd year", "⏰ MBA 2nd Year: Mon-Fri 9:30 AM - 4:30 PM, Lunch 1:00 PM - 2:00 PM; Sat 10:00 AM - 2:00 PM; Sun Holiday"},
		)},
		{Key: "law", Schedule: PerYearSchedule(
			ScheduleLine{"1st year", "⏰ Law 1st Year: Mon-Fri 9:00 AM - 4:00 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:00 AM - 1:00 PM; Sun Holiday"},
			ScheduleLine{"2nd year", "⏰ Law 2nd Year: Mon-Fri 9:00 AM - 4:00 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:00 AM - 1:00 PM; Sun Holiday"},
			ScheduleLine{"3rd year", "⏰ Law 3rd Year: Mon-Fri 9:00 AM - 4:00 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:00 AM - 1:00 PM; Sun Holiday"},
			ScheduleLine{"4th year", "⏰ Law 4th Year: Mon-Fri 9:00 AM - 4:00 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:00 AM - 1:00 PM; Sun Holiday"},
			ScheduleLine{"5th year", "⏰ Law 5th Year: Mon-Fri 9:00 AM - 4:00 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:00 AM - 1:00 PM; Sun Holiday"},
		)},
		{Key: "arts", Schedule: PerYearSchedule(
			ScheduleLine{"bcom", "⏰ B.Com: Mon-Fri 9:30 AM - 4:30 PM, Lunch 1:00 PM - 2:00 PM; Sat 9:30 AM - 1:30 PM; Sun Holiday"},
			ScheduleLine{"bba", "⏰ BBA: Mon-Fri 9:30 AM - 4:30 PM, Lunch 1:00 PM - 2:00 PM; Sat 9:30 AM - 1:30 PM; Sun Holiday"},
			ScheduleLine{"bsc tamil", "⏰ B.Sc Tamil: Mon-Fri 9:30 AM - 4:30 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:30 AM - 1:30 PM; Sun Holiday"},
			ScheduleLine{"bsc english", "⏰ B.Sc English: Mon-Fri 9:30 AM - 4:30 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:30 AM - 1:30 PM; Sun Holiday"},
			ScheduleLine{"ba history", "⏰ BA History: Mon-Fri 9:30 AM - 4:30 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:30 AM - 1:30 PM; Sun Holiday"},
		)},
		{Key: "science", Schedule: PerYearSchedule(
			ScheduleLine{"bsc cs", "⏰ B.Sc CS: Mon-Fri 9:30 AM - 4:30 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:30 AM - 1:30 PM; Sun Holiday"},
			ScheduleLine{"bsc ca", "⏰ B.Sc CA: Mon-Fri 9:30 AM - 4:30 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:30 AM - 1:30 PM; Sun Holiday"},
			ScheduleLine{"bsc physics", "⏰ B.Sc Physics: Mon-Fri 9:30 AM - 4:30 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:30 AM - 1:30 PM; Sun Holiday"},
			ScheduleLine{"bsc chemistry", "⏰ B.Sc Chemistry: Mon-Fri 9:30 AM - 4:30 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:30 AM - 1:30 PM; Sun Holiday"},
			ScheduleLine{"bsc maths", "⏰ B.Sc Maths: Mon-Fri 9:30 AM - 4:30 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:30 AM - 1:30 PM; Sun Holiday"},
		)},
		{Key: "medical", Schedule: PerYearSchedule(
			ScheduleLine{"mbbs", "⏰ MBBS: Mon-Fri 8:00 AM - 3:30 PM, Lunch 12:30 PM - 1:30 PM; Sat 8:00 AM - 1:00 PM; Sun Holiday"},
			ScheduleLine{"bds", "⏰ BDS: Mon-Fri 8:00 AM - 3:30 PM, Lunch 12:30 PM - 1:30 PM; Sat 8:00 AM - 1:00 PM; Sun Holiday"},
			ScheduleLine{"bpharm", "⏰ B.Pharm: Mon-Fri 9:00 AM - 4:00 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:00 AM - 1:00 PM; Sun Holiday"},
			ScheduleLine{"bsc nursing", "⏰ B.Sc Nursing: Mon-Fri 9:00 AM - 4:00 PM, Lunch 12:30 PM - 1:30 PM; Sat 9:00 AM - 1:00 PM; Sun Holiday"},
		)},
	}
}
