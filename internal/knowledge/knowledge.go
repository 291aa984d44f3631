// Package knowledge holds the institution's static reference data: fee and
// timing tables, hostel rosters, campus-life blocks, intents and canned
// replies. A Base is immutable after construction and is passed explicitly
// to the classifier and reply handlers.
package knowledge

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// YearAmount is one row of a course fee schedule. Amount is an opaque,
// already formatted currency string.
type YearAmount struct {
	Year   string
	Amount string
}

// Course is a fee-table entry keyed by its lowercase canonical name.
type Course struct {
	Key  string
	Fees []YearAmount
}

// Department groups courses in declaration order.
type Department struct {
	Name    string
	Courses []Course
}

// Date is a calendar date without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// In returns midnight of the date in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Format renders the date as DD-MM-YYYY.
func (d Date) Format() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, int(d.Month), d.Year)
}

// Hostel is one residence on a roster.
type Hostel struct {
	Name           string
	Rooms          int
	MembersPerRoom int
	AC             bool
	HostelFee      int
	MessFee        int
}

// CampusBlock is a campus-life topic with its trigger keywords.
type CampusBlock struct {
	Name     string
	Title    string
	Keywords []string
	Details  string
}

// Intent is a named topic with bilingual keyword phrases in priority order.
type Intent struct {
	Name     string
	Keywords []string
}

// DepartmentNote is a department-specific line selected by keyword.
// Fuzzy notes compare the whole message against Keywords instead of
// testing containment.
type DepartmentNote struct {
	Name     string
	Keywords []string
	Fuzzy    bool
	Text     string
}

// Base is the full set of reference data.
type Base struct {
	Departments       []Department
	Timings           []TimingEntry
	BoysHostels       []Hostel
	GirlsHostels      []Hostel
	CampusLife        []CampusBlock
	Intents           []Intent
	Responses         map[string]string
	AdmissionStart    Date
	AdmissionDeadline Date
	EntranceNotes     []DepartmentNote
	DepartmentNotes   []DepartmentNote
	Texts             Texts
}

// Intent returns the named intent.
func (b *Base) Intent(name string) (Intent, bool) {
	for _, in := range b.Intents {
		if in.Name == name {
			return in, true
		}
	}
	return Intent{}, false
}

// IntentKeywords returns the keyword list of the named intent, or nil.
func (b *Base) IntentKeywords(name string) []string {
	in, _ := b.Intent(name)
	return in.Keywords
}

// FindCourse returns the first course, in department then course order,
// whose key occurs in text.
func (b *Base) FindCourse(text string) (Course, bool) {
	for _, d := range b.Departments {
		for _, c := range d.Courses {
			if strings.Contains(text, c.Key) {
				return c, true
			}
		}
	}
	return Course{}, false
}

// Validate checks the structural invariants of the tables.
func (b *Base) Validate() error {
	var errs []error

	seen := make(map[string]string)
	for _, d := range b.Departments {
		for _, c := range d.Courses {
			if c.Key == "" || c.Key != strings.ToLower(c.Key) {
				errs = append(errs, fmt.Errorf("course key %q must be non-empty lowercase", c.Key))
			}
			if prev, dup := seen[c.Key]; dup {
				errs = append(errs, fmt.Errorf("course %q declared in %s and %s", c.Key, prev, d.Name))
			}
			seen[c.Key] = d.Name
			if len(c.Fees) == 0 {
				errs = append(errs, fmt.Errorf("course %q has no fee rows", c.Key))
			}
		}
	}

	for _, in := range b.Intents {
		if len(in.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("intent %q has no keywords", in.Name))
		}
	}

	for _, te := range b.Timings {
		if len(te.Schedule.Entries()) == 0 {
			errs = append(errs, fmt.Errorf("timing %q is empty", te.Key))
		}
	}

	if b.AdmissionDeadline.In(time.UTC).Before(b.AdmissionStart.In(time.UTC)) {
		errs = append(errs, errors.New("admission deadline precedes admission start"))
	}

	return errors.Join(errs...)
}

var defaultBase = sync.OnceValue(func() *Base {
	return &Base{
		Departments:       feeTable(),
		Timings:           timingTable(),
		BoysHostels:       boysHostels(),
		GirlsHostels:      girlsHostels(),
		CampusLife:        campusLife(),
		Intents:           intentTable(),
		Responses:         responseTable(),
		AdmissionStart:    Date{Year: 2025, Month: time.May, Day: 1},
		AdmissionDeadline: Date{Year: 2025, Month: time.June, Day: 15},
		EntranceNotes:     entranceNotes(),
		DepartmentNotes:   departmentNotes(),
		Texts:             institutionTexts(),
	}
})

// Default returns the institution's reference data. The result is shared
// and must not be modified.
func Default() *Base {
	return defaultBase()
}
