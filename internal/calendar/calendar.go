// Package calendar provides the fixed-length game calendar and the
// real-calendar overlay used for NPC birthdays.
package calendar

import "fmt"

// The game calendar is fixed-length: every month has 30 days, every year 12
// months. All scheduling math runs on the absolute day index derived from it.
const (
	DaysPerMonth  = 30
	MonthsPerYear = 12
	DaysPerYear   = DaysPerMonth * MonthsPerYear
	DaysPerWeek   = 7

	// HorizonYears is the game horizon: the tick that lands on year 5,
	// month 0, day 0 ends the run.
	HorizonYears = 5
)

// GameTime is a date on the fixed game calendar. Month and Day are
// zero-based.
type GameTime struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// AbsDay returns the absolute day index for scheduling math.
func (t GameTime) AbsDay() int {
	return t.Year*DaysPerYear + t.Month*DaysPerMonth + t.Day
}

// Next returns the date one day later, rolling months and years over.
func (t GameTime) Next() GameTime {
	t.Day++
	if t.Day >= DaysPerMonth {
		t.Day = 0
		t.Month++
	}
	if t.Month >= MonthsPerYear {
		t.Month = 0
		t.Year++
	}
	return t
}

// AtHorizon reports whether the run has reached the end of the game.
func (t GameTime) AtHorizon() bool {
	return t.Year >= HorizonYears
}

// Week returns the week index within the current year.
func (t GameTime) Week() int {
	return (t.Month*DaysPerMonth + t.Day) / DaysPerWeek
}

// String renders the date for logs, one-based for readability.
func (t GameTime) String() string {
	return fmt.Sprintf("Y%d M%d D%d", t.Year+1, t.Month+1, t.Day+1)
}

// FromAbsDay reconstructs a game date from an absolute day index.
func FromAbsDay(abs int) GameTime {
	if abs < 0 {
		abs = 0
	}
	return GameTime{
		Year:  abs / DaysPerYear,
		Month: (abs % DaysPerYear) / DaysPerMonth,
		Day:   abs % DaysPerMonth,
	}
}

// The birthday overlay uses the real calendar: NPC birth dates are stored as
// (month 1-12, day 1-31) and mapped onto game months. Game month 0 is June.
const overlayStartMonth = 6 // June

// realMonthDays holds real calendar month lengths (no leap years).
var realMonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInRealMonth returns the number of days in a real month (1-12).
func DaysInRealMonth(month int) int {
	if month < 1 || month > 12 {
		return DaysPerMonth
	}
	return realMonthDays[month-1]
}

// GameMonthForBirthMonth maps a real birth month (1-12) onto the game
// calendar month (0-11).
func GameMonthForBirthMonth(birthMonth int) int {
	return (birthMonth - overlayStartMonth + MonthsPerYear) % MonthsPerYear
}

// IsBirthday reports whether the given game date is the overlay date of a
// birth date. Birth days beyond the 30-day game month land on the last game
// day of that month.
func IsBirthday(t GameTime, birthMonth, birthDay int) bool {
	if GameMonthForBirthMonth(birthMonth) != t.Month {
		return false
	}
	day := birthDay - 1
	if day >= DaysPerMonth {
		day = DaysPerMonth - 1
	}
	return t.Day == day
}

// IsNewYear reports whether the given game date corresponds to January 1 on
// the overlay calendar.
func IsNewYear(t GameTime) bool {
	return t.Month == GameMonthForBirthMonth(1) && t.Day == 0
}

// InNewYearSeason reports whether New Year greetings are open: the whole
// overlay January.
func InNewYearSeason(t GameTime) bool {
	return t.Month == GameMonthForBirthMonth(1)
}
