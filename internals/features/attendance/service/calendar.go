package service

import (
	"fmt"
	"time"
)

// DateForWeek maps (semester start, week number, weekday) onto a calendar
// date. semesterStart is the Monday of week 1; weekNo is 1-based; weekday is
// 1=Mon..7=Sun. Out-of-range inputs yield an arithmetically valid date;
// bounding weekNo to the semester's week count is the caller's job.
func DateForWeek(semesterStart time.Time, weekNo, weekday int) time.Time {
	return semesterStart.AddDate(0, 0, (weekNo-1)*7+(weekday-1))
}

// WeekLabel renders the short header form, e.g. "Tue 07/22".
func WeekLabel(d time.Time) string {
	return d.Format("Mon 01/02")
}

// WeekHeaderLabel renders the export column header, e.g. "W3 (Tue 08/05)".
func WeekHeaderLabel(weekNo int, d time.Time) string {
	return fmt.Sprintf("W%d (%s)", weekNo, WeekLabel(d))
}
