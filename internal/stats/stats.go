// Package stats derives aggregate views from the workout log collection.
// Everything here is pure: results are recomputed from the logs passed in,
// with no cached or incremental state.
//
// Two different date semantics coexist deliberately and must not be unified:
// the weekly figures use a rolling trailing-7-day window relative to now,
// while the chart and calendar bucket by local calendar day.
package stats

import (
	"time"

	"github.com/acormier/liftlog/internal/constants"
	"github.com/acormier/liftlog/internal/models"
)

// Volume is the weekly rep-volume aggregate: total sets and total reps
// (sets × reps summed). Weight is not part of this metric.
type Volume struct {
	Sets int
	Reps int
}

// LinePoint is one day of the duration/load-volume chart series.
type LinePoint struct {
	Day      string  // weekday abbreviation, Sun..Sat
	Duration int     // total minutes
	Volume   float64 // Σ(sets × reps × weight)
}

// BarPoint is one day of the workout-count chart series.
type BarPoint struct {
	Day      string
	Workouts int
	Duration int
}

// inWeeklyWindow reports whether date falls in the trailing 7 days:
// date >= now - 7d.
func inWeeklyWindow(date, now time.Time) bool {
	return !date.Before(now.AddDate(0, 0, -7))
}

// sameDay reports whether a and b fall on the same local calendar day.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// WeeklyWorkoutCount returns the number of logs dated within the trailing
// 7-day window ending at now.
func WeeklyWorkoutCount(logs []models.WorkoutLog, now time.Time) int {
	count := 0
	for _, l := range logs {
		if inWeeklyWindow(l.Date, now) {
			count++
		}
	}
	return count
}

// WeeklyTotalDuration returns the summed total duration, in minutes, of logs
// within the trailing 7-day window.
func WeeklyTotalDuration(logs []models.WorkoutLog, now time.Time) int {
	total := 0
	for _, l := range logs {
		if inWeeklyWindow(l.Date, now) {
			total += l.TotalDuration
		}
	}
	return total
}

// WeeklyVolume returns the rep-volume aggregate over the trailing 7-day
// window: total sets, and total reps as Σ(sets × reps).
func WeeklyVolume(logs []models.WorkoutLog, now time.Time) Volume {
	var v Volume
	for _, l := range logs {
		if !inWeeklyWindow(l.Date, now) {
			continue
		}
		for _, ex := range l.Exercises {
			v.Sets += ex.Sets
			v.Reps += ex.Sets * ex.Reps
		}
	}
	return v
}

// ChartSeries buckets logs into the 7 calendar days ending today (oldest
// first) and returns the two parallel chart series. Days with no logs get
// zero-valued points.
func ChartSeries(logs []models.WorkoutLog, now time.Time) ([]LinePoint, []BarPoint) {
	lineData := make([]LinePoint, 0, constants.ChartDays)
	barData := make([]BarPoint, 0, constants.ChartDays)

	for i := constants.ChartDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		label := day.Weekday().String()[:3]

		duration := 0
		workouts := 0
		volume := 0.0
		for _, l := range logs {
			if !sameDay(l.Date, day) {
				continue
			}
			workouts++
			duration += l.TotalDuration
			for _, ex := range l.Exercises {
				volume += float64(ex.Sets*ex.Reps) * ex.Weight
			}
		}

		lineData = append(lineData, LinePoint{Day: label, Duration: duration, Volume: volume})
		barData = append(barData, BarPoint{Day: label, Workouts: workouts, Duration: duration})
	}

	return lineData, barData
}

// CalendarIndex groups all logs by local calendar day, keyed YYYY-MM-DD.
// Within a bucket, list order follows collection order.
func CalendarIndex(logs []models.WorkoutLog) map[string][]models.WorkoutLog {
	index := make(map[string][]models.WorkoutLog)
	for _, l := range logs {
		key := l.Date.Format(constants.DateFormat)
		index[key] = append(index[key], l)
	}
	return index
}
