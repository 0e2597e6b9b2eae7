package stats

import (
	"testing"
	"time"

	"github.com/acormier/liftlog/internal/models"
)

func dayLog(id string, date time.Time, duration int, exercises ...models.LoggedExercise) models.WorkoutLog {
	return models.WorkoutLog{
		ID:            id,
		Date:          date,
		Exercises:     exercises,
		TotalDuration: duration,
	}
}

func TestWeeklyWorkoutCount(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.Local)

	t.Run("empty collection", func(t *testing.T) {
		if got := WeeklyWorkoutCount(nil, now); got != 0 {
			t.Errorf("WeeklyWorkoutCount() = %d, want 0", got)
		}
	})

	t.Run("counts only the trailing window", func(t *testing.T) {
		logs := []models.WorkoutLog{
			dayLog("today", now, 45),
			dayLog("three-days", now.AddDate(0, 0, -3), 30),
			dayLog("exactly-seven", now.AddDate(0, 0, -7), 30),
			dayLog("eight-days", now.AddDate(0, 0, -8), 60),
		}
		// date >= now-7d: the 8-day-old entry is outside, the boundary entry is inside
		if got := WeeklyWorkoutCount(logs, now); got != 3 {
			t.Errorf("WeeklyWorkoutCount() = %d, want 3", got)
		}
	})

	t.Run("adding an old log does not change the count", func(t *testing.T) {
		logs := []models.WorkoutLog{dayLog("today", now, 45)}
		before := WeeklyWorkoutCount(logs, now)

		logs = append(logs, dayLog("old", now.AddDate(0, 0, -8), 45))
		if got := WeeklyWorkoutCount(logs, now); got != before {
			t.Errorf("WeeklyWorkoutCount() = %d after adding 8-day-old log, want %d", got, before)
		}

		logs = append(logs, dayLog("new", now, 45))
		if got := WeeklyWorkoutCount(logs, now); got != before+1 {
			t.Errorf("WeeklyWorkoutCount() = %d after adding today's log, want %d", got, before+1)
		}
	})
}

func TestWeeklyTotalDuration(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.Local)
	logs := []models.WorkoutLog{
		dayLog("a", now, 45),
		dayLog("b", now.AddDate(0, 0, -2), 30),
		dayLog("old", now.AddDate(0, 0, -10), 90),
	}

	if got := WeeklyTotalDuration(logs, now); got != 75 {
		t.Errorf("WeeklyTotalDuration() = %d, want 75", got)
	}
}

func TestWeeklyVolume(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.Local)
	logs := []models.WorkoutLog{
		dayLog("a", now, 45,
			models.LoggedExercise{ExerciseName: "Bench Press", Category: models.CategoryChest, Sets: 4, Reps: 10, Weight: 60},
			models.LoggedExercise{ExerciseName: "Dips", Category: models.CategoryArms, Sets: 3, Reps: 15},
		),
		dayLog("old", now.AddDate(0, 0, -9), 45,
			models.LoggedExercise{ExerciseName: "Squats", Category: models.CategoryLegs, Sets: 5, Reps: 5, Weight: 100},
		),
	}

	v := WeeklyVolume(logs, now)
	if v.Sets != 7 {
		t.Errorf("WeeklyVolume().Sets = %d, want 7", v.Sets)
	}
	// reps = 4*10 + 3*15; weight plays no part in this aggregate
	if v.Reps != 85 {
		t.Errorf("WeeklyVolume().Reps = %d, want 85", v.Reps)
	}
}

func TestChartSeries(t *testing.T) {
	// A Sunday, so labels run Mon..Sun
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	t.Run("labels cover the 7 days ending today, oldest first", func(t *testing.T) {
		lineData, barData := ChartSeries(nil, now)
		if len(lineData) != 7 || len(barData) != 7 {
			t.Fatalf("ChartSeries() lengths = %d, %d, want 7, 7", len(lineData), len(barData))
		}
		wantDays := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
		for i, want := range wantDays {
			if lineData[i].Day != want {
				t.Errorf("lineData[%d].Day = %q, want %q", i, lineData[i].Day, want)
			}
			if barData[i].Day != want {
				t.Errorf("barData[%d].Day = %q, want %q", i, barData[i].Day, want)
			}
		}
	})

	t.Run("empty collection yields zero-valued buckets", func(t *testing.T) {
		lineData, barData := ChartSeries(nil, now)
		for i := range lineData {
			if lineData[i].Duration != 0 || lineData[i].Volume != 0 {
				t.Errorf("lineData[%d] = %+v, want zero values", i, lineData[i])
			}
			if barData[i].Workouts != 0 || barData[i].Duration != 0 {
				t.Errorf("barData[%d] = %+v, want zero values", i, barData[i])
			}
		}
	})

	t.Run("buckets by calendar day, not rolling window", func(t *testing.T) {
		// 23:00 yesterday belongs to yesterday's bucket even though it is
		// within 24h of now
		yesterday := time.Date(2025, 6, 14, 23, 0, 0, 0, time.Local)
		logs := []models.WorkoutLog{
			dayLog("a", yesterday, 40,
				models.LoggedExercise{ExerciseName: "Deadlift", Category: models.CategoryBack, Sets: 4, Reps: 8, Weight: 80},
			),
			dayLog("b", now, 60),
		}

		lineData, barData := ChartSeries(logs, now)

		if barData[5].Workouts != 1 || barData[5].Duration != 40 {
			t.Errorf("Saturday bucket = %+v, want 1 workout of 40m", barData[5])
		}
		if lineData[5].Volume != 4*8*80 {
			t.Errorf("Saturday volume = %g, want %d", lineData[5].Volume, 4*8*80)
		}
		if barData[6].Workouts != 1 || barData[6].Duration != 60 {
			t.Errorf("Sunday bucket = %+v, want 1 workout of 60m", barData[6])
		}
	})

	t.Run("two workouts on one day accumulate", func(t *testing.T) {
		logs := []models.WorkoutLog{
			dayLog("a", now, 30),
			dayLog("b", now.Add(-2*time.Hour), 20),
		}
		_, barData := ChartSeries(logs, now)
		if barData[6].Workouts != 2 || barData[6].Duration != 50 {
			t.Errorf("today's bucket = %+v, want 2 workouts of 50m total", barData[6])
		}
	})
}

func TestCalendarIndex(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		index := CalendarIndex(nil)
		if len(index) != 0 {
			t.Errorf("CalendarIndex() has %d buckets, want 0", len(index))
		}
	})

	t.Run("partitions every log into exactly one bucket", func(t *testing.T) {
		logs := []models.WorkoutLog{
			dayLog("a", time.Date(2025, 6, 15, 9, 0, 0, 0, time.Local), 30),
			dayLog("b", time.Date(2025, 6, 15, 18, 0, 0, 0, time.Local), 45),
			dayLog("c", time.Date(2025, 6, 3, 7, 0, 0, 0, time.Local), 60),
		}

		index := CalendarIndex(logs)

		total := 0
		for _, bucket := range index {
			total += len(bucket)
		}
		if total != len(logs) {
			t.Errorf("buckets hold %d logs, want %d", total, len(logs))
		}

		if got := len(index["2025-06-15"]); got != 2 {
			t.Errorf("bucket 2025-06-15 has %d logs, want 2", got)
		}
		if got := len(index["2025-06-03"]); got != 1 {
			t.Errorf("bucket 2025-06-03 has %d logs, want 1", got)
		}

		// zero-padded key format
		if _, ok := index["2025-6-3"]; ok {
			t.Error("bucket key is not zero-padded")
		}
	})

	t.Run("bucket order follows collection order", func(t *testing.T) {
		day := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
		logs := []models.WorkoutLog{
			dayLog("first", day, 30),
			dayLog("second", day, 45),
		}
		index := CalendarIndex(logs)
		bucket := index["2025-06-15"]
		if len(bucket) != 2 || bucket[0].ID != "first" || bucket[1].ID != "second" {
			t.Errorf("bucket order = %v, want [first second]", bucket)
		}
	})
}
