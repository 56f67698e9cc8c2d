package stats

import (
	"sort"
	"time"

	"github.com/2beens/gearfitness/internal/workouts"
	"github.com/2beens/gearfitness/pkg"

	"github.com/shopspring/decimal"
)

type WeeklyVolume struct {
	WeekStart    pkg.Date        `json:"weekStart"`
	WeekEnd      pkg.Date        `json:"weekEnd"`
	TotalVolume  decimal.Decimal `json:"totalVolume"`
	WorkoutCount int             `json:"workoutCount"`
}

type DailyVolume struct {
	Date         pkg.Date        `json:"date"`
	TotalVolume  decimal.Decimal `json:"totalVolume"`
	WorkoutCount int             `json:"workoutCount"`
}

// WeeklyVolumes groups workouts into Monday aligned weeks. Only weeks with at least one
// workout are returned, oldest first; when weeks > 0 only the most recent weeks buckets are kept.
func WeeklyVolumes(ws []workouts.Workout, weeks int) []WeeklyVolume {
	if len(ws) == 0 {
		return []WeeklyVolume{}
	}

	buckets := map[string]*WeeklyVolume{}
	for _, w := range ws {
		start := w.DatePerformed.PrevOrSame(time.Monday)
		b, ok := buckets[start.String()]
		if !ok {
			b = &WeeklyVolume{
				WeekStart:   start,
				WeekEnd:     start.AddDays(6),
				TotalVolume: decimal.Zero,
			}
			buckets[start.String()] = b
		}
		b.TotalVolume = b.TotalVolume.Add(w.Volume())
		b.WorkoutCount++
	}

	result := make([]WeeklyVolume, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].WeekStart.Before(result[j].WeekStart)
	})

	if weeks > 0 && len(result) > weeks {
		result = result[len(result)-weeks:]
	}
	return result
}

// DailyWindow returns the inclusive [start, end] range covered by DailyVolumes.
// The window ends on the Saturday on/after today. With weeks > 0 it starts weeks
// weeks earlier, otherwise at the earliest workout; either way snapped back to weekStart.
func DailyWindow(ws []workouts.Workout, weeks int, weekStart time.Weekday, today pkg.Date) (pkg.Date, pkg.Date) {
	end := today.NextOrSame(time.Saturday)
	if weeks > 0 {
		return end.AddDays(-7 * weeks).PrevOrSame(weekStart), end
	}

	earliest := ws[0].DatePerformed
	for _, w := range ws[1:] {
		if w.DatePerformed.Before(earliest) {
			earliest = w.DatePerformed
		}
	}
	return earliest.PrevOrSame(weekStart), end
}

// DailyVolumes returns one bucket per calendar day of the daily window, zero filled.
func DailyVolumes(ws []workouts.Workout, weeks int, weekStart time.Weekday, today pkg.Date) []DailyVolume {
	if len(ws) == 0 {
		return []DailyVolume{}
	}

	start, end := DailyWindow(ws, weeks, weekStart, today)
	days := start.DaysUntil(end) + 1
	if days <= 0 {
		return []DailyVolume{}
	}

	result := make([]DailyVolume, days)
	for i := range result {
		result[i] = DailyVolume{
			Date:        start.AddDays(i),
			TotalVolume: decimal.Zero,
		}
	}

	for _, w := range ws {
		if w.DatePerformed.Before(start) || w.DatePerformed.After(end) {
			continue
		}
		b := &result[start.DaysUntil(w.DatePerformed)]
		b.TotalVolume = b.TotalVolume.Add(w.Volume())
		b.WorkoutCount++
	}

	return result
}
