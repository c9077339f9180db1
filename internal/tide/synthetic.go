// Package tide models sea level when no real tide data is available.
//
// The synthetic model is a plain semidiurnal sine wave: one full cycle every
// 12.42 hours (the M2 lunar constituent) with a fixed one metre amplitude.
// It is nowhere near a real tide table but behaves plausibly enough for
// demos and for riding out Stormglass quota errors.
package tide

import (
	"math"
	"time"

	"github.com/DecayAI/windwizard/internal/entities"
)

// SemidiurnalPeriod is the length of one synthetic tide cycle
const SemidiurnalPeriod = time.Duration(12.42 * float64(time.Hour))

// Amplitude of the synthetic wave in metres
const syntheticAmplitude = 1.0

// SyntheticSeaLevel produces hourly sea levels starting at the current hour
func SyntheticSeaLevel(hours int) entities.TideSeries {
	if hours < 0 {
		hours = 0
	}
	start := clock.Now().UTC().Truncate(time.Hour)
	series := entities.TideSeries{
		Time:     make([]string, 0, hours),
		SeaLevel: make([]float64, 0, hours),
		Source:   entities.TideSourceSynthetic,
	}
	for i := 0; i < hours; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		series.Time = append(series.Time, ts.Format(time.RFC3339))
		series.SeaLevel = append(series.SeaLevel, levelAt(ts))
	}
	return series
}

// SyntheticExtremes predicts high and low water events over the given number
// of days by scanning the synthetic wave for local extremes
func SyntheticExtremes(days int) []entities.TideExtreme {
	// One extra sample so the last hour still has a right neighbour
	series := SyntheticSeaLevel(days*24 + 1)
	return FindExtremes(series)
}

// FindExtremes scans a sea level series for local maxima and minima.
// The first and last samples have only one neighbour and are never reported.
func FindExtremes(series entities.TideSeries) []entities.TideExtreme {
	var extremes []entities.TideExtreme
	for i := 1; i < len(series.SeaLevel)-1; i++ {
		prev, cur, next := series.SeaLevel[i-1], series.SeaLevel[i], series.SeaLevel[i+1]
		switch {
		case cur >= prev && cur >= next:
			extremes = append(extremes, entities.TideExtreme{
				Time:   series.Time[i],
				Height: cur,
				Type:   entities.TideHigh,
			})
		case cur <= prev && cur <= next:
			extremes = append(extremes, entities.TideExtreme{
				Time:   series.Time[i],
				Height: cur,
				Type:   entities.TideLow,
			})
		}
	}
	return extremes
}

func levelAt(t time.Time) float64 {
	phase := 2 * math.Pi * float64(t.Unix()) / SemidiurnalPeriod.Seconds()
	return syntheticAmplitude * math.Sin(phase)
}
