package sales

import (
	"math"

	"github.com/shiftline/shiftline-backend-go/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// Analyze computes the performance figures for one store's records over a
// period. Pure; the service fetches the inputs.
//
//   - benchmark: average daily sales across all in-scope stores over the
//     same period, nil delta when no benchmark data exists
//   - previous: the store's records for the immediately preceding period of
//     equal length, nil delta when that period had no sales
//   - volatility: population standard deviation of the daily figures as a
//     percentage of the daily mean, nil when fewer than two days have sales
func Analyze(storeID, from, to string, records, benchmark, previous []sales.Record) sales.Performance {
	perf := sales.Performance{
		StoreID: storeID,
		From:    from,
		To:      to,
	}

	var totalCents int64
	for _, r := range records {
		totalCents += r.NetCents
	}
	perf.DaysWithSales = len(records)
	perf.Total = centsString(totalCents)

	if len(records) == 0 {
		perf.DailyAverage = centsString(0)
		return perf
	}

	mean := float64(totalCents) / float64(len(records))
	perf.DailyAverage = decimal.NewFromFloat(mean).Div(decimal.NewFromInt(100)).Round(2).StringFixed(2)

	if benchAvg, ok := dailyAverage(benchmark); ok && benchAvg > 0 {
		delta := roundPct((mean - benchAvg) / benchAvg * 100)
		perf.BenchmarkDeltaPct = &delta
	}

	var prevTotal int64
	for _, r := range previous {
		prevTotal += r.NetCents
	}
	if prevTotal > 0 {
		delta := roundPct(float64(totalCents-prevTotal) / float64(prevTotal) * 100)
		perf.PeriodDeltaPct = &delta
	}

	if len(records) >= 2 {
		var sumSq float64
		for _, r := range records {
			d := float64(r.NetCents) - mean
			sumSq += d * d
		}
		stddev := math.Sqrt(sumSq / float64(len(records)))
		if mean > 0 {
			vol := roundPct(stddev / mean * 100)
			perf.VolatilityPct = &vol
		}
	}

	return perf
}

func dailyAverage(records []sales.Record) (float64, bool) {
	if len(records) == 0 {
		return 0, false
	}
	var total int64
	for _, r := range records {
		total += r.NetCents
	}
	return float64(total) / float64(len(records)), true
}

func roundPct(v float64) float64 {
	return math.Round(v*100) / 100
}

func centsString(v int64) string {
	return decimal.NewFromInt(v).Div(decimal.NewFromInt(100)).StringFixed(2)
}
