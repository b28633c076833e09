package sales

import (
	"testing"

	"github.com/shiftline/shiftline-backend-go/internal/domain/sales"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(cents int64) sales.Record {
	return sales.Record{StoreID: "str-1", NetCents: cents}
}

func TestAnalyze_TotalsAndAverage(t *testing.T) {
	records := []sales.Record{rec(100_00), rec(200_00), rec(300_00)}

	perf := Analyze("str-1", "2026-03-02", "2026-03-08", records, nil, nil)

	assert.Equal(t, "str-1", perf.StoreID)
	assert.Equal(t, 3, perf.DaysWithSales)
	assert.Equal(t, "600.00", perf.Total)
	assert.Equal(t, "200.00", perf.DailyAverage)
	assert.Nil(t, perf.BenchmarkDeltaPct)
	assert.Nil(t, perf.PeriodDeltaPct)
}

func TestAnalyze_Empty(t *testing.T) {
	perf := Analyze("str-1", "2026-03-02", "2026-03-08", nil, nil, nil)

	assert.Equal(t, 0, perf.DaysWithSales)
	assert.Equal(t, "0.00", perf.Total)
	assert.Equal(t, "0.00", perf.DailyAverage)
	assert.Nil(t, perf.BenchmarkDeltaPct)
	assert.Nil(t, perf.PeriodDeltaPct)
	assert.Nil(t, perf.VolatilityPct)
}

func TestAnalyze_BenchmarkDelta(t *testing.T) {
	records := []sales.Record{rec(120_00), rec(120_00)}
	benchmark := []sales.Record{rec(100_00), rec(100_00), rec(100_00)}

	perf := Analyze("str-1", "2026-03-02", "2026-03-08", records, benchmark, nil)

	// Daily average 120 against a benchmark average of 100
	require.NotNil(t, perf.BenchmarkDeltaPct)
	assert.Equal(t, 20.0, *perf.BenchmarkDeltaPct)
}

func TestAnalyze_PeriodDelta(t *testing.T) {
	records := []sales.Record{rec(150_00)}
	previous := []sales.Record{rec(100_00), rec(100_00)}

	perf := Analyze("str-1", "2026-03-02", "2026-03-08", records, nil, previous)

	// 150 this period against 200 last period
	require.NotNil(t, perf.PeriodDeltaPct)
	assert.Equal(t, -25.0, *perf.PeriodDeltaPct)
}

func TestAnalyze_PeriodDeltaNilWhenNoPriorSales(t *testing.T) {
	records := []sales.Record{rec(150_00)}

	perf := Analyze("str-1", "2026-03-02", "2026-03-08", records, nil, []sales.Record{})

	// A nil delta is not the same as +0%; there is nothing to compare against
	assert.Nil(t, perf.PeriodDeltaPct)
}

func TestAnalyze_Volatility(t *testing.T) {
	// Mean 200, population stddev ~81.65, volatility ~40.82%
	records := []sales.Record{rec(100_00), rec(200_00), rec(300_00)}

	perf := Analyze("str-1", "2026-03-02", "2026-03-08", records, nil, nil)

	require.NotNil(t, perf.VolatilityPct)
	assert.Equal(t, 40.82, *perf.VolatilityPct)
}

func TestAnalyze_VolatilityNilForSingleDay(t *testing.T) {
	perf := Analyze("str-1", "2026-03-02", "2026-03-08", []sales.Record{rec(100_00)}, nil, nil)

	assert.Nil(t, perf.VolatilityPct)
}

func TestAnalyze_FlatSalesZeroVolatility(t *testing.T) {
	records := []sales.Record{rec(100_00), rec(100_00), rec(100_00)}

	perf := Analyze("str-1", "2026-03-02", "2026-03-08", records, nil, nil)

	require.NotNil(t, perf.VolatilityPct)
	assert.Equal(t, 0.0, *perf.VolatilityPct)
}
