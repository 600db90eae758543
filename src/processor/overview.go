// overview.go
package processor

import (
	"math"
	"sort"
	"strconv"

	"FlightAnalytics/src/datasource/file"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"
)

// OverviewStats 总览视图的聚合结果
// 在全量数据集上计算, 不走采样
type OverviewStats struct {
	TotalFlights      int
	AvgDepartureDelay float64
	AvgArrivalDelay   float64
	AirlineCounts     dataframe.DataFrame // 各航空公司航班数, 按数量降序
	MonthlyTrend      dataframe.DataFrame // 每月航班数与平均延误, 按月份升序
}

// Overview 计算总览视图
func Overview(df dataframe.DataFrame) (*OverviewStats, error) {
	if err := requireColumns(df, file.ColAirline, file.ColMonth); err != nil {
		return nil, err
	}

	depDelays, err := floatColumn(df, file.ColDepartureDelay)
	if err != nil {
		return nil, err
	}
	arrDelays, err := floatColumn(df, file.ColArrivalDelay)
	if err != nil {
		return nil, err
	}

	stats := &OverviewStats{
		TotalFlights:      df.Nrow(),
		AvgDepartureDelay: stat.Mean(depDelays, nil),
		AvgArrivalDelay:   stat.Mean(arrDelays, nil),
	}

	stats.AirlineCounts = airlineCounts(df)

	trend, err := monthlyTrend(df)
	if err != nil {
		return nil, err
	}
	stats.MonthlyTrend = trend

	return stats, nil
}

// airlineCounts 各航空公司的航班数量分布(饼图数据)
func airlineCounts(df dataframe.DataFrame) dataframe.DataFrame {
	counts := make(map[string]int)
	for _, a := range df.Col(file.ColAirline).Records() {
		counts[a]++
	}

	airlines := make([]string, 0, len(counts))
	for a := range counts {
		airlines = append(airlines, a)
	}
	// 数量降序, 同数量按名称排序保证结果稳定
	sort.Slice(airlines, func(i, j int) bool {
		if counts[airlines[i]] != counts[airlines[j]] {
			return counts[airlines[i]] > counts[airlines[j]]
		}
		return airlines[i] < airlines[j]
	})

	nums := make([]int, len(airlines))
	for i, a := range airlines {
		nums[i] = counts[a]
	}

	return dataframe.New(
		series.New(airlines, series.String, file.ColAirline),
		series.New(nums, series.Int, "COUNT"),
	)
}

// monthlyTrend 每月的航班数和平均延误(折线图数据)
func monthlyTrend(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	months := df.Col(file.ColMonth).Records()
	depRaw := df.Col(file.ColDepartureDelay).Float()
	arrRaw := df.Col(file.ColArrivalDelay).Float()

	type bucket struct {
		flights int
		depVals []float64
		arrVals []float64
	}
	buckets := make(map[int]*bucket)
	for i, m := range months {
		mon, err := strconv.Atoi(m)
		if err != nil {
			continue // 月份缺失的记录不参与趋势
		}
		b, ok := buckets[mon]
		if !ok {
			b = &bucket{}
			buckets[mon] = b
		}
		b.flights++
		if !math.IsNaN(depRaw[i]) {
			b.depVals = append(b.depVals, depRaw[i])
		}
		if !math.IsNaN(arrRaw[i]) {
			b.arrVals = append(b.arrVals, arrRaw[i])
		}
	}

	keys := make([]int, 0, len(buckets))
	for m := range buckets {
		keys = append(keys, m)
	}
	sort.Ints(keys)

	var (
		monthCol []int
		flights  []int
		depMean  []float64
		arrMean  []float64
	)
	for _, m := range keys {
		b := buckets[m]
		monthCol = append(monthCol, m)
		flights = append(flights, b.flights)
		depMean = append(depMean, stat.Mean(b.depVals, nil))
		arrMean = append(arrMean, stat.Mean(b.arrVals, nil))
	}

	return dataframe.New(
		series.New(monthCol, series.Int, file.ColMonth),
		series.New(flights, series.Int, "FLIGHTS"),
		series.New(depMean, series.Float, "DEPARTURE_DELAY_MEAN"),
		series.New(arrMean, series.Float, "ARRIVAL_DELAY_MEAN"),
	), nil
}
