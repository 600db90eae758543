// temporal.go
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

// HourlyDelays 按计划起飞时刻分组的平均起飞延误(折线图数据)
// 结果按时刻升序
func HourlyDelays(sample dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := requireColumns(sample, file.ColScheduledDeparture); err != nil {
		return dataframe.DataFrame{}, err
	}
	if _, err := floatColumn(sample, file.ColDepartureDelay); err != nil {
		return dataframe.DataFrame{}, err
	}

	times := sample.Col(file.ColScheduledDeparture).Records()
	delays := sample.Col(file.ColDepartureDelay).Float()

	buckets := make(map[int][]float64)
	for i, t := range times {
		key, err := strconv.Atoi(t)
		if err != nil {
			continue
		}
		if !math.IsNaN(delays[i]) {
			buckets[key] = append(buckets[key], delays[i])
		}
	}

	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var (
		timeCol []int
		meanCol []float64
	)
	for _, k := range keys {
		timeCol = append(timeCol, k)
		meanCol = append(meanCol, stat.Mean(buckets[k], nil))
	}

	return dataframe.New(
		series.New(timeCol, series.Int, file.ColScheduledDeparture),
		series.New(meanCol, series.Float, "DEPARTURE_DELAY_MEAN"),
	), nil
}

// WeekdayDelayDistribution 按星期几汇总到达延误的分布(箱线图数据)
// 每天一行: 最小值, 下四分位, 中位数, 上四分位, 最大值
// 没有任何有效到达延误的天不输出
func WeekdayDelayDistribution(sample dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := requireColumns(sample, file.ColDayOfWeek); err != nil {
		return dataframe.DataFrame{}, err
	}
	if _, err := floatColumn(sample, file.ColArrivalDelay); err != nil {
		return dataframe.DataFrame{}, err
	}

	days := sample.Col(file.ColDayOfWeek).Records()
	delays := sample.Col(file.ColArrivalDelay).Float()

	buckets := make(map[int][]float64)
	for i, d := range days {
		day, err := strconv.Atoi(d)
		if err != nil {
			continue
		}
		if !math.IsNaN(delays[i]) {
			buckets[day] = append(buckets[day], delays[i])
		}
	}

	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var (
		dayCol []int
		minCol []float64
		q1Col  []float64
		medCol []float64
		q3Col  []float64
		maxCol []float64
	)
	for _, k := range keys {
		vals := buckets[k]
		sort.Float64s(vals)
		dayCol = append(dayCol, k)
		minCol = append(minCol, vals[0])
		q1Col = append(q1Col, quantile(vals, 0.25))
		medCol = append(medCol, quantile(vals, 0.5))
		q3Col = append(q3Col, quantile(vals, 0.75))
		maxCol = append(maxCol, vals[len(vals)-1])
	}

	return dataframe.New(
		series.New(dayCol, series.Int, file.ColDayOfWeek),
		series.New(minCol, series.Float, "MIN"),
		series.New(q1Col, series.Float, "Q1"),
		series.New(medCol, series.Float, "MEDIAN"),
		series.New(q3Col, series.Float, "Q3"),
		series.New(maxCol, series.Float, "MAX"),
	), nil
}

// quantile 线性插值分位数(R-7), 输入必须已升序排序
// 位置 h = (n-1)*p, 在相邻观测值之间线性插值,
// 偶数个值的中位数是中间两值的均值
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := float64(n-1) * p
	i := int(math.Floor(h))
	if i >= n-1 {
		return sorted[n-1]
	}
	return sorted[i] + (h-float64(i))*(sorted[i+1]-sorted[i])
}
