// performance.go
package processor

import (
	"sort"

	"FlightAnalytics/src/datasource/file"
	"FlightAnalytics/src/utils"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"
)

// AirlinePerformance 按航空公司汇总样本的延误表现
// 每个出现过的航空公司一行: 航班数, 起飞/到达延误的均值与标准差,
// 平均飞行距离, 全部保留两位小数
//
// 约定: 单条记录的分组标准差记为0.00, 不输出NaN
func AirlinePerformance(sample dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := requireColumns(sample, file.ColAirline); err != nil {
		return dataframe.DataFrame{}, err
	}
	// 必需数值列先整体校验, 全空时直接中止本视图
	for _, col := range []string{file.ColDepartureDelay, file.ColArrivalDelay, file.ColDistance} {
		if _, err := floatColumn(sample, col); err != nil {
			return dataframe.DataFrame{}, err
		}
	}

	groups := sample.GroupBy(file.ColAirline).GetGroups()

	// map遍历顺序随机, 标签从分组数据本身取出后排序
	airlines := make([]string, 0, len(groups))
	byAirline := make(map[string]dataframe.DataFrame, len(groups))
	for _, g := range groups {
		name := g.Col(file.ColAirline).Elem(0).String()
		airlines = append(airlines, name)
		byAirline[name] = g
	}
	sort.Strings(airlines)

	var (
		flights []int
		depMean []float64
		depStd  []float64
		arrMean []float64
		arrStd  []float64
		dist    []float64
	)
	for _, name := range airlines {
		g := byAirline[name]
		dep := dropNaN(g.Col(file.ColDepartureDelay).Float())
		arr := dropNaN(g.Col(file.ColArrivalDelay).Float())
		d := dropNaN(g.Col(file.ColDistance).Float())

		flights = append(flights, g.Nrow())
		depMean = append(depMean, utils.Round2(stat.Mean(dep, nil)))
		depStd = append(depStd, utils.Round2(sampleStd(dep)))
		arrMean = append(arrMean, utils.Round2(stat.Mean(arr, nil)))
		arrStd = append(arrStd, utils.Round2(sampleStd(arr)))
		dist = append(dist, utils.Round2(stat.Mean(d, nil)))
	}

	return dataframe.New(
		series.New(airlines, series.String, file.ColAirline),
		series.New(flights, series.Int, "FLIGHTS"),
		series.New(depMean, series.Float, "DEPARTURE_DELAY_MEAN"),
		series.New(depStd, series.Float, "DEPARTURE_DELAY_STD"),
		series.New(arrMean, series.Float, "ARRIVAL_DELAY_MEAN"),
		series.New(arrStd, series.Float, "ARRIVAL_DELAY_STD"),
		series.New(dist, series.Float, "DISTANCE_MEAN"),
	), nil
}

// sampleStd 样本标准差(n-1), 不足两个值时按约定返回0
func sampleStd(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	return stat.StdDev(vals, nil)
}
