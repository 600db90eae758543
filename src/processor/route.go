// route.go
package processor

import (
	"math"
	"sort"

	"FlightAnalytics/src/datasource/file"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"
)

// TopRouteLimit 航线视图最多展示的航线数
const TopRouteLimit = 10

type routeAgg struct {
	origin   string
	dest     string
	arrVals  []float64
	depVals  []float64
	distance float64 // 该航线第一条有效距离
	hasDist  bool
}

// TopRoutes 按(出发机场, 到达机场)分组的航线表现
// 每组计算平均到达延误, 平均起飞延误和首个观测到的距离,
// 取平均到达延误最高的前10条; 并列时保持样本中的出现顺序(稳定排序),
// 没有有效到达延误的航线排在最后
func TopRoutes(sample dataframe.DataFrame) (dataframe.DataFrame, error) {
	err := requireColumns(sample,
		file.ColOriginAirport, file.ColDestinationAirport,
		file.ColDepartureDelay, file.ColDistance)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	if _, err := floatColumn(sample, file.ColArrivalDelay); err != nil {
		return dataframe.DataFrame{}, err
	}

	origins := sample.Col(file.ColOriginAirport).Records()
	dests := sample.Col(file.ColDestinationAirport).Records()
	arrRaw := sample.Col(file.ColArrivalDelay).Float()
	depRaw := sample.Col(file.ColDepartureDelay).Float()
	distRaw := sample.Col(file.ColDistance).Float()

	// 不用GroupBy: map遍历顺序随机, 这里需要按出现顺序稳定排序
	byKey := make(map[string]*routeAgg)
	var order []string
	for i := range origins {
		key := origins[i] + "→" + dests[i]
		agg, ok := byKey[key]
		if !ok {
			agg = &routeAgg{origin: origins[i], dest: dests[i]}
			byKey[key] = agg
			order = append(order, key)
		}
		if !math.IsNaN(arrRaw[i]) {
			agg.arrVals = append(agg.arrVals, arrRaw[i])
		}
		if !math.IsNaN(depRaw[i]) {
			agg.depVals = append(agg.depVals, depRaw[i])
		}
		if !agg.hasDist && !math.IsNaN(distRaw[i]) {
			agg.distance = distRaw[i]
			agg.hasDist = true
		}
	}

	routes := make([]*routeAgg, len(order))
	for i, key := range order {
		routes[i] = byKey[key]
	}

	// 平均到达延误降序, NaN(无有效值)沉底
	sort.SliceStable(routes, func(i, j int) bool {
		mi := meanOrNaN(routes[i].arrVals)
		mj := meanOrNaN(routes[j].arrVals)
		if math.IsNaN(mi) {
			return false
		}
		if math.IsNaN(mj) {
			return true
		}
		return mi > mj
	})

	if len(routes) > TopRouteLimit {
		routes = routes[:TopRouteLimit]
	}

	var (
		originCol []string
		destCol   []string
		arrMean   []float64
		depMean   []float64
		distCol   []float64
	)
	for _, r := range routes {
		originCol = append(originCol, r.origin)
		destCol = append(destCol, r.dest)
		arrMean = append(arrMean, meanOrNaN(r.arrVals))
		depMean = append(depMean, meanOrNaN(r.depVals))
		if r.hasDist {
			distCol = append(distCol, r.distance)
		} else {
			distCol = append(distCol, math.NaN())
		}
	}

	return dataframe.New(
		series.New(originCol, series.String, file.ColOriginAirport),
		series.New(destCol, series.String, file.ColDestinationAirport),
		series.New(arrMean, series.Float, "ARRIVAL_DELAY_MEAN"),
		series.New(depMean, series.Float, "DEPARTURE_DELAY_MEAN"),
		series.New(distCol, series.Float, file.ColDistance),
	), nil
}

func meanOrNaN(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	return stat.Mean(vals, nil)
}
