// delaypattern.go
package processor

import (
	"math"

	"FlightAnalytics/src/datasource/file"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// HistogramBins 起飞延误分布直方图的固定分箱数
const HistogramBins = 50

// Histogram 等宽分箱的频数分布
// Edges 长度为箱数+1, Counts[i] 统计 [Edges[i], Edges[i+1]) 的记录数,
// 最后一箱为闭区间, 观测最大值计入其中
type Histogram struct {
	Edges  []float64
	Counts []int
}

// Frame 将直方图转为表格形式
func (h *Histogram) Frame() dataframe.DataFrame {
	bins := len(h.Counts)
	starts := make([]float64, bins)
	ends := make([]float64, bins)
	for i := 0; i < bins; i++ {
		starts[i] = h.Edges[i]
		ends[i] = h.Edges[i+1]
	}
	return dataframe.New(
		series.New(starts, series.Float, "BIN_START"),
		series.New(ends, series.Float, "BIN_END"),
		series.New(h.Counts, series.Int, "COUNT"),
	)
}

// DelayHistogram 起飞延误的50箱频数分布
func DelayHistogram(sample dataframe.DataFrame) (*Histogram, error) {
	vals, err := floatColumn(sample, file.ColDepartureDelay)
	if err != nil {
		return nil, err
	}

	min := floats.Min(vals)
	max := floats.Max(vals)
	// 所有值相同时没有天然的分箱宽度, 人为撑开一个区间
	if min == max {
		min -= 0.5
		max += 0.5
	}

	edges := make([]float64, HistogramBins+1)
	floats.Span(edges, min, max)

	width := (max - min) / HistogramBins
	counts := make([]int, HistogramBins)
	for _, v := range vals {
		idx := int((v - min) / width)
		if idx >= HistogramBins {
			idx = HistogramBins - 1
		}
		counts[idx]++
	}

	return &Histogram{Edges: edges, Counts: counts}, nil
}

// CorrMatrix 皮尔逊相关系数矩阵
// 矩阵对称; 方差非零的列对角线为1, 零方差列的相关系数无定义(NaN)
type CorrMatrix struct {
	Columns []string
	Values  [][]float64
}

// Frame 将相关矩阵转为表格形式, 首列为变量名
func (c *CorrMatrix) Frame() dataframe.DataFrame {
	cols := []series.Series{
		series.New(c.Columns, series.String, "VARIABLE"),
	}
	for j, name := range c.Columns {
		vals := make([]float64, len(c.Columns))
		for i := range c.Columns {
			vals[i] = c.Values[i][j]
		}
		cols = append(cols, series.New(vals, series.Float, name))
	}
	return dataframe.New(cols...)
}

// DelayCorrelation 起飞延误/到达延误/距离三者的相关矩阵(热力图数据)
func DelayCorrelation(sample dataframe.DataFrame) (*CorrMatrix, error) {
	return correlationMatrix(sample, []string{
		file.ColDepartureDelay,
		file.ColArrivalDelay,
		file.ColDistance,
	})
}

// correlationMatrix 对列集合两两计算相关系数
// 缺失值按对剔除: 每一对列只使用双方都有效的行
func correlationMatrix(df dataframe.DataFrame, cols []string) (*CorrMatrix, error) {
	raw := make([][]float64, len(cols))
	for i, name := range cols {
		if _, err := floatColumn(df, name); err != nil {
			return nil, err
		}
		raw[i] = df.Col(name).Float()
	}

	n := len(cols)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var xs, ys []float64
			for k := range raw[i] {
				if math.IsNaN(raw[i][k]) || math.IsNaN(raw[j][k]) {
					continue
				}
				xs = append(xs, raw[i][k])
				ys = append(ys, raw[j][k])
			}

			var r float64
			switch {
			case len(xs) < 2:
				r = math.NaN()
			case i == j:
				if stat.Variance(xs, nil) > 0 {
					r = 1
				} else {
					r = math.NaN()
				}
			default:
				r = stat.Correlation(xs, ys, nil)
			}
			values[i][j] = r
			values[j][i] = r
		}
	}

	return &CorrMatrix{Columns: cols, Values: values}, nil
}
