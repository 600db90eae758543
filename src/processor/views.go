// views.go
package processor

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// 六个导航视图的标识
const (
	ViewOverview    = "overview"    // 总览
	ViewPerformance = "performance" // 航司表现
	ViewTemporal    = "temporal"    // 时间分析
	ViewPatterns    = "patterns"    // 延误模式
	ViewRoutes      = "routes"      // 航线分析
	ViewSummary     = "summary"     // 统计摘要
)

// ViewNames 返回全部视图标识, 按导航顺序
func ViewNames() []string {
	return []string{
		ViewOverview,
		ViewPerformance,
		ViewTemporal,
		ViewPatterns,
		ViewRoutes,
		ViewSummary,
	}
}

// Table 视图结果中的一张命名表格
type Table struct {
	Name  string
	Frame dataframe.DataFrame
}

// ViewResult 单个视图的全部聚合结果
// 每次请求重新计算, 渲染后即丢弃, 除数据集本身外没有任何缓存
type ViewResult struct {
	View       string
	SampleSize int // 总览视图用全量数据, 此处为0
	Tables     []Table
}

// Pipeline 把加载好的数据集绑定到六个视图的聚合配方上
// 所有视图都是 (数据集, 采样数量, 固定种子) 的纯函数
type Pipeline struct {
	dataset dataframe.DataFrame
	seed    int64
}

func NewPipeline(dataset dataframe.DataFrame) *Pipeline {
	return &Pipeline{
		dataset: dataset,
		seed:    DefaultSeed,
	}
}

// DatasetSize 数据集总记录数
func (p *Pipeline) DatasetSize() int {
	return p.dataset.Nrow()
}

// Render 计算指定视图的结果表格
// 采样数量越界或视图名非法时在任何聚合开始前返回错误
func (p *Pipeline) Render(view string, sampleSize int) (*ViewResult, error) {
	switch view {
	case ViewOverview:
		return p.renderOverview()
	case ViewPerformance, ViewTemporal, ViewPatterns, ViewRoutes, ViewSummary:
		// 其余视图都在同一份确定性样本上计算
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownView, view)
	}

	sample, err := Sample(p.dataset, sampleSize, p.seed)
	if err != nil {
		return nil, err
	}

	result := &ViewResult{View: view, SampleSize: sampleSize}
	switch view {
	case ViewPerformance:
		metrics, err := AirlinePerformance(sample)
		if err != nil {
			return nil, err
		}
		result.Tables = []Table{{"airline_metrics", metrics}}

	case ViewTemporal:
		hourly, err := HourlyDelays(sample)
		if err != nil {
			return nil, err
		}
		weekday, err := WeekdayDelayDistribution(sample)
		if err != nil {
			return nil, err
		}
		result.Tables = []Table{
			{"hourly_delays", hourly},
			{"weekday_delay_distribution", weekday},
		}

	case ViewPatterns:
		hist, err := DelayHistogram(sample)
		if err != nil {
			return nil, err
		}
		corr, err := DelayCorrelation(sample)
		if err != nil {
			return nil, err
		}
		result.Tables = []Table{
			{"delay_histogram", hist.Frame()},
			{"delay_correlation", corr.Frame()},
		}

	case ViewRoutes:
		routes, err := TopRoutes(sample)
		if err != nil {
			return nil, err
		}
		result.Tables = []Table{{"top_routes", routes}}

	case ViewSummary:
		corr, err := NumericCorrelation(sample)
		if err != nil {
			return nil, err
		}
		desc, err := Describe(sample)
		if err != nil {
			return nil, err
		}
		result.Tables = []Table{
			{"correlation", corr.Frame()},
			{"describe", desc},
		}
	}

	return result, nil
}

func (p *Pipeline) renderOverview() (*ViewResult, error) {
	stats, err := Overview(p.dataset)
	if err != nil {
		return nil, err
	}

	metrics := dataframe.New(
		series.New([]int{stats.TotalFlights}, series.Int, "TOTAL_FLIGHTS"),
		series.New([]float64{stats.AvgDepartureDelay}, series.Float, "AVG_DEPARTURE_DELAY"),
		series.New([]float64{stats.AvgArrivalDelay}, series.Float, "AVG_ARRIVAL_DELAY"),
	)

	return &ViewResult{
		View: ViewOverview,
		Tables: []Table{
			{"metrics", metrics},
			{"airline_counts", stats.AirlineCounts},
			{"monthly_trend", stats.MonthlyTrend},
		},
	}, nil
}
