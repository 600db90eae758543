package processor

import (
	"testing"
)

func TestHourlyDelays(t *testing.T) {
	df := loadFlights(t, [][]string{
		{"AA", "1", "ANC", "SEA", "600", "10", "0", "100", "1", "1"},
		{"AA", "2", "ANC", "SEA", "600", "20", "0", "100", "1", "1"},
		{"DL", "3", "SFO", "MSP", "930", "-6", "0", "100", "1", "1"},
		{"UA", "4", "SFO", "ORD", "2330", "30", "0", "100", "1", "1"},
	})

	hourly, err := HourlyDelays(df)
	if err != nil {
		t.Fatalf("时刻聚合失败: %v", err)
	}

	if hourly.Nrow() != 3 {
		t.Fatalf("时刻分组数 = %d, 期望 3", hourly.Nrow())
	}
	// 按时刻升序
	first, _ := hourly.Col("SCHEDULED_DEPARTURE").Elem(0).Int()
	if first != 600 {
		t.Errorf("首行时刻 = %d", first)
	}
	if got := hourly.Col("DEPARTURE_DELAY_MEAN").Elem(0).Float(); !approx(got, 15) {
		t.Errorf("600时刻平均延误 = %v", got)
	}
	last, _ := hourly.Col("SCHEDULED_DEPARTURE").Elem(2).Int()
	if last != 2330 {
		t.Errorf("末行时刻 = %d", last)
	}
}

func TestWeekdayDelayDistribution(t *testing.T) {
	df := loadFlights(t, [][]string{
		{"AA", "1", "ANC", "SEA", "5", "0", "0", "100", "1", "1"},
		{"AA", "2", "ANC", "SEA", "5", "0", "10", "100", "1", "1"},
		{"AA", "3", "ANC", "SEA", "5", "0", "20", "100", "1", "1"},
		{"AA", "4", "ANC", "SEA", "5", "0", "30", "100", "1", "1"},
		{"AA", "5", "ANC", "SEA", "5", "0", "40", "100", "1", "1"},
		{"DL", "6", "SFO", "MSP", "5", "0", "-7", "100", "4", "1"},
	})

	dist, err := WeekdayDelayDistribution(df)
	if err != nil {
		t.Fatalf("星期聚合失败: %v", err)
	}

	if dist.Nrow() != 2 {
		t.Fatalf("天数 = %d, 期望 2", dist.Nrow())
	}

	// 周一: [0 10 20 30 40] 的箱线统计
	day, _ := dist.Col("DAY_OF_WEEK").Elem(0).Int()
	if day != 1 {
		t.Fatalf("首行星期 = %d", day)
	}
	if got := dist.Col("MIN").Elem(0).Float(); !approx(got, 0) {
		t.Errorf("MIN = %v", got)
	}
	if got := dist.Col("MEDIAN").Elem(0).Float(); !approx(got, 20) {
		t.Errorf("MEDIAN = %v", got)
	}
	if got := dist.Col("MAX").Elem(0).Float(); !approx(got, 40) {
		t.Errorf("MAX = %v", got)
	}
	q1 := dist.Col("Q1").Elem(0).Float()
	q3 := dist.Col("Q3").Elem(0).Float()
	if q1 < 0 || q1 > 20 || q3 < 20 || q3 > 40 {
		t.Errorf("四分位越界: Q1=%v Q3=%v", q1, q3)
	}

	// 周四只有一条记录: 箱线统计退化为同一个值
	if got := dist.Col("MIN").Elem(1).Float(); !approx(got, -7) {
		t.Errorf("单值组MIN = %v", got)
	}
	if got := dist.Col("MAX").Elem(1).Float(); !approx(got, -7) {
		t.Errorf("单值组MAX = %v", got)
	}
}

func TestWeekdayDelayDistributionEvenGroup(t *testing.T) {
	// 偶数个值 [1 2 3 4]: 中位数是中间两值的均值,
	// 四分位按相邻观测线性插值
	df := loadFlights(t, [][]string{
		{"AA", "1", "ANC", "SEA", "5", "0", "1", "100", "2", "1"},
		{"AA", "2", "ANC", "SEA", "5", "0", "2", "100", "2", "1"},
		{"AA", "3", "ANC", "SEA", "5", "0", "3", "100", "2", "1"},
		{"AA", "4", "ANC", "SEA", "5", "0", "4", "100", "2", "1"},
	})

	dist, err := WeekdayDelayDistribution(df)
	if err != nil {
		t.Fatalf("星期聚合失败: %v", err)
	}

	if got := dist.Col("MEDIAN").Elem(0).Float(); !approx(got, 2.5) {
		t.Errorf("MEDIAN = %v, 期望 2.5", got)
	}
	if got := dist.Col("Q1").Elem(0).Float(); !approx(got, 1.75) {
		t.Errorf("Q1 = %v, 期望 1.75", got)
	}
	if got := dist.Col("Q3").Elem(0).Float(); !approx(got, 3.25) {
		t.Errorf("Q3 = %v, 期望 3.25", got)
	}
}
