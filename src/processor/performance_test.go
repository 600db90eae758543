package processor

import (
	"testing"
)

func TestAirlinePerformanceGroups(t *testing.T) {
	df := loadFlights(t, [][]string{
		{"AA", "1", "ANC", "SEA", "5", "10", "20", "1000", "1", "1"},
		{"AA", "2", "ANC", "SEA", "5", "20", "40", "2000", "1", "1"},
		{"DL", "3", "SFO", "MSP", "5", "-5", "-10", "1500", "1", "1"},
		{"UA", "4", "SFO", "ORD", "5", "0", "0", "1800", "1", "1"},
		{"UA", "5", "SFO", "ORD", "5", "8", "4", "1800", "1", "1"},
	})

	metrics, err := AirlinePerformance(df)
	if err != nil {
		t.Fatalf("航司聚合失败: %v", err)
	}

	// 样本中每个航空公司一行
	if metrics.Nrow() != 3 {
		t.Fatalf("分组数 = %d, 期望 3", metrics.Nrow())
	}

	// 各组航班数之和等于样本大小
	total := 0
	for i := 0; i < metrics.Nrow(); i++ {
		n, _ := metrics.Col("FLIGHTS").Elem(i).Int()
		total += n
	}
	if total != df.Nrow() {
		t.Errorf("分组航班数之和 = %d, 样本大小 = %d", total, df.Nrow())
	}

	// AA: 起飞延误均值 15, 标准差 sqrt(50) ≈ 7.07 (保留两位)
	if got := metrics.Col("DEPARTURE_DELAY_MEAN").Elem(0).Float(); !approx(got, 15) {
		t.Errorf("AA 起飞延误均值 = %v", got)
	}
	if got := metrics.Col("DEPARTURE_DELAY_STD").Elem(0).Float(); !approx(got, 7.07) {
		t.Errorf("AA 起飞延误标准差 = %v, 期望 7.07", got)
	}
	if got := metrics.Col("DISTANCE_MEAN").Elem(0).Float(); !approx(got, 1500) {
		t.Errorf("AA 平均距离 = %v", got)
	}
}

func TestAirlinePerformanceSingleAirline(t *testing.T) {
	// 整个样本只有一家航空公司: 恰好一个分组,
	// 单值组的标准差按约定为0而不是NaN
	df := loadFlights(t, [][]string{
		{"NK", "1", "LAS", "MSP", "5", "7", "-17", "1299", "1", "1"},
	})

	metrics, err := AirlinePerformance(df)
	if err != nil {
		t.Fatal(err)
	}

	if metrics.Nrow() != 1 {
		t.Fatalf("分组数 = %d, 期望 1", metrics.Nrow())
	}
	if got := metrics.Col("DEPARTURE_DELAY_STD").Elem(0).Float(); got != 0 {
		t.Errorf("单值组标准差 = %v, 约定为 0", got)
	}
	if got := metrics.Col("ARRIVAL_DELAY_STD").Elem(0).Float(); got != 0 {
		t.Errorf("单值组标准差 = %v, 约定为 0", got)
	}
}
