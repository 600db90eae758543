package processor

import (
	"math"
	"testing"

	"FlightAnalytics/src/datasource/file"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// flightHeader 测试数据的表头, 与Schema规范列名一致
var flightHeader = []string{
	file.ColAirline,
	file.ColFlightNumber,
	file.ColOriginAirport,
	file.ColDestinationAirport,
	file.ColScheduledDeparture,
	file.ColDepartureDelay,
	file.ColArrivalDelay,
	file.ColDistance,
	file.ColDayOfWeek,
	file.ColMonth,
}

// loadFlights 按Schema类型构造测试数据集
func loadFlights(t *testing.T, rows [][]string) dataframe.DataFrame {
	t.Helper()

	types := make(map[string]series.Type)
	for _, name := range flightHeader {
		types[name] = file.SchemaType(name)
	}

	records := append([][]string{flightHeader}, rows...)
	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(types),
	)
	if df.Error() != nil {
		t.Fatalf("构造测试数据失败: %v", df.Error())
	}
	return df
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
