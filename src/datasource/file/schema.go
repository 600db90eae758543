// schema.go
package file

import (
	"github.com/go-gota/gota/series"
)

// 数据集的规范列名
// 读取后所有表头统一重命名为这些名称, 下游聚合只认规范列名
const (
	ColAirline            = "AIRLINE"
	ColFlightNumber       = "FLIGHT_NUMBER"
	ColOriginAirport      = "ORIGIN_AIRPORT"
	ColDestinationAirport = "DESTINATION_AIRPORT"
	ColScheduledDeparture = "SCHEDULED_DEPARTURE"
	ColDepartureDelay     = "DEPARTURE_DELAY"
	ColArrivalDelay       = "ARRIVAL_DELAY"
	ColDistance           = "DISTANCE"
	ColDayOfWeek          = "DAY_OF_WEEK"
	ColMonth              = "MONTH"
)

// Column 声明数据集中一列的规范名与类型
// 列类型属于声明式结构, 加载时校验, 不在聚合阶段临时推断
type Column struct {
	Name string
	Type series.Type
}

// Schema 航班记录的固定列结构
// 延误时间为有符号分钟数(提前出发为负), 距离为正数,
// SCHEDULED_DEPARTURE 为编码后的当日时刻(HHMM)
var Schema = []Column{
	{ColAirline, series.String},
	{ColFlightNumber, series.Int},
	{ColOriginAirport, series.String},
	{ColDestinationAirport, series.String},
	{ColScheduledDeparture, series.Int},
	{ColDepartureDelay, series.Float},
	{ColArrivalDelay, series.Float},
	{ColDistance, series.Float},
	{ColDayOfWeek, series.Int},
	{ColMonth, series.Int},
}

// SchemaType 返回规范列对应的声明类型, 未声明的列返回String
func SchemaType(name string) series.Type {
	for _, col := range Schema {
		if col.Name == name {
			return col.Type
		}
	}
	return series.String
}

// NumericColumns 返回声明为数值类型的规范列名
func NumericColumns() []string {
	var cols []string
	for _, col := range Schema {
		if col.Type == series.Int || col.Type == series.Float {
			cols = append(cols, col.Name)
		}
	}
	return cols
}
