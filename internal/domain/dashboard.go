package domain

// WeeklyTotal é o total de unidades vendidas em uma semana (início na segunda)
type WeeklyTotal struct {
	WeekStart string  `json:"week_start"`
	Units     float64 `json:"units"`
}

// TopSKUItem é uma posição do ranking de SKUs por volume
type TopSKUItem struct {
	SKU   *SKU    `json:"sku"`
	Units float64 `json:"units"`
}

// DashboardResponse agrega as métricas exibidas no painel principal
type DashboardResponse struct {
	TotalUnitsAllTime float64       `json:"total_units_all_time"`
	CurrentWeekUnits  float64       `json:"current_week_units"`
	WeekOverWeek      *float64      `json:"week_over_week"` // nil quando indefinido
	ActiveSKUs        int           `json:"active_skus"`
	StoreCount        int           `json:"store_count"`
	WeeklyTrend       []WeeklyTotal `json:"weekly_trend"`
	TopSKUs           []TopSKUItem  `json:"top_skus"`
}

// StoreStatsItem é o desempenho consolidado de uma loja.
// Lojas sem fatos aparecem com totais zerados.
type StoreStatsItem struct {
	Store      *Store  `json:"store"`
	TotalUnits float64 `json:"total_units"`
	SKUCount   int     `json:"sku_count"`
}

// RetailerRollupItem é o desempenho consolidado por bandeira de varejo
type RetailerRollupItem struct {
	Retailer   string  `json:"retailer"`
	TotalUnits float64 `json:"total_units"`
	StoreCount int     `json:"store_count"`
}

// StoreStatsResponse agrega as visões por loja e por bandeira
type StoreStatsResponse struct {
	Stores    []StoreStatsItem     `json:"stores"`
	Retailers []RetailerRollupItem `json:"retailers"`
}

// SKUVelocityItem é a estatística de giro de um SKU: total de unidades,
// lojas distintas, semanas ativas e média por semana ativa
type SKUVelocityItem struct {
	SKU        *SKU    `json:"sku"`
	TotalUnits float64 `json:"total_units"`
	StoreCount int     `json:"store_count"`
	Weeks      int     `json:"weeks"`
	AvgPerWeek float64 `json:"avg_per_week"`
}
