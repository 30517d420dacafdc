// Package reporting calcula as visões derivadas do conjunto de fatos de
// vendas: tendência semanal, variação semana a semana, ranking de SKUs,
// desempenho por loja e bandeira, e giro por SKU. Todas as funções são puras
// e determinísticas: empates preservam a ordem de entrada.
package reporting

import (
	"sort"

	"github.com/vfg2006/retail-velocity-api/internal/domain"
	"github.com/vfg2006/retail-velocity-api/pkg/utils"
)

// WeeklyTotals agrupa os fatos por semana e soma as unidades, em ordem
// crescente de data. Com lastN > 0, retorna apenas as N semanas mais
// recentes.
func WeeklyTotals(reports []*domain.SalesReport, lastN int) []domain.WeeklyTotal {
	byWeek := make(map[string]float64)
	for _, r := range reports {
		byWeek[r.WeekStart] += r.UnitsSold
	}

	weeks := make([]string, 0, len(byWeek))
	for week := range byWeek {
		weeks = append(weeks, week)
	}
	sort.Strings(weeks)

	if lastN > 0 && len(weeks) > lastN {
		weeks = weeks[len(weeks)-lastN:]
	}

	totals := make([]domain.WeeklyTotal, 0, len(weeks))
	for _, week := range weeks {
		totals = append(totals, domain.WeeklyTotal{WeekStart: week, Units: byWeek[week]})
	}
	return totals
}

// WeekOverWeekChange calcula a variação percentual entre as duas semanas mais
// recentes com dados. Retorna nil quando há menos de duas semanas ou quando a
// semana anterior soma zero — nunca divide por zero.
func WeekOverWeekChange(reports []*domain.SalesReport) *float64 {
	totals := WeeklyTotals(reports, 0)
	if len(totals) < 2 {
		return nil
	}

	thisWeek := totals[len(totals)-1].Units
	lastWeek := totals[len(totals)-2].Units
	if lastWeek == 0 {
		return nil
	}

	change := (thisWeek - lastWeek) / lastWeek * 100
	return &change
}

// TopSKUs ranqueia os SKUs por volume total, decrescente. A ordenação é
// estável: empates mantêm a ordem de primeira ocorrência nos fatos, então
// permutar as linhas de entrada não muda o ranking. SKUs sem fatos ficam de
// fora. n <= 0 usa o padrão de 5 posições.
func TopSKUs(reports []*domain.SalesReport, skus []*domain.SKU, n int) []domain.TopSKUItem {
	if n <= 0 {
		n = 5
	}

	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, r := range reports {
		if _, ok := totals[r.SKUID]; !ok {
			order = append(order, r.SKUID)
		}
		totals[r.SKUID] += r.UnitsSold
	}

	skuMap := make(map[string]*domain.SKU, len(skus))
	for _, sku := range skus {
		skuMap[sku.ID] = sku
	}

	items := make([]domain.TopSKUItem, 0, len(order))
	for _, skuID := range order {
		sku, ok := skuMap[skuID]
		if !ok {
			continue
		}
		items = append(items, domain.TopSKUItem{SKU: sku, Units: totals[skuID]})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Units > items[j].Units
	})

	if len(items) > n {
		items = items[:n]
	}
	return items
}

// StoreStats consolida unidades e SKUs distintos por loja. Toda loja
// conhecida aparece, mesmo sem fatos (com totais zerados). O resultado vem em
// ordem decrescente de unidades, estável sobre a ordem de entrada das lojas.
func StoreStats(reports []*domain.SalesReport, stores []*domain.Store) []domain.StoreStatsItem {
	type storeAgg struct {
		total float64
		skus  map[string]struct{}
	}

	byStore := make(map[string]*storeAgg)
	for _, r := range reports {
		agg, ok := byStore[r.StoreID]
		if !ok {
			agg = &storeAgg{skus: make(map[string]struct{})}
			byStore[r.StoreID] = agg
		}
		agg.total += r.UnitsSold
		agg.skus[r.SKUID] = struct{}{}
	}

	items := make([]domain.StoreStatsItem, 0, len(stores))
	for _, store := range stores {
		item := domain.StoreStatsItem{Store: store}
		if agg, ok := byStore[store.ID]; ok {
			item.TotalUnits = agg.total
			item.SKUCount = len(agg.skus)
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].TotalUnits > items[j].TotalUnits
	})

	return items
}

// RetailerRollup agrupa as estatísticas de lojas por bandeira. A ordem das
// bandeiras segue a primeira ocorrência na lista de lojas já ordenada e o
// resultado final vem em ordem decrescente de unidades, de forma estável.
func RetailerRollup(storeStats []domain.StoreStatsItem) []domain.RetailerRollupItem {
	totals := make(map[string]*domain.RetailerRollupItem)
	order := make([]string, 0)

	for _, item := range storeStats {
		retailer := item.Store.Retailer
		if retailer == "" {
			retailer = "Other"
		}

		rollup, ok := totals[retailer]
		if !ok {
			rollup = &domain.RetailerRollupItem{Retailer: retailer}
			totals[retailer] = rollup
			order = append(order, retailer)
		}
		rollup.TotalUnits += item.TotalUnits
		rollup.StoreCount++
	}

	items := make([]domain.RetailerRollupItem, 0, len(order))
	for _, retailer := range order {
		items = append(items, *totals[retailer])
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].TotalUnits > items[j].TotalUnits
	})

	return items
}

// SKUVelocity calcula as estatísticas de giro de cada SKU conhecido: total de
// unidades, lojas distintas, semanas ativas e média por semana ativa (0
// quando não há semana ativa). O resultado segue a ordem da lista de SKUs.
func SKUVelocity(reports []*domain.SalesReport, skus []*domain.SKU) []domain.SKUVelocityItem {
	type skuAgg struct {
		total  float64
		stores map[string]struct{}
		weeks  map[string]struct{}
	}

	bySKU := make(map[string]*skuAgg)
	for _, r := range reports {
		agg, ok := bySKU[r.SKUID]
		if !ok {
			agg = &skuAgg{stores: make(map[string]struct{}), weeks: make(map[string]struct{})}
			bySKU[r.SKUID] = agg
		}
		agg.total += r.UnitsSold
		agg.stores[r.StoreID] = struct{}{}
		agg.weeks[r.WeekStart] = struct{}{}
	}

	items := make([]domain.SKUVelocityItem, 0, len(skus))
	for _, sku := range skus {
		item := domain.SKUVelocityItem{SKU: sku}
		if agg, ok := bySKU[sku.ID]; ok {
			item.TotalUnits = agg.total
			item.StoreCount = len(agg.stores)
			item.Weeks = len(agg.weeks)
			if item.Weeks > 0 {
				item.AvgPerWeek = utils.RoundWithTwoDecimalPlace(agg.total / float64(item.Weeks))
			}
		}
		items = append(items, item)
	}

	return items
}
