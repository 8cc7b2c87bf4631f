package service

import (
	"context"
	"sort"
	"time"

	"github.com/nasaem/pos-api/internal/domain/entity"
	"github.com/nasaem/pos-api/internal/domain/enum"
)

// ReportService reconstructs daily financial summaries from the raw sales
// log. Summaries are derived on every read and never persisted.
type ReportService struct {
	saleService *SaleService
}

// NewReportService creates a new report service
func NewReportService(saleService *SaleService) *ReportService {
	return &ReportService{saleService: saleService}
}

// DaySummary aggregates one calendar day of sales.
type DaySummary struct {
	DateKey      string        `json:"dateKey"`
	Label        string        `json:"label"`
	Sales        []entity.Sale `json:"sales"`
	DayTotal     float64       `json:"dayTotal"`
	CashTotal    float64       `json:"cashTotal"`
	NetworkTotal float64       `json:"networkTotal"`
}

// DailySummaries loads the full history and groups it by day. Inherits the
// sale service's degraded read behavior: a store failure yields no days.
func (s *ReportService) DailySummaries(ctx context.Context) []DaySummary {
	return GroupByDay(s.saleService.List(ctx))
}

// GroupByDay partitions sales by date key and emits one summary per distinct
// day, newest day first. Within a day the sales keep their relative order
// from the input. Pure function.
func GroupByDay(sales []entity.Sale) []DaySummary {
	groups := make(map[string][]entity.Sale)
	for _, sale := range sales {
		groups[sale.DateKey] = append(groups[sale.DateKey], sale)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	// Lexicographic descending on YYYY-MM-DD is chronological descending.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	summaries := make([]DaySummary, 0, len(keys))
	for _, key := range keys {
		daySales := groups[key]
		summary := DaySummary{
			DateKey: key,
			Label:   dayLabel(key),
			Sales:   daySales,
		}
		for _, sale := range daySales {
			summary.DayTotal += sale.Total
			switch sale.PaymentMethod {
			case enum.PaymentMethodCash:
				summary.CashTotal += sale.Total
			case enum.PaymentMethodCard:
				summary.NetworkTotal += sale.Total
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// dayLabel renders a date key for display, e.g. "Monday, 1 January 2024".
// Purely presentational; a malformed key falls through unchanged.
func dayLabel(dateKey string) string {
	day, err := time.Parse("2006-01-02", dateKey)
	if err != nil {
		return dateKey
	}
	return day.Format("Monday, 2 January 2006")
}
