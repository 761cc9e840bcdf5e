// internal/domain/report/service.go
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/soqi-sistemas/pedefacil-backend/internal/config"
)

// Service handles sales reporting business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new report service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// SalesSummary represents the sales report for a date range
type SalesSummary struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	TotalOrders   int64           `json:"total_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
	DailySales    []DailySales    `json:"daily_sales"`
	SalesByStatus []StatusData    `json:"sales_by_status"`
	TopProducts   []ProductSales  `json:"top_products"`
}

// DailySales represents one day's revenue and order count
type DailySales struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int64           `json:"orders"`
}

// StatusData represents order counts grouped by status
type StatusData struct {
	Status string          `json:"status"`
	Count  int64           `json:"count"`
	Value  decimal.Decimal `json:"value"`
}

// ProductSales represents aggregated sales for a single product
type ProductSales struct {
	ProductID   *uuid.UUID      `json:"product_id"`
	ProductName string          `json:"product_name"`
	TotalSold   int64           `json:"total_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// GetSalesSummary builds the sales report for the given date range.
// Cancelled orders are excluded from revenue but still appear in the
// status breakdown.
func (s *Service) GetSalesSummary(ctx context.Context, from, to time.Time) (*SalesSummary, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("invalid date range: end before start")
	}

	summary := &SalesSummary{
		From:          from,
		To:            to,
		TotalRevenue:  decimal.Zero,
		AvgOrderValue: decimal.Zero,
		DailySales:    []DailySales{},
		SalesByStatus: []StatusData{},
		TopProducts:   []ProductSales{},
	}

	db := s.db.WithContext(ctx)

	if err := db.Raw(
		"SELECT COUNT(*) FROM orders WHERE deleted_at IS NULL AND status <> 'cancelled' AND created_at >= ? AND created_at < ?",
		from, to,
	).Scan(&summary.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	if err := db.Raw(
		"SELECT COALESCE(SUM(total_price), 0) FROM orders WHERE deleted_at IS NULL AND status <> 'cancelled' AND created_at >= ? AND created_at < ?",
		from, to,
	).Scan(&summary.TotalRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	if summary.TotalOrders > 0 {
		summary.AvgOrderValue = summary.TotalRevenue.
			Div(decimal.NewFromInt(summary.TotalOrders)).
			Round(2)
	}

	if err := db.Raw(
		`SELECT TO_CHAR(created_at, 'YYYY-MM-DD') AS date,
		        COALESCE(SUM(total_price), 0) AS revenue,
		        COUNT(*) AS orders
		 FROM orders
		 WHERE deleted_at IS NULL AND status <> 'cancelled' AND created_at >= ? AND created_at < ?
		 GROUP BY 1 ORDER BY 1`,
		from, to,
	).Scan(&summary.DailySales).Error; err != nil {
		return nil, fmt.Errorf("failed to load daily sales: %w", err)
	}

	if err := db.Raw(
		`SELECT status, COUNT(*) AS count, COALESCE(SUM(total_price), 0) AS value
		 FROM orders
		 WHERE deleted_at IS NULL AND created_at >= ? AND created_at < ?
		 GROUP BY status ORDER BY count DESC`,
		from, to,
	).Scan(&summary.SalesByStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to load status breakdown: %w", err)
	}

	if err := db.Raw(
		`SELECT oi.product_id,
		        oi.product_name,
		        SUM(oi.quantity) AS total_sold,
		        COALESCE(SUM(oi.price * oi.quantity), 0) AS revenue
		 FROM order_items oi
		 JOIN orders o ON o.id = oi.order_id
		 WHERE o.deleted_at IS NULL AND o.status <> 'cancelled' AND o.created_at >= ? AND o.created_at < ?
		 GROUP BY oi.product_id, oi.product_name
		 ORDER BY total_sold DESC
		 LIMIT 10`,
		from, to,
	).Scan(&summary.TopProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to load top products: %w", err)
	}

	return summary, nil
}

// ResolveRange turns optional from/to date strings (2006-01-02) into a
// concrete half-open range, defaulting to the last 30 days.
func ResolveRange(fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -30)

	if fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date: %w", err)
		}
		from = parsed
	}
	if toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date: %w", err)
		}
		// inclusive end date
		to = parsed.AddDate(0, 0, 1)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date range: end before start")
	}
	return from, to, nil
}
