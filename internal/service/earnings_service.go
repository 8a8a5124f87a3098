package service

import (
	"fmt"
	"math"
	"sort"

	"localconnect/internal/repositories"
	"localconnect/models"
	"localconnect/pkg/logger"
)

// ProductSales aggregates one product's sales across a vendor's orders.
type ProductSales struct {
	ProductID string      `json:"product_id"`
	Name      string      `json:"name"`
	Quantity  float64     `json:"quantity"`
	Revenue   float64     `json:"revenue"`
	Unit      models.Unit `json:"unit"`
}

// EarningsReport is a vendor's sales summary: overall revenue, a per-product
// breakdown sorted by revenue, and daily totals keyed by date (YYYY-MM-DD).
type EarningsReport struct {
	VendorLocation models.VendorLocation `json:"vendor_location"`
	TotalRevenue   float64               `json:"total_revenue"`
	OrderCount     int                   `json:"order_count"`
	SalesByProduct []ProductSales        `json:"sales_by_product"`
	SalesOverTime  map[string]float64    `json:"sales_over_time"`
}

type EarningsServiceInterface interface {
	GetEarningsReport(location models.VendorLocation) (*EarningsReport, error)
}

// EarningsService builds vendor earnings reports from order history. Every
// placed order counts toward revenue regardless of delivery stage, matching
// what the storefront shows vendors.
type EarningsService struct {
	orderRepo repositories.OrderRepositoryInterface
	logger    *logger.Logger
}

// NewEarningsService creates a new EarningsService with the given repository and logger
func NewEarningsService(orderRepo repositories.OrderRepositoryInterface, log *logger.Logger) *EarningsService {
	return &EarningsService{
		orderRepo: orderRepo,
		logger:    log.WithComponent("earnings_service"),
	}
}

// GetEarningsReport aggregates the vendor's orders into a report
func (s *EarningsService) GetEarningsReport(location models.VendorLocation) (*EarningsReport, error) {
	if !models.IsValidVendorLocation(location) {
		return nil, fmt.Errorf("unknown vendor location %q", location)
	}

	orders, err := s.orderRepo.GetByVendor(location)
	if err != nil {
		s.logger.Error("Failed to fetch vendor orders", "vendor", location, "error", err)
		return nil, err
	}

	report := &EarningsReport{
		VendorLocation: location,
		OrderCount:     len(orders),
		SalesByProduct: []ProductSales{},
		SalesOverTime:  make(map[string]float64),
	}

	salesByProduct := make(map[string]*ProductSales)
	for _, order := range orders {
		report.TotalRevenue += order.Total

		day := order.Timestamp.Format("2006-01-02")
		report.SalesOverTime[day] = round2(report.SalesOverTime[day] + order.Total)

		for _, item := range order.Items {
			sales, ok := salesByProduct[item.ID]
			if !ok {
				sales = &ProductSales{ProductID: item.ID, Name: item.Name, Unit: item.Unit}
				salesByProduct[item.ID] = sales
			}
			sales.Quantity += item.Quantity
			sales.Revenue = round2(sales.Revenue + item.LineTotal())
		}
	}
	report.TotalRevenue = round2(report.TotalRevenue)

	for _, sales := range salesByProduct {
		report.SalesByProduct = append(report.SalesByProduct, *sales)
	}
	sort.Slice(report.SalesByProduct, func(i, j int) bool {
		return report.SalesByProduct[i].Revenue > report.SalesByProduct[j].Revenue
	})

	s.logger.Debug("Earnings report built",
		"vendor", location,
		"orders", report.OrderCount,
		"total_revenue", report.TotalRevenue)
	return report, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
