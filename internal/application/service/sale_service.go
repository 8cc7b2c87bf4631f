package service

import (
	"context"
	"log"
	"time"

	"github.com/nasaem/pos-api/internal/domain/entity"
	"github.com/nasaem/pos-api/internal/domain/enum"
	"github.com/nasaem/pos-api/internal/domain/repository"
	"github.com/nasaem/pos-api/pkg/utils"
)

// SaleService records completed sales and reads them back. Writes and
// deletes are fire-and-forget from the operator's point of view: a store
// failure is logged, never surfaced, and the sale is simply lost. Reads
// degrade to an empty history. The cashier workflow must not stall or crash
// on database trouble; an empty screen is the accepted worst case.
type SaleService struct {
	saleRepo repository.SaleRepository
	location *time.Location
}

// NewSaleService creates a new sale service. Date keys are derived in loc.
func NewSaleService(saleRepo repository.SaleRepository, loc *time.Location) *SaleService {
	if loc == nil {
		loc = time.Local
	}
	return &SaleService{saleRepo: saleRepo, location: loc}
}

// CartLine is one line of the cart snapshot handed over at checkout.
type CartLine struct {
	Name      string
	Category  string
	UnitPrice float64
	Quantity  int
}

// RecordSaleInput is the checkout payload: a cart snapshot, the completion
// timestamp in milliseconds, and how the customer paid.
type RecordSaleInput struct {
	Items         []CartLine
	Timestamp     int64
	PaymentMethod enum.PaymentMethod
}

// Record stamps the cart snapshot into an immutable sale and submits it to
// the store. The returned sale is fully formed even when the durable write
// failed. An empty cart produces nothing and touches nothing.
func (s *SaleService) Record(ctx context.Context, input *RecordSaleInput) *entity.Sale {
	if len(input.Items) == 0 {
		return nil
	}

	sale := &entity.Sale{
		ID:            utils.NewSaleID(input.Timestamp),
		Timestamp:     input.Timestamp,
		DateKey:       s.DateKey(input.Timestamp),
		PaymentMethod: input.PaymentMethod,
		Items:         make([]entity.SaleItem, 0, len(input.Items)),
	}

	for _, line := range input.Items {
		lineTotal := line.UnitPrice * float64(line.Quantity)
		sale.Items = append(sale.Items, entity.SaleItem{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Total:     lineTotal,
			Category:  line.Category,
		})
		sale.Total += lineTotal
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		log.Printf("recordSale: sale %s not persisted: %v", sale.ID, err)
	}
	return sale
}

// List returns the full sales history, newest-first. On a store failure it
// logs and returns an empty history rather than an error.
func (s *SaleService) List(ctx context.Context) []entity.Sale {
	sales, err := s.saleRepo.FindAll(ctx)
	if err != nil {
		log.Printf("loadAllSales failed: %v", err)
		return []entity.Sale{}
	}
	if sales == nil {
		sales = []entity.Sale{}
	}
	return sales
}

// Delete removes one sale by id. Unknown ids and store failures are silent.
func (s *SaleService) Delete(ctx context.Context, id string) {
	if err := s.saleRepo.Delete(ctx, id); err != nil {
		log.Printf("deleteSale %s failed: %v", id, err)
	}
}

// Clear removes the entire sales history. Store failures are silent.
func (s *SaleService) Clear(ctx context.Context) {
	if err := s.saleRepo.DeleteAll(ctx); err != nil {
		log.Printf("clearAllSales failed: %v", err)
	}
}

// DateKey renders a ms-epoch timestamp as the local calendar date, zero
// padded, e.g. "2024-01-05".
func (s *SaleService) DateKey(timestamp int64) string {
	return time.UnixMilli(timestamp).In(s.location).Format("2006-01-02")
}
