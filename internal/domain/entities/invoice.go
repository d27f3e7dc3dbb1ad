package entities

import (
	"math"
	"time"
)

// InvoiceStatus only gates the pay action: an invoice is payable while unpaid.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid    InvoiceStatus = "unpaid"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

type InvoiceItem struct {
	Description string  `json:"description" validate:"required"`
	Quantity    int     `json:"quantity" validate:"gte=1"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
}

func (i InvoiceItem) Amount() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// Invoice is the bill for a visit or stay.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (status-index): status + created_at
type Invoice struct {
	ID          string        `json:"_id"`
	PatientName string        `json:"patientName" validate:"required"`
	OwnerName   string        `json:"ownerName" validate:"required"`
	Items       []InvoiceItem `json:"items" validate:"dive"`
	Total       float64       `json:"total" validate:"gte=0"`
	Status      InvoiceStatus `json:"status" validate:"required,oneof=unpaid paid cancelled"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Payable reports whether the pay action is exposed for the invoice.
func (i Invoice) Payable() bool {
	return i.Status == InvoiceStatusUnpaid
}

// ItemsTotal sums the line items, rounded to cents.
func ItemsTotal(items []InvoiceItem) float64 {
	sum := 0.0
	for _, it := range items {
		sum += it.Amount()
	}
	return math.Round(sum*100) / 100
}
