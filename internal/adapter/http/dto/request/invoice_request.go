package request

import (
	"strings"

	"vetcare/internal/domain/entities"
	"vetcare/internal/usecase"
)

type InvoiceItemRequest struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// InvoiceRequest is shared by create and the general update. A status
// field, if sent, is ignored: status only moves through the status and pay
// endpoints.
type InvoiceRequest struct {
	PatientName string               `json:"patientName"`
	OwnerName   string               `json:"ownerName"`
	Items       []InvoiceItemRequest `json:"items"`
	Total       *float64             `json:"total"`
}

func (r InvoiceRequest) ToInput() usecase.InvoiceInput {
	var items []entities.InvoiceItem
	for _, it := range r.Items {
		items = append(items, entities.InvoiceItem{
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return usecase.InvoiceInput{
		PatientName: strings.TrimSpace(r.PatientName),
		OwnerName:   strings.TrimSpace(r.OwnerName),
		Items:       items,
		Total:       r.Total,
	}
}
