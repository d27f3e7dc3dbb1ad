package repository

import (
	"context"
	"iter"
	"strings"
	"time"

	"vetcare/internal/domain/entities"
	"vetcare/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInvoicesTableName = "invoices"

type invoiceLineItem struct {
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
}

type invoiceItem struct {
	ID          string            `dynamodbav:"id"`
	PatientName string            `dynamodbav:"patient_name"`
	OwnerName   string            `dynamodbav:"owner_name"`
	Items       []invoiceLineItem `dynamodbav:"items,omitempty"`
	Total       string            `dynamodbav:"total"`
	Status      string            `dynamodbav:"status"`
	SearchText  string            `dynamodbav:"search_text"`
	CreatedAt   string            `dynamodbav:"created_at"`
	UpdatedAt   string            `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists invoices in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI status-index: status (HASH) + created_at (RANGE)
//
// search_text holds the lowercased patient and owner names so the search
// filter can run as a contains() condition.
type InvoiceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoAPI, tableName string) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toInvoiceItem(inv)); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	it, ok, err := getByID[invoiceItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) List(ctx context.Context, filter entities.ListFilter) iter.Seq2[entities.Invoice, error] {
	key, cond := newConditions(), newConditions()
	if filter.Status != "" {
		key.eq("status", filter.Status)
		key.timeRange("created_at", filter.From, filter.To)
	} else {
		cond.timeRange("created_at", filter.From, filter.To)
	}
	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		cond.add("contains(#search_text, :q)",
			map[string]string{"#search_text": "search_text"},
			map[string]types.AttributeValue{":q": &types.AttributeValueMemberS{Value: q}})
	}
	q, s := query(r.tableName, StatusIndex, key, cond, true)
	return listItems(ctx, r.ddb, q, s, fromInvoiceItem)
}

// UpdateDetails rewrites the editable attributes; status is left alone.
func (r *InvoiceDynamoRepository) UpdateDetails(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	items, err := attributevalue.Marshal(toInvoiceLineItems(inv.Items))
	if err != nil {
		return entities.Invoice{}, err
	}
	expr := "SET #patient_name = :patient_name, #owner_name = :owner_name, #items = :items, " +
		"#total = :total, #search_text = :search_text, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":patient_name": &types.AttributeValueMemberS{Value: inv.PatientName},
		":owner_name":   &types.AttributeValueMemberS{Value: inv.OwnerName},
		":items":        items,
		":total":        &types.AttributeValueMemberS{Value: floatToString(inv.Total)},
		":search_text":  &types.AttributeValueMemberS{Value: searchText(inv)},
		":updated_at":   &types.AttributeValueMemberS{Value: formatTime(inv.UpdatedAt)},
	}
	names := map[string]string{
		"#patient_name": "patient_name",
		"#owner_name":   "owner_name",
		"#items":        "items",
		"#total":        "total",
		"#search_text":  "search_text",
		"#updated_at":   "updated_at",
	}
	it, ok, err := updateByID[invoiceItem](ctx, r.ddb, r.tableName, inv.ID, expr, vals, names)
	if err != nil || !ok {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus, at time.Time) (entities.Invoice, error) {
	expr, vals, names := statusUpdate(string(status), at)
	it, ok, err := updateByID[invoiceItem](ctx, r.ddb, r.tableName, id, expr, vals, names)
	if err != nil || !ok {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func searchText(inv entities.Invoice) string {
	return strings.ToLower(inv.PatientName + " " + inv.OwnerName)
}

func toInvoiceLineItems(items []entities.InvoiceItem) []invoiceLineItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]invoiceLineItem, 0, len(items))
	for _, it := range items {
		out = append(out, invoiceLineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   floatToString(it.UnitPrice),
		})
	}
	return out
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:          inv.ID,
		PatientName: inv.PatientName,
		OwnerName:   inv.OwnerName,
		Items:       toInvoiceLineItems(inv.Items),
		Total:       floatToString(inv.Total),
		Status:      string(inv.Status),
		SearchText:  searchText(inv),
		CreatedAt:   formatTime(inv.CreatedAt),
		UpdatedAt:   formatTime(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	var items []entities.InvoiceItem
	for _, li := range it.Items {
		items = append(items, entities.InvoiceItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   parseFloat(li.UnitPrice),
		})
	}
	return entities.Invoice{
		ID:          it.ID,
		PatientName: it.PatientName,
		OwnerName:   it.OwnerName,
		Items:       items,
		Total:       parseFloat(it.Total),
		Status:      entities.InvoiceStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
