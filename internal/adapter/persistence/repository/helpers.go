package repository

import (
	"context"
	"errors"
	"iter"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

const (
	StatusIndex = "status-index"
	NICIndex    = "nic-index"
	OwnerIndex  = "owner-index"
	PetIndex    = "pet_id-index"
)

// Fixed-width UTC timestamps so range conditions compare lexicographically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t.UTC()
}

func tableOrDefault(name, def string) string {
	if v := strings.TrimSpace(name); v != "" {
		return v
	}
	return def
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func putNew(ctx context.Context, ddb DynamoAPI, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// getByID returns ok=false when the item does not exist.
func getByID[T any](ctx context.Context, ddb DynamoAPI, table, id string) (T, bool, error) {
	var it T
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return it, false, err
	}
	if len(out.Item) == 0 {
		return it, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

// updateByID runs an update guarded by attribute_exists(#id). A failed
// guard is reported as ok=false, not as an error.
func updateByID[T any](
	ctx context.Context,
	ddb DynamoAPI,
	table, id, updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (T, bool, error) {
	var it T
	out, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return it, false, nil
		}
		return it, false, err
	}
	if len(out.Attributes) == 0 {
		return it, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

func statusUpdate(status string, at time.Time) (string, map[string]types.AttributeValue, map[string]string) {
	expr := "SET #status = :status, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: status},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(at)},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	return expr, vals, names
}

func deleteByID(ctx context.Context, ddb DynamoAPI, table, id string) (bool, error) {
	_, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(table),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// listItems pages through a Query (when q is set) or a Scan, decoding one
// item at a time. Pages are fetched only as the caller keeps ranging.
func listItems[I any, T any](ctx context.Context, ddb DynamoAPI, q *dynamodb.QueryInput, s *dynamodb.ScanInput, decode func(I) T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		var next func() ([]map[string]types.AttributeValue, error)
		var more func() bool
		if q != nil {
			p := dynamodb.NewQueryPaginator(ddb, q)
			more = p.HasMorePages
			next = func() ([]map[string]types.AttributeValue, error) {
				out, err := p.NextPage(ctx)
				if err != nil {
					return nil, err
				}
				return out.Items, nil
			}
		} else {
			p := dynamodb.NewScanPaginator(ddb, s)
			more = p.HasMorePages
			next = func() ([]map[string]types.AttributeValue, error) {
				out, err := p.NextPage(ctx)
				if err != nil {
					return nil, err
				}
				return out.Items, nil
			}
		}

		for more() {
			items, err := next()
			if err != nil {
				yield(zero, err)
				return
			}
			for _, raw := range items {
				var it I
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					yield(zero, err)
					return
				}
				if !yield(decode(it), nil) {
					return
				}
			}
		}
	}
}

// conditions accumulates a condition expression with its placeholders.
type conditions struct {
	parts  []string
	names  map[string]string
	values map[string]types.AttributeValue
}

func newConditions() *conditions {
	return &conditions{names: map[string]string{}, values: map[string]types.AttributeValue{}}
}

func (c *conditions) add(expr string, names map[string]string, values map[string]types.AttributeValue) {
	c.parts = append(c.parts, expr)
	for k, v := range names {
		c.names[k] = v
	}
	for k, v := range values {
		c.values[k] = v
	}
}

func (c *conditions) eq(attr, value string) {
	c.add("#"+attr+" = :"+attr, map[string]string{"#" + attr: attr}, map[string]types.AttributeValue{":" + attr: &types.AttributeValueMemberS{Value: value}})
}

// timeRange bounds attr by from/to; either may be nil.
func (c *conditions) timeRange(attr string, from, to *time.Time) {
	name := map[string]string{"#" + attr: attr}
	switch {
	case from != nil && to != nil:
		c.add("#"+attr+" BETWEEN :from AND :to", name, map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: formatTime(*from)},
			":to":   &types.AttributeValueMemberS{Value: formatTime(*to)},
		})
	case from != nil:
		c.add("#"+attr+" >= :from", name, map[string]types.AttributeValue{":from": &types.AttributeValueMemberS{Value: formatTime(*from)}})
	case to != nil:
		c.add("#"+attr+" <= :to", name, map[string]types.AttributeValue{":to": &types.AttributeValueMemberS{Value: formatTime(*to)}})
	}
}

func (c *conditions) empty() bool {
	return len(c.parts) == 0
}

func (c *conditions) expression() *string {
	if c.empty() {
		return nil
	}
	return aws.String(strings.Join(c.parts, " AND "))
}

// merge folds the placeholders of other into a single name/value set.
func (c *conditions) merge(other *conditions) (map[string]string, map[string]types.AttributeValue) {
	names := mergeNames(c.names, other.names)
	values := make(map[string]types.AttributeValue, len(c.values)+len(other.values))
	for k, v := range c.values {
		values[k] = v
	}
	for k, v := range other.values {
		values[k] = v
	}
	if len(names) == 0 {
		names = nil
	}
	if len(values) == 0 {
		values = nil
	}
	return names, values
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// query builds a Query over index when key has conditions, else a Scan.
func query(table, index string, key, filter *conditions, newestFirst bool) (*dynamodb.QueryInput, *dynamodb.ScanInput) {
	names, values := key.merge(filter)
	if !key.empty() {
		q := &dynamodb.QueryInput{
			TableName:                 aws.String(table),
			KeyConditionExpression:    key.expression(),
			FilterExpression:          filter.expression(),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		}
		if index != "" {
			q.IndexName = aws.String(index)
		}
		if newestFirst {
			q.ScanIndexForward = aws.Bool(false)
		}
		return q, nil
	}
	return nil, &dynamodb.ScanInput{
		TableName:                 aws.String(table),
		FilterExpression:          filter.expression(),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
