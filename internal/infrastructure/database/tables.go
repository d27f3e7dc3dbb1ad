package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vetcare/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
)

// TableAPI is what table provisioning needs from *dynamodb.Client.
type TableAPI interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

type index struct {
	name     string
	hashKey  string
	rangeKey string
}

// TableSpec describes one Entity Store table: string id PK plus GSIs.
type TableSpec struct {
	Name    string
	indexes []index
}

// Tables lists every table the repositories expect, named from cfg.
func Tables(cfg *config.Config) []TableSpec {
	return []TableSpec{
		{Name: cfg.BookingsTable, indexes: []index{{"status-index", "status", "check_in"}}},
		{Name: cfg.AppointmentsTable, indexes: []index{{"nic-index", "nic", ""}, {"status-index", "status", "created_at"}}},
		{Name: cfg.InvoicesTable, indexes: []index{{"status-index", "status", "created_at"}}},
		{Name: cfg.PetsTable, indexes: []index{{"owner-index", "owner_id", ""}}},
		{Name: cfg.MedicalRecordsTable, indexes: []index{{"pet_id-index", "pet_id", "visit_date"}}},
	}
}

// CreateTableInput renders the spec as an on-demand table with
// all-attribute projections.
func (s TableSpec) CreateTableInput() *dynamodb.CreateTableInput {
	attrs := map[string]bool{"id": true}
	defs := []types.AttributeDefinition{{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS}}
	addAttr := func(name string) {
		if name == "" || attrs[name] {
			return
		}
		attrs[name] = true
		defs = append(defs, types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS})
	}

	var gsis []types.GlobalSecondaryIndex
	for _, ix := range s.indexes {
		addAttr(ix.hashKey)
		addAttr(ix.rangeKey)
		schema := []types.KeySchemaElement{{AttributeName: aws.String(ix.hashKey), KeyType: types.KeyTypeHash}}
		if ix.rangeKey != "" {
			schema = append(schema, types.KeySchemaElement{AttributeName: aws.String(ix.rangeKey), KeyType: types.KeyTypeRange})
		}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(ix.name),
			KeySchema:  schema,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(s.Name),
		AttributeDefinitions:   defs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	}
}

// EnsureTables creates missing tables and waits until each is active.
// Tables that already exist are left untouched.
func EnsureTables(ctx context.Context, ddb TableAPI, specs []TableSpec, maxWait time.Duration, log zerolog.Logger) error {
	waiter := dynamodb.NewTableExistsWaiter(ddb)
	for _, s := range specs {
		_, err := ddb.CreateTable(ctx, s.CreateTableInput())
		if err != nil {
			var inUse *types.ResourceInUseException
			if !errors.As(err, &inUse) {
				return fmt.Errorf("create table %s: %w", s.Name, err)
			}
			log.Info().Str("table", s.Name).Msg("table already exists")
			continue
		}
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.Name)}, maxWait); err != nil {
			return fmt.Errorf("wait for table %s: %w", s.Name, err)
		}
		log.Info().Str("table", s.Name).Msg("table created")
	}
	return nil
}
