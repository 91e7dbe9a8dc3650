package repository

import (
	"context"

	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const auditResourceIndex = "resource_id-index"

type auditItem struct {
	ID           string         `dynamodbav:"id"`
	Action       string         `dynamodbav:"action"`
	ResourceType string         `dynamodbav:"resource_type"`
	ResourceID   string         `dynamodbav:"resource_id"`
	Details      map[string]any `dynamodbav:"details,omitempty"`
	Timestamp    string         `dynamodbav:"timestamp"`
}

// AuditDynamoRepository is an append-only audit table.
//
// Table requirements:
//   - PK: id (string)
//   - GSI resource_id-index: PK resource_id, SK timestamp
type AuditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var (
	_ interfaces.IAuditRepository = (*AuditDynamoRepository)(nil)
	_ interfaces.IAuditReader     = (*AuditDynamoRepository)(nil)
)

func NewAuditDynamoRepository(ddb *dynamodb.Client, tableName string) *AuditDynamoRepository {
	return &AuditDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AuditDynamoRepository) Append(ctx context.Context, e entities.AuditEvent) error {
	av, err := attributevalue.MarshalMap(toAuditItem(e))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *AuditDynamoRepository) ListByResourceID(ctx context.Context, resourceID string) ([]entities.AuditEvent, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(auditResourceIndex),
		KeyConditionExpression: aws.String("#resource_id = :rid"),
		ExpressionAttributeNames: map[string]string{
			"#resource_id": "resource_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: resourceID},
		},
		ScanIndexForward: aws.Bool(true),
	})

	var events []entities.AuditEvent
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []auditItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			events = append(events, fromAuditItem(it))
		}
	}
	return events, nil
}

func toAuditItem(e entities.AuditEvent) auditItem {
	return auditItem{
		ID:           e.ID,
		Action:       string(e.Action),
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID,
		Details:      e.Details,
		Timestamp:    formatTime(e.Timestamp),
	}
}

func fromAuditItem(it auditItem) entities.AuditEvent {
	return entities.AuditEvent{
		ID:           it.ID,
		Action:       entities.AuditAction(it.Action),
		ResourceType: it.ResourceType,
		ResourceID:   it.ResourceID,
		Details:      it.Details,
		Timestamp:    parseTime(it.Timestamp),
	}
}
