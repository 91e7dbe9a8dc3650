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

type partyItem struct {
	ID            string `dynamodbav:"id"`
	Role          string `dynamodbav:"role"`
	Name          string `dynamodbav:"name"`
	Email         string `dynamodbav:"email"`
	CompanyNumber string `dynamodbav:"company_number,omitempty"`
	Address       string `dynamodbav:"address,omitempty"`
}

// PartyDynamoRepository persists policyholders and beneficiaries.
//
// Table requirements:
//   - PK: id (string)
type PartyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartyRepository = (*PartyDynamoRepository)(nil)

func NewPartyDynamoRepository(ddb *dynamodb.Client, tableName string) *PartyDynamoRepository {
	return &PartyDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PartyDynamoRepository) Create(ctx context.Context, p entities.Party) (entities.Party, error) {
	av, err := attributevalue.MarshalMap(partyItem{
		ID:            p.ID,
		Role:          string(p.Role),
		Name:          p.Name,
		Email:         p.Email,
		CompanyNumber: p.CompanyNumber,
		Address:       p.Address,
	})
	if err != nil {
		return entities.Party{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Party{}, interfaces.ErrPartyExists
		}
		return entities.Party{}, err
	}
	return p, nil
}

func (r *PartyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Party, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Party{}, err
	}
	if len(out.Item) == 0 {
		return entities.Party{}, nil
	}

	var it partyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Party{}, err
	}
	return entities.Party{
		ID:            it.ID,
		Role:          entities.PartyRole(it.Role),
		Name:          it.Name,
		Email:         it.Email,
		CompanyNumber: it.CompanyNumber,
		Address:       it.Address,
	}, nil
}
