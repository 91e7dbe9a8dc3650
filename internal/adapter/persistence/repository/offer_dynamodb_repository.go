package repository

import (
	"context"
	"time"

	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type historyItem struct {
	ID        string         `dynamodbav:"id"`
	Timestamp string         `dynamodbav:"timestamp"`
	UserID    string         `dynamodbav:"user_id"`
	UserName  string         `dynamodbav:"user_name"`
	Action    string         `dynamodbav:"action"`
	Changes   map[string]any `dynamodbav:"changes,omitempty"`
}

type offerItem struct {
	ID             string        `dynamodbav:"id"`
	ProposalID     string        `dynamodbav:"proposal_id"`
	PolicyholderID string        `dynamodbav:"policyholder_id"`
	BeneficiaryID  string        `dynamodbav:"beneficiary_id"`
	BondAmount     float64       `dynamodbav:"bond_amount"`
	Premium        float64       `dynamodbav:"premium"`
	EffectiveDate  string        `dynamodbav:"effective_date"`
	ExpiryDate     string        `dynamodbav:"expiry_date"`
	Terms          string        `dynamodbav:"terms"`
	Status         string        `dynamodbav:"status"`
	Lifecycle      string        `dynamodbav:"lifecycle"`
	AcceptedAt     string        `dynamodbav:"accepted_at,omitempty"`
	RejectedAt     string        `dynamodbav:"rejected_at,omitempty"`
	CreatedAt      string        `dynamodbav:"created_at"`
	UpdatedAt      string        `dynamodbav:"updated_at"`
	History        []historyItem `dynamodbav:"history"`
}

// OfferDynamoRepository persists offers in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every mutation is a single conditional UpdateItem that also appends to the
// inline history list, so the record and its history never diverge. A failed
// condition is reported as a zero-value offer, like a missing item.
type OfferDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOfferRepository = (*OfferDynamoRepository)(nil)

func NewOfferDynamoRepository(ddb *dynamodb.Client, tableName string) *OfferDynamoRepository {
	return &OfferDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OfferDynamoRepository) Create(ctx context.Context, o entities.Offer) (entities.Offer, error) {
	av, err := attributevalue.MarshalMap(toOfferItem(o))
	if err != nil {
		return entities.Offer{}, err
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
			return entities.Offer{}, interfaces.ErrOfferExists
		}
		return entities.Offer{}, err
	}
	return o, nil
}

func (r *OfferDynamoRepository) GetByID(ctx context.Context, id string) (entities.Offer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Offer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Offer{}, nil
	}

	var it offerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Offer{}, err
	}
	return fromOfferItem(it), nil
}

func (r *OfferDynamoRepository) List(ctx context.Context, includeDeleted bool) ([]entities.Offer, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if !includeDeleted {
		in.FilterExpression = aws.String("#lifecycle = :active")
		in.ExpressionAttributeNames = map[string]string{"#lifecycle": "lifecycle"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberS{Value: string(entities.LifecycleActive)},
		}
	}

	var offers []entities.Offer
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []offerItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			offers = append(offers, fromOfferItem(it))
		}
	}
	return offers, nil
}

func (r *OfferDynamoRepository) Update(ctx context.Context, o entities.Offer, entry entities.EditHistoryEntry) (entities.Offer, error) {
	return r.update(ctx, o.ID, entry, func() (string, string, map[string]types.AttributeValue, map[string]string, error) {
		amount, err := attributevalue.Marshal(o.BondAmount)
		if err != nil {
			return "", "", nil, nil, err
		}
		premium, err := attributevalue.Marshal(o.Premium)
		if err != nil {
			return "", "", nil, nil, err
		}
		expr := "SET #bond_amount = :bond_amount, #premium = :premium, #effective_date = :effective_date, " +
			"#expiry_date = :expiry_date, #terms = :terms"
		cond := "#status = :pending AND #lifecycle = :active"
		vals := map[string]types.AttributeValue{
			":bond_amount":    amount,
			":premium":        premium,
			":effective_date": &types.AttributeValueMemberS{Value: formatTime(o.EffectiveDate)},
			":expiry_date":    &types.AttributeValueMemberS{Value: formatTime(o.ExpiryDate)},
			":terms":          &types.AttributeValueMemberS{Value: o.Terms},
			":pending":        &types.AttributeValueMemberS{Value: string(entities.OfferStatusPending)},
			":active":         &types.AttributeValueMemberS{Value: string(entities.LifecycleActive)},
		}
		names := map[string]string{
			"#bond_amount":    "bond_amount",
			"#premium":        "premium",
			"#effective_date": "effective_date",
			"#expiry_date":    "expiry_date",
			"#terms":          "terms",
			"#status":         "status",
			"#lifecycle":      "lifecycle",
		}
		return expr, cond, vals, names, nil
	})
}

func (r *OfferDynamoRepository) SetLifecycle(ctx context.Context, id string, from, to entities.Lifecycle, entry entities.EditHistoryEntry) (entities.Offer, error) {
	return r.update(ctx, id, entry, func() (string, string, map[string]types.AttributeValue, map[string]string, error) {
		vals := map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
		}
		return "SET #lifecycle = :to", "#lifecycle = :from", vals, map[string]string{"#lifecycle": "lifecycle"}, nil
	})
}

// Finalize moves a pending, active offer to a terminal status. Two concurrent
// calls race on the condition and only one of them gets a non-zero offer back.
func (r *OfferDynamoRepository) Finalize(ctx context.Context, id string, status entities.OfferStatus, at time.Time, entry entities.EditHistoryEntry) (entities.Offer, error) {
	if !status.IsFinal() {
		return entities.Offer{}, nil
	}
	stampAttr := "accepted_at"
	if status == entities.OfferStatusRejected {
		stampAttr = "rejected_at"
	}
	return r.update(ctx, id, entry, func() (string, string, map[string]types.AttributeValue, map[string]string, error) {
		expr := "SET #status = :status, #stamp = :stamp"
		cond := "#status = :pending AND #lifecycle = :active"
		vals := map[string]types.AttributeValue{
			":status":  &types.AttributeValueMemberS{Value: string(status)},
			":stamp":   &types.AttributeValueMemberS{Value: formatTime(at)},
			":pending": &types.AttributeValueMemberS{Value: string(entities.OfferStatusPending)},
			":active":  &types.AttributeValueMemberS{Value: string(entities.LifecycleActive)},
		}
		names := map[string]string{
			"#status":    "status",
			"#stamp":     stampAttr,
			"#lifecycle": "lifecycle",
		}
		return expr, cond, vals, names, nil
	})
}

func (r *OfferDynamoRepository) update(
	ctx context.Context,
	id string,
	entry entities.EditHistoryEntry,
	build func() (setExpr, condExpr string, values map[string]types.AttributeValue, names map[string]string, err error),
) (entities.Offer, error) {
	setExpr, condExpr, values, names, err := build()
	if err != nil {
		return entities.Offer{}, err
	}
	history, err := attributevalue.Marshal([]historyItem{toHistoryItem(entry)})
	if err != nil {
		return entities.Offer{}, err
	}
	empty, err := attributevalue.Marshal([]historyItem{})
	if err != nil {
		return entities.Offer{}, err
	}

	values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(entry.Timestamp)}
	values[":entry"] = history
	values[":empty"] = empty

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND " + condExpr),
		UpdateExpression:          aws.String(setExpr + ", #updated_at = :updated_at, #history = list_append(if_not_exists(#history, :empty), :entry)"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: mergeNames(names, map[string]string{
			"#id":         "id",
			"#updated_at": "updated_at",
			"#history":    "history",
		}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Offer{}, nil
		}
		return entities.Offer{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Offer{}, nil
	}
	var it offerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Offer{}, err
	}
	return fromOfferItem(it), nil
}

func toOfferItem(o entities.Offer) offerItem {
	history := make([]historyItem, 0, len(o.History))
	for _, h := range o.History {
		history = append(history, toHistoryItem(h))
	}
	return offerItem{
		ID:             o.ID,
		ProposalID:     o.ProposalID,
		PolicyholderID: o.PolicyholderID,
		BeneficiaryID:  o.BeneficiaryID,
		BondAmount:     o.BondAmount,
		Premium:        o.Premium,
		EffectiveDate:  formatTime(o.EffectiveDate),
		ExpiryDate:     formatTime(o.ExpiryDate),
		Terms:          o.Terms,
		Status:         string(o.Status),
		Lifecycle:      string(o.Lifecycle),
		AcceptedAt:     formatTimePtr(o.AcceptedAt),
		RejectedAt:     formatTimePtr(o.RejectedAt),
		CreatedAt:      formatTime(o.CreatedAt),
		UpdatedAt:      formatTime(o.UpdatedAt),
		History:        history,
	}
}

func fromOfferItem(it offerItem) entities.Offer {
	var history []entities.EditHistoryEntry
	for _, h := range it.History {
		history = append(history, fromHistoryItem(h))
	}
	return entities.Offer{
		ID:             it.ID,
		ProposalID:     it.ProposalID,
		PolicyholderID: it.PolicyholderID,
		BeneficiaryID:  it.BeneficiaryID,
		BondAmount:     it.BondAmount,
		Premium:        it.Premium,
		EffectiveDate:  parseTime(it.EffectiveDate),
		ExpiryDate:     parseTime(it.ExpiryDate),
		Terms:          it.Terms,
		Status:         entities.OfferStatus(it.Status),
		Lifecycle:      entities.Lifecycle(it.Lifecycle),
		AcceptedAt:     parseTimePtr(it.AcceptedAt),
		RejectedAt:     parseTimePtr(it.RejectedAt),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
		History:        history,
	}
}

func toHistoryItem(h entities.EditHistoryEntry) historyItem {
	return historyItem{
		ID:        h.ID,
		Timestamp: formatTime(h.Timestamp),
		UserID:    h.UserID,
		UserName:  h.UserName,
		Action:    string(h.Action),
		Changes:   h.Changes,
	}
}

func fromHistoryItem(it historyItem) entities.EditHistoryEntry {
	return entities.EditHistoryEntry{
		ID:        it.ID,
		Timestamp: parseTime(it.Timestamp),
		UserID:    it.UserID,
		UserName:  it.UserName,
		Action:    entities.HistoryAction(it.Action),
		Changes:   it.Changes,
	}
}
