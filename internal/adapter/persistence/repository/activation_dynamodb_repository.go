package repository

import (
	"context"
	"errors"
	"time"

	"chamba_facil/internal/domain/entities"
	"chamba_facil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultActivationsTableName = "profile_activations"

type activationItem struct {
	PaymentID         string  `dynamodbav:"payment_id"`
	ExternalReference string  `dynamodbav:"external_reference,omitempty"`
	Status            string  `dynamodbav:"status"`
	StatusDetail      string  `dynamodbav:"status_detail,omitempty"`
	PaymentTypeID     string  `dynamodbav:"payment_type_id,omitempty"`
	PaymentMethodID   string  `dynamodbav:"payment_method_id,omitempty"`
	Amount            float64 `dynamodbav:"amount,omitempty"`
	ActivatedAt       string  `dynamodbav:"activated_at"`
}

// ActivationDynamoRepository persists ProfileActivation entities in DynamoDB.
//
// Table requirements:
//   - PK: payment_id (string)
//
// The conditional put on payment_id is the dedup point for redelivered
// webhooks: the first writer activates, every later writer observes
// "already activated".

type ActivationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IActivationRepository = (*ActivationDynamoRepository)(nil)

func NewActivationDynamoRepository(ddb *dynamodb.Client) *ActivationDynamoRepository {
	return &ActivationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACTIVATIONS_TABLE", defaultActivationsTableName),
	}
}

// Activate inserts the activation record if no record exists for the payment
// id. Returns created=false (and no error) when the payment was already
// activated.
func (r *ActivationDynamoRepository) Activate(ctx context.Context, a entities.ProfileActivation) (bool, error) {
	av, err := attributevalue.MarshalMap(toActivationItem(a))
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(payment_id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetByPaymentID returns the zero value when no activation exists.
func (r *ActivationDynamoRepository) GetByPaymentID(ctx context.Context, paymentID string) (entities.ProfileActivation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProfileActivation{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProfileActivation{}, nil
	}

	var it activationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProfileActivation{}, err
	}
	return fromActivationItem(it), nil
}

func toActivationItem(a entities.ProfileActivation) activationItem {
	return activationItem{
		PaymentID:         a.PaymentID,
		ExternalReference: a.ExternalReference,
		Status:            a.Status,
		StatusDetail:      a.StatusDetail,
		PaymentTypeID:     a.PaymentTypeID,
		PaymentMethodID:   a.PaymentMethodID,
		Amount:            a.Amount,
		ActivatedAt:       a.ActivatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromActivationItem(it activationItem) entities.ProfileActivation {
	dt, _ := time.Parse(time.RFC3339Nano, it.ActivatedAt)
	return entities.ProfileActivation{
		PaymentID:         it.PaymentID,
		ExternalReference: it.ExternalReference,
		Status:            it.Status,
		StatusDetail:      it.StatusDetail,
		PaymentTypeID:     it.PaymentTypeID,
		PaymentMethodID:   it.PaymentMethodID,
		Amount:            it.Amount,
		ActivatedAt:       dt,
	}
}
