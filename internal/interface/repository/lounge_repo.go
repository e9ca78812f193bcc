package repository

import (
	"context"
	"sort"

	"lounge-advisor-service/internal/domain/apperr"
	"lounge-advisor-service/internal/domain/entity"
	"lounge-advisor-service/internal/domain/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// loungeItem is the DynamoDB row shape of the Lounges table.
//
// Table requirements:
//   - PK: airport (string)
//   - SK: lounge_id (string)
type loungeItem struct {
	Airport         string             `dynamodbav:"airport"`
	LoungeID        string             `dynamodbav:"lounge_id"`
	Terminal        string             `dynamodbav:"terminal,omitempty"`
	Name            string             `dynamodbav:"name"`
	AccessProviders []string           `dynamodbav:"access_providers"`
	Amenities       []string           `dynamodbav:"amenities"`
	Rating          float64            `dynamodbav:"rating"`
	WalkingMinutes  int                `dynamodbav:"walking_distance_minutes"`
	Hours           entity.HoursWindow `dynamodbav:"operating_hours"`
}

// DynamoLoungeRepository reads the lounge catalog from DynamoDB.
type DynamoLoungeRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ repository.LoungeRepository = (*DynamoLoungeRepository)(nil)

// NewDynamoLoungeRepository creates a new lounge catalog repository
func NewDynamoLoungeRepository(ddb *dynamodb.Client, tableName string) *DynamoLoungeRepository {
	return &DynamoLoungeRepository{ddb: ddb, tableName: tableName}
}

// ListByAirport queries all lounges for an airport partition, optionally
// narrowed to lounges serving a terminal. Results are sorted by lounge id
// so downstream ranking is deterministic.
func (r *DynamoLoungeRepository) ListByAirport(ctx context.Context, airportCode, terminal string) ([]entity.Lounge, error) {
	const op = "lounges.ListByAirport"

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#airport = :airport"),
		ExpressionAttributeNames: map[string]string{
			"#airport": "airport",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":airport": &types.AttributeValueMemberS{Value: airportCode},
		},
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, op, "lounge catalog query failed", err)
	}

	var items []loungeItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, apperr.Wrap(apperr.Upstream, op, "malformed lounge catalog item", err)
	}

	lounges := make([]entity.Lounge, 0, len(items))
	for _, it := range items {
		l := it.toEntity()
		if l.ServesTerminal(terminal) {
			lounges = append(lounges, l)
		}
	}

	sort.Slice(lounges, func(i, j int) bool { return lounges[i].ID < lounges[j].ID })
	return lounges, nil
}

func (it loungeItem) toEntity() entity.Lounge {
	return entity.Lounge{
		ID:              it.LoungeID,
		AirportCode:     it.Airport,
		Terminal:        it.Terminal,
		Name:            it.Name,
		AccessProviders: it.AccessProviders,
		Amenities:       it.Amenities,
		Rating:          it.Rating,
		WalkingMinutes:  it.WalkingMinutes,
		Hours:           it.Hours,
	}
}
