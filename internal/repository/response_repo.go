package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rawdati/internal/model"
)

// ResponseRepo handles MongoDB operations for raw survey responses.
// Responses are append-only; there is no update path.
type ResponseRepo interface {
	CreateMany(ctx context.Context, responses []model.RawResponse) error
	GetBySurveyID(ctx context.Context, surveyID string) ([]model.RawResponse, error)
	GetMetaBySurveyIDs(ctx context.Context, surveyIDs []string) ([]model.ResponseMeta, error)
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a new response repository
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("responses"),
	}
}

func (r *responseRepo) CreateMany(ctx context.Context, responses []model.RawResponse) error {
	if len(responses) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(responses))
	for i := range responses {
		if responses[i].CreatedAt.IsZero() {
			responses[i].CreatedAt = time.Now()
		}
		docs = append(docs, responses[i])
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *responseRepo) GetBySurveyID(ctx context.Context, surveyID string) ([]model.RawResponse, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"surveyId": surveyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []model.RawResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// GetMetaBySurveyIDs projects only the fields the dashboard rollup
// needs, across all of a tenant's surveys.
func (r *responseRepo) GetMetaBySurveyIDs(ctx context.Context, surveyIDs []string) ([]model.ResponseMeta, error) {
	if len(surveyIDs) == 0 {
		return nil, nil
	}

	proj := options.Find().SetProjection(bson.M{"respondentType": 1, "createdAt": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"surveyId": bson.M{"$in": surveyIDs}}, proj)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var meta []model.ResponseMeta
	if err := cursor.All(ctx, &meta); err != nil {
		return nil, err
	}
	return meta, nil
}
