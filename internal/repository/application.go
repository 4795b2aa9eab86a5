package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vasapolrittideah/corporate-site-api/internal/model"
)

// ApplicationRepository defines the interface for career application
// database operations.
type ApplicationRepository interface {
	CreateApplication(ctx context.Context, application *model.CareerApplication) (*model.CareerApplication, error)
	GetApplication(ctx context.Context, id string) (*model.CareerApplication, error)
	UpdateApplicationStatus(ctx context.Context, id string, status string) (*model.CareerApplication, error)
	ListApplications(ctx context.Context, params FilterApplicationsParams) ([]*model.CareerApplication, error)
}

// FilterApplicationsParams defines the parameters for filtering and
// paginating applications.
type FilterApplicationsParams struct {
	CareerID *string
	Status   *string
	Limit    int64
	Offset   int64
}

const applicationCollection = "career_applications"

type applicationMongoRepository struct {
	db *mongo.Database
}

func NewApplicationMongoRepository(db *mongo.Database) ApplicationRepository {
	return &applicationMongoRepository{db: db}
}

func (r *applicationMongoRepository) CreateApplication(
	ctx context.Context,
	application *model.CareerApplication,
) (*model.CareerApplication, error) {
	now := time.Now()
	application.CreatedAt = now
	application.UpdatedAt = now

	result, err := r.db.Collection(applicationCollection).InsertOne(ctx, application)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		application.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return application, nil
}

func (r *applicationMongoRepository) GetApplication(ctx context.Context, id string) (*model.CareerApplication, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(applicationCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var application model.CareerApplication
	if err := result.Decode(&application); err != nil {
		return nil, err
	}

	return &application, nil
}

func (r *applicationMongoRepository) UpdateApplicationStatus(
	ctx context.Context,
	id string,
	status string,
) (*model.CareerApplication, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(applicationCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var application model.CareerApplication
	if err := result.Decode(&application); err != nil {
		return nil, err
	}

	return &application, nil
}

func (r *applicationMongoRepository) ListApplications(
	ctx context.Context,
	params FilterApplicationsParams,
) ([]*model.CareerApplication, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	limit := params.Limit
	if limit == 0 {
		limit = 20
	}
	findOptions.SetLimit(limit)

	if params.Offset > 0 {
		findOptions.SetSkip(params.Offset)
	}

	filter := bson.M{}
	if params.CareerID != nil {
		careerID, err := parseObjectID(*params.CareerID)
		if err != nil {
			return nil, err
		}
		filter["career_id"] = careerID
	}
	if params.Status != nil {
		filter["status"] = *params.Status
	}

	cursor, err := r.db.Collection(applicationCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var applications []*model.CareerApplication
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, err
	}

	return applications, nil
}
