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

// CareerRepository defines the interface for job posting database operations.
type CareerRepository interface {
	CreateCareer(ctx context.Context, career *model.Career) (*model.Career, error)
	GetCareer(ctx context.Context, id string) (*model.Career, error)
	UpdateCareer(ctx context.Context, id string, params UpdateCareerParams) (*model.Career, error)
	DeleteCareer(ctx context.Context, id string) (*model.Career, error)
	ListCareers(ctx context.Context, params FilterCareersParams) ([]*model.Career, error)
}

// UpdateCareerParams defines the optional parameters for updating a job
// posting. Only the fields that are not nil will be updated.
type UpdateCareerParams struct {
	Title        *string
	Department   *string
	Location     *string
	Type         *string
	Description  *string
	Requirements *[]string
	SalaryRange  *string
	IsOpen       *bool
	Deadline     *time.Time
}

// FilterCareersParams defines the parameters for filtering and paginating
// job postings.
type FilterCareersParams struct {
	Department *string
	IsOpen     *bool
	Limit      int64
	Offset     int64
}

const careerCollection = "careers"

type careerMongoRepository struct {
	db *mongo.Database
}

func NewCareerMongoRepository(db *mongo.Database) CareerRepository {
	return &careerMongoRepository{db: db}
}

func (r *careerMongoRepository) CreateCareer(ctx context.Context, career *model.Career) (*model.Career, error) {
	now := time.Now()
	career.CreatedAt = now
	career.UpdatedAt = now

	result, err := r.db.Collection(careerCollection).InsertOne(ctx, career)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		career.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return career, nil
}

func (r *careerMongoRepository) GetCareer(ctx context.Context, id string) (*model.Career, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(careerCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var career model.Career
	if err := result.Decode(&career); err != nil {
		return nil, err
	}

	return &career, nil
}

func (r *careerMongoRepository) UpdateCareer(
	ctx context.Context,
	id string,
	params UpdateCareerParams,
) (*model.Career, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	updateMap := bson.M{}
	if params.Title != nil {
		updateMap["title"] = *params.Title
	}
	if params.Department != nil {
		updateMap["department"] = *params.Department
	}
	if params.Location != nil {
		updateMap["location"] = *params.Location
	}
	if params.Type != nil {
		updateMap["type"] = *params.Type
	}
	if params.Description != nil {
		updateMap["description"] = *params.Description
	}
	if params.Requirements != nil {
		updateMap["requirements"] = *params.Requirements
	}
	if params.SalaryRange != nil {
		updateMap["salary_range"] = *params.SalaryRange
	}
	if params.IsOpen != nil {
		updateMap["is_open"] = *params.IsOpen
	}
	if params.Deadline != nil {
		updateMap["deadline"] = *params.Deadline
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no career fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(careerCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var career model.Career
	if err := result.Decode(&career); err != nil {
		return nil, err
	}

	return &career, nil
}

func (r *careerMongoRepository) DeleteCareer(ctx context.Context, id string) (*model.Career, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(careerCollection).FindOneAndDelete(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var career model.Career
	if err := result.Decode(&career); err != nil {
		return nil, err
	}

	return &career, nil
}

func (r *careerMongoRepository) ListCareers(
	ctx context.Context,
	params FilterCareersParams,
) ([]*model.Career, error) {
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
	if params.Department != nil {
		filter["department"] = *params.Department
	}
	if params.IsOpen != nil {
		filter["is_open"] = *params.IsOpen
	}

	cursor, err := r.db.Collection(careerCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var careers []*model.Career
	if err := cursor.All(ctx, &careers); err != nil {
		return nil, err
	}

	return careers, nil
}
