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

// CSRProjectRepository defines the interface for CSR project database
// operations.
type CSRProjectRepository interface {
	CreateCSRProject(ctx context.Context, project *model.CSRProject) (*model.CSRProject, error)
	GetCSRProject(ctx context.Context, id string) (*model.CSRProject, error)
	UpdateCSRProject(ctx context.Context, id string, params UpdateCSRProjectParams) (*model.CSRProject, error)
	DeleteCSRProject(ctx context.Context, id string) (*model.CSRProject, error)
	ListCSRProjects(ctx context.Context, params FilterCSRProjectsParams) ([]*model.CSRProject, error)
}

// UpdateCSRProjectParams defines the optional parameters for updating a CSR
// project. Only the fields that are not nil will be updated.
type UpdateCSRProjectParams struct {
	Title       *string
	Summary     *string
	Body        *string
	ImageURL    *string
	StartedAt   *time.Time
	IsPublished *bool
}

// FilterCSRProjectsParams defines the parameters for filtering and
// paginating CSR projects.
type FilterCSRProjectsParams struct {
	IsPublished *bool
	Limit       int64
	Offset      int64
}

const csrProjectCollection = "csr_projects"

type csrProjectMongoRepository struct {
	db *mongo.Database
}

func NewCSRProjectMongoRepository(db *mongo.Database) CSRProjectRepository {
	return &csrProjectMongoRepository{db: db}
}

func (r *csrProjectMongoRepository) CreateCSRProject(
	ctx context.Context,
	project *model.CSRProject,
) (*model.CSRProject, error) {
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	result, err := r.db.Collection(csrProjectCollection).InsertOne(ctx, project)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		project.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return project, nil
}

func (r *csrProjectMongoRepository) GetCSRProject(ctx context.Context, id string) (*model.CSRProject, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(csrProjectCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var project model.CSRProject
	if err := result.Decode(&project); err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *csrProjectMongoRepository) UpdateCSRProject(
	ctx context.Context,
	id string,
	params UpdateCSRProjectParams,
) (*model.CSRProject, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	updateMap := bson.M{}
	if params.Title != nil {
		updateMap["title"] = *params.Title
	}
	if params.Summary != nil {
		updateMap["summary"] = *params.Summary
	}
	if params.Body != nil {
		updateMap["body"] = *params.Body
	}
	if params.ImageURL != nil {
		updateMap["image_url"] = *params.ImageURL
	}
	if params.StartedAt != nil {
		updateMap["started_at"] = *params.StartedAt
	}
	if params.IsPublished != nil {
		updateMap["is_published"] = *params.IsPublished
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no CSR project fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(csrProjectCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var project model.CSRProject
	if err := result.Decode(&project); err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *csrProjectMongoRepository) DeleteCSRProject(ctx context.Context, id string) (*model.CSRProject, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(csrProjectCollection).FindOneAndDelete(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var project model.CSRProject
	if err := result.Decode(&project); err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *csrProjectMongoRepository) ListCSRProjects(
	ctx context.Context,
	params FilterCSRProjectsParams,
) ([]*model.CSRProject, error) {
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
	if params.IsPublished != nil {
		filter["is_published"] = *params.IsPublished
	}

	cursor, err := r.db.Collection(csrProjectCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []*model.CSRProject
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}
