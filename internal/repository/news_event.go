package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vasapolrittideah/corporate-site-api/internal/model"
)

// NewsEventRepository defines the interface for news/event database
// operations. Slug is the public lookup key and is unique.
type NewsEventRepository interface {
	CreateNewsEvent(ctx context.Context, item *model.NewsEvent) (*model.NewsEvent, error)
	GetNewsEvent(ctx context.Context, id string) (*model.NewsEvent, error)
	GetNewsEventBySlug(ctx context.Context, slug string) (*model.NewsEvent, error)
	UpdateNewsEvent(ctx context.Context, id string, params UpdateNewsEventParams) (*model.NewsEvent, error)
	DeleteNewsEvent(ctx context.Context, id string) (*model.NewsEvent, error)
	ListNewsEvents(ctx context.Context, params FilterNewsEventsParams) ([]*model.NewsEvent, error)
}

// UpdateNewsEventParams defines the optional parameters for updating a
// news/event item. Only the fields that are not nil will be updated.
type UpdateNewsEventParams struct {
	Title       *string
	Slug        *string
	Kind        *string
	Body        *string
	ImageURL    *string
	EventDate   *time.Time
	IsPublished *bool
}

// FilterNewsEventsParams defines the parameters for filtering and paginating
// news/event items.
type FilterNewsEventsParams struct {
	Kind        *string
	IsPublished *bool
	Limit       int64
	Offset      int64
}

const newsEventCollection = "news_events"

type newsEventMongoRepository struct {
	db *mongo.Database
}

// NewNewsEventMongoRepository creates the news/event repository and ensures
// the unique slug index exists.
func NewNewsEventMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) NewsEventRepository {
	collection := db.Collection(newsEventCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create news/event indexes")
	}

	return &newsEventMongoRepository{db: db}
}

func (r *newsEventMongoRepository) CreateNewsEvent(ctx context.Context, item *model.NewsEvent) (*model.NewsEvent, error) {
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	result, err := r.db.Collection(newsEventCollection).InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		item.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return item, nil
}

func (r *newsEventMongoRepository) GetNewsEvent(ctx context.Context, id string) (*model.NewsEvent, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(newsEventCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var item model.NewsEvent
	if err := result.Decode(&item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *newsEventMongoRepository) GetNewsEventBySlug(ctx context.Context, slug string) (*model.NewsEvent, error) {
	result := r.db.Collection(newsEventCollection).FindOne(ctx, bson.M{"slug": slug})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var item model.NewsEvent
	if err := result.Decode(&item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *newsEventMongoRepository) UpdateNewsEvent(
	ctx context.Context,
	id string,
	params UpdateNewsEventParams,
) (*model.NewsEvent, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	updateMap := bson.M{}
	if params.Title != nil {
		updateMap["title"] = *params.Title
	}
	if params.Slug != nil {
		updateMap["slug"] = *params.Slug
	}
	if params.Kind != nil {
		updateMap["kind"] = *params.Kind
	}
	if params.Body != nil {
		updateMap["body"] = *params.Body
	}
	if params.ImageURL != nil {
		updateMap["image_url"] = *params.ImageURL
	}
	if params.EventDate != nil {
		updateMap["event_date"] = *params.EventDate
	}
	if params.IsPublished != nil {
		updateMap["is_published"] = *params.IsPublished
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no news/event fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(newsEventCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var item model.NewsEvent
	if err := result.Decode(&item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *newsEventMongoRepository) DeleteNewsEvent(ctx context.Context, id string) (*model.NewsEvent, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(newsEventCollection).FindOneAndDelete(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var item model.NewsEvent
	if err := result.Decode(&item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *newsEventMongoRepository) ListNewsEvents(
	ctx context.Context,
	params FilterNewsEventsParams,
) ([]*model.NewsEvent, error) {
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
	if params.Kind != nil {
		filter["kind"] = *params.Kind
	}
	if params.IsPublished != nil {
		filter["is_published"] = *params.IsPublished
	}

	cursor, err := r.db.Collection(newsEventCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*model.NewsEvent
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}
