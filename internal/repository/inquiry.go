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

// InquiryRepository defines the interface for client inquiry database
// operations.
type InquiryRepository interface {
	CreateInquiry(ctx context.Context, inquiry *model.ClientInquiry) (*model.ClientInquiry, error)
	GetInquiry(ctx context.Context, id string) (*model.ClientInquiry, error)
	MarkInquiryHandled(ctx context.Context, id string) (*model.ClientInquiry, error)
	ListInquiries(ctx context.Context, params FilterInquiriesParams) ([]*model.ClientInquiry, error)
}

// FilterInquiriesParams defines the parameters for filtering and paginating
// inquiries.
type FilterInquiriesParams struct {
	IsHandled *bool
	Limit     int64
	Offset    int64
}

const inquiryCollection = "client_inquiries"

type inquiryMongoRepository struct {
	db *mongo.Database
}

func NewInquiryMongoRepository(db *mongo.Database) InquiryRepository {
	return &inquiryMongoRepository{db: db}
}

func (r *inquiryMongoRepository) CreateInquiry(
	ctx context.Context,
	inquiry *model.ClientInquiry,
) (*model.ClientInquiry, error) {
	now := time.Now()
	inquiry.CreatedAt = now
	inquiry.UpdatedAt = now

	result, err := r.db.Collection(inquiryCollection).InsertOne(ctx, inquiry)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		inquiry.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return inquiry, nil
}

func (r *inquiryMongoRepository) GetInquiry(ctx context.Context, id string) (*model.ClientInquiry, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(inquiryCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var inquiry model.ClientInquiry
	if err := result.Decode(&inquiry); err != nil {
		return nil, err
	}

	return &inquiry, nil
}

func (r *inquiryMongoRepository) MarkInquiryHandled(ctx context.Context, id string) (*model.ClientInquiry, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(inquiryCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"is_handled": true, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var inquiry model.ClientInquiry
	if err := result.Decode(&inquiry); err != nil {
		return nil, err
	}

	return &inquiry, nil
}

func (r *inquiryMongoRepository) ListInquiries(
	ctx context.Context,
	params FilterInquiriesParams,
) ([]*model.ClientInquiry, error) {
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
	if params.IsHandled != nil {
		filter["is_handled"] = *params.IsHandled
	}

	cursor, err := r.db.Collection(inquiryCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var inquiries []*model.ClientInquiry
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, err
	}

	return inquiries, nil
}
