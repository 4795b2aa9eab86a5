package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/corporate-site-api/internal/model"
	"github.com/vasapolrittideah/corporate-site-api/internal/repository"
)

// NewsEventUsecase defines the interface for news/event use cases.
type NewsEventUsecase interface {
	CreateNewsEvent(ctx context.Context, item *model.NewsEvent) (*model.NewsEvent, error)
	GetNewsEvent(ctx context.Context, id string) (*model.NewsEvent, error)
	GetNewsEventBySlug(ctx context.Context, slug string) (*model.NewsEvent, error)
	UpdateNewsEvent(ctx context.Context, id string, params repository.UpdateNewsEventParams) (*model.NewsEvent, error)
	DeleteNewsEvent(ctx context.Context, id string) (*model.NewsEvent, error)
	ListNewsEvents(ctx context.Context, params repository.FilterNewsEventsParams) ([]*model.NewsEvent, error)
	ListPublishedNewsEvents(ctx context.Context, kind *string, limit, offset int64) ([]*model.NewsEvent, error)
}

// Expected outcomes.
var (
	ErrNewsEventNotFound = errors.New("news/event item not found")
	ErrSlugExists        = errors.New("an item with this slug already exists")
)

type newsEventUsecase struct {
	newsEventRepo repository.NewsEventRepository
}

// NewNewsEventUsecase creates a new instance of NewsEventUsecase.
func NewNewsEventUsecase(newsEventRepo repository.NewsEventRepository) NewsEventUsecase {
	return &newsEventUsecase{newsEventRepo: newsEventRepo}
}

func (u *newsEventUsecase) CreateNewsEvent(ctx context.Context, item *model.NewsEvent) (*model.NewsEvent, error) {
	created, err := u.newsEventRepo.CreateNewsEvent(ctx, item)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSlugExists
		}

		return nil, err
	}

	return created, nil
}

func (u *newsEventUsecase) GetNewsEvent(ctx context.Context, id string) (*model.NewsEvent, error) {
	item, err := u.newsEventRepo.GetNewsEvent(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNewsEventNotFound
		}

		return nil, err
	}

	return item, nil
}

func (u *newsEventUsecase) GetNewsEventBySlug(ctx context.Context, slug string) (*model.NewsEvent, error) {
	item, err := u.newsEventRepo.GetNewsEventBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNewsEventNotFound
		}

		return nil, err
	}

	return item, nil
}

func (u *newsEventUsecase) UpdateNewsEvent(
	ctx context.Context,
	id string,
	params repository.UpdateNewsEventParams,
) (*model.NewsEvent, error) {
	item, err := u.newsEventRepo.UpdateNewsEvent(ctx, id, params)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrNewsEventNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, ErrSlugExists
		default:
			return nil, err
		}
	}

	return item, nil
}

func (u *newsEventUsecase) DeleteNewsEvent(ctx context.Context, id string) (*model.NewsEvent, error) {
	item, err := u.newsEventRepo.DeleteNewsEvent(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNewsEventNotFound
		}

		return nil, err
	}

	return item, nil
}

func (u *newsEventUsecase) ListNewsEvents(
	ctx context.Context,
	params repository.FilterNewsEventsParams,
) ([]*model.NewsEvent, error) {
	return u.newsEventRepo.ListNewsEvents(ctx, params)
}

func (u *newsEventUsecase) ListPublishedNewsEvents(
	ctx context.Context,
	kind *string,
	limit, offset int64,
) ([]*model.NewsEvent, error) {
	published := true
	return u.newsEventRepo.ListNewsEvents(ctx, repository.FilterNewsEventsParams{
		Kind:        kind,
		IsPublished: &published,
		Limit:       limit,
		Offset:      offset,
	})
}
