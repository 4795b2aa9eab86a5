package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/corporate-site-api/internal/model"
	"github.com/vasapolrittideah/corporate-site-api/internal/repository"
)

// CareerUsecase defines the interface for job posting use cases. The public
// site only ever sees open postings; admin operations see everything.
type CareerUsecase interface {
	CreateCareer(ctx context.Context, career *model.Career) (*model.Career, error)
	GetCareer(ctx context.Context, id string) (*model.Career, error)
	UpdateCareer(ctx context.Context, id string, params repository.UpdateCareerParams) (*model.Career, error)
	DeleteCareer(ctx context.Context, id string) (*model.Career, error)
	ListCareers(ctx context.Context, params repository.FilterCareersParams) ([]*model.Career, error)
	ListOpenCareers(ctx context.Context, department *string, limit, offset int64) ([]*model.Career, error)
}

// ErrCareerNotFound is returned when a job posting does not exist.
var ErrCareerNotFound = errors.New("career not found")

type careerUsecase struct {
	careerRepo repository.CareerRepository
}

// NewCareerUsecase creates a new instance of CareerUsecase.
func NewCareerUsecase(careerRepo repository.CareerRepository) CareerUsecase {
	return &careerUsecase{careerRepo: careerRepo}
}

func (u *careerUsecase) CreateCareer(ctx context.Context, career *model.Career) (*model.Career, error) {
	return u.careerRepo.CreateCareer(ctx, career)
}

func (u *careerUsecase) GetCareer(ctx context.Context, id string) (*model.Career, error) {
	career, err := u.careerRepo.GetCareer(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCareerNotFound
		}

		return nil, err
	}

	return career, nil
}

func (u *careerUsecase) UpdateCareer(
	ctx context.Context,
	id string,
	params repository.UpdateCareerParams,
) (*model.Career, error) {
	career, err := u.careerRepo.UpdateCareer(ctx, id, params)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCareerNotFound
		}

		return nil, err
	}

	return career, nil
}

func (u *careerUsecase) DeleteCareer(ctx context.Context, id string) (*model.Career, error) {
	career, err := u.careerRepo.DeleteCareer(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCareerNotFound
		}

		return nil, err
	}

	return career, nil
}

func (u *careerUsecase) ListCareers(
	ctx context.Context,
	params repository.FilterCareersParams,
) ([]*model.Career, error) {
	return u.careerRepo.ListCareers(ctx, params)
}

func (u *careerUsecase) ListOpenCareers(
	ctx context.Context,
	department *string,
	limit, offset int64,
) ([]*model.Career, error) {
	open := true
	return u.careerRepo.ListCareers(ctx, repository.FilterCareersParams{
		Department: department,
		IsOpen:     &open,
		Limit:      limit,
		Offset:     offset,
	})
}
