package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/corporate-site-api/internal/model"
	"github.com/vasapolrittideah/corporate-site-api/internal/repository"
)

// CSRProjectUsecase defines the interface for CSR project use cases.
type CSRProjectUsecase interface {
	CreateCSRProject(ctx context.Context, project *model.CSRProject) (*model.CSRProject, error)
	GetCSRProject(ctx context.Context, id string) (*model.CSRProject, error)
	UpdateCSRProject(ctx context.Context, id string, params repository.UpdateCSRProjectParams) (*model.CSRProject, error)
	DeleteCSRProject(ctx context.Context, id string) (*model.CSRProject, error)
	ListCSRProjects(ctx context.Context, params repository.FilterCSRProjectsParams) ([]*model.CSRProject, error)
	ListPublishedCSRProjects(ctx context.Context, limit, offset int64) ([]*model.CSRProject, error)
}

// ErrCSRProjectNotFound is returned when a CSR project does not exist.
var ErrCSRProjectNotFound = errors.New("CSR project not found")

type csrProjectUsecase struct {
	projectRepo repository.CSRProjectRepository
}

// NewCSRProjectUsecase creates a new instance of CSRProjectUsecase.
func NewCSRProjectUsecase(projectRepo repository.CSRProjectRepository) CSRProjectUsecase {
	return &csrProjectUsecase{projectRepo: projectRepo}
}

func (u *csrProjectUsecase) CreateCSRProject(ctx context.Context, project *model.CSRProject) (*model.CSRProject, error) {
	return u.projectRepo.CreateCSRProject(ctx, project)
}

func (u *csrProjectUsecase) GetCSRProject(ctx context.Context, id string) (*model.CSRProject, error) {
	project, err := u.projectRepo.GetCSRProject(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCSRProjectNotFound
		}

		return nil, err
	}

	return project, nil
}

func (u *csrProjectUsecase) UpdateCSRProject(
	ctx context.Context,
	id string,
	params repository.UpdateCSRProjectParams,
) (*model.CSRProject, error) {
	project, err := u.projectRepo.UpdateCSRProject(ctx, id, params)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCSRProjectNotFound
		}

		return nil, err
	}

	return project, nil
}

func (u *csrProjectUsecase) DeleteCSRProject(ctx context.Context, id string) (*model.CSRProject, error) {
	project, err := u.projectRepo.DeleteCSRProject(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCSRProjectNotFound
		}

		return nil, err
	}

	return project, nil
}

func (u *csrProjectUsecase) ListCSRProjects(
	ctx context.Context,
	params repository.FilterCSRProjectsParams,
) ([]*model.CSRProject, error) {
	return u.projectRepo.ListCSRProjects(ctx, params)
}

func (u *csrProjectUsecase) ListPublishedCSRProjects(
	ctx context.Context,
	limit, offset int64,
) ([]*model.CSRProject, error) {
	published := true
	return u.projectRepo.ListCSRProjects(ctx, repository.FilterCSRProjectsParams{
		IsPublished: &published,
		Limit:       limit,
		Offset:      offset,
	})
}
