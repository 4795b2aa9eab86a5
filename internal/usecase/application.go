package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/corporate-site-api/internal/model"
	"github.com/vasapolrittideah/corporate-site-api/internal/repository"
)

// Notifier sends operator notifications. Delivery is best-effort: a failed
// notification is logged and never fails the request that triggered it.
type Notifier interface {
	Notify(subject, body string) error
}

// ApplicationUsecase defines the interface for career application use cases.
type ApplicationUsecase interface {
	SubmitApplication(ctx context.Context, params SubmitApplicationParams) (*model.CareerApplication, error)
	GetApplication(ctx context.Context, id string) (*model.CareerApplication, error)
	UpdateApplicationStatus(ctx context.Context, id, status string) (*model.CareerApplication, error)
	ListApplications(ctx context.Context, params repository.FilterApplicationsParams) ([]*model.CareerApplication, error)
}

// SubmitApplicationParams defines the parameters for submitting a career
// application.
type SubmitApplicationParams struct {
	CareerID    string
	Name        string
	Email       string
	Phone       string
	CoverLetter string
	ResumeURL   string
}

// Expected outcomes.
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrCareerClosed        = errors.New("this position is no longer accepting applications")
)

type applicationUsecase struct {
	applicationRepo repository.ApplicationRepository
	careerRepo      repository.CareerRepository
	notifier        Notifier
	logger          *zerolog.Logger
}

// NewApplicationUsecase creates a new instance of ApplicationUsecase.
func NewApplicationUsecase(
	applicationRepo repository.ApplicationRepository,
	careerRepo repository.CareerRepository,
	notifier Notifier,
	logger *zerolog.Logger,
) ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		careerRepo:      careerRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

func (u *applicationUsecase) SubmitApplication(
	ctx context.Context,
	params SubmitApplicationParams,
) (*model.CareerApplication, error) {
	career, err := u.careerRepo.GetCareer(ctx, params.CareerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCareerNotFound
		}

		return nil, err
	}

	if !career.IsOpen {
		return nil, ErrCareerClosed
	}

	application, err := u.applicationRepo.CreateApplication(ctx, &model.CareerApplication{
		CareerID:    career.ID,
		Reference:   uuid.NewString(),
		Name:        params.Name,
		Email:       params.Email,
		Phone:       params.Phone,
		CoverLetter: params.CoverLetter,
		ResumeURL:   params.ResumeURL,
		Status:      model.ApplicationSubmitted,
	})
	if err != nil {
		return nil, err
	}

	if u.notifier != nil {
		subject := fmt.Sprintf("New application for %s", career.Title)
		body := fmt.Sprintf(
			"Candidate: %s <%s>\nPosition: %s (%s)\nReference: %s\nResume: %s",
			application.Name, application.Email,
			career.Title, career.Department,
			application.Reference, application.ResumeURL,
		)
		if err := u.notifier.Notify(subject, body); err != nil {
			u.logger.Error().Err(err).
				Str("reference", application.Reference).
				Msg("failed to send application notification")
		}
	}

	return application, nil
}

func (u *applicationUsecase) GetApplication(ctx context.Context, id string) (*model.CareerApplication, error) {
	application, err := u.applicationRepo.GetApplication(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrApplicationNotFound
		}

		return nil, err
	}

	return application, nil
}

func (u *applicationUsecase) UpdateApplicationStatus(
	ctx context.Context,
	id, status string,
) (*model.CareerApplication, error) {
	application, err := u.applicationRepo.UpdateApplicationStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrApplicationNotFound
		}

		return nil, err
	}

	return application, nil
}

func (u *applicationUsecase) ListApplications(
	ctx context.Context,
	params repository.FilterApplicationsParams,
) ([]*model.CareerApplication, error) {
	return u.applicationRepo.ListApplications(ctx, params)
}
