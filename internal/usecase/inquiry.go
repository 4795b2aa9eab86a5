package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/corporate-site-api/internal/model"
	"github.com/vasapolrittideah/corporate-site-api/internal/repository"
)

// InquiryUsecase defines the interface for client inquiry use cases.
type InquiryUsecase interface {
	SubmitInquiry(ctx context.Context, inquiry *model.ClientInquiry) (*model.ClientInquiry, error)
	GetInquiry(ctx context.Context, id string) (*model.ClientInquiry, error)
	MarkInquiryHandled(ctx context.Context, id string) (*model.ClientInquiry, error)
	ListInquiries(ctx context.Context, params repository.FilterInquiriesParams) ([]*model.ClientInquiry, error)
}

// ErrInquiryNotFound is returned when a client inquiry does not exist.
var ErrInquiryNotFound = errors.New("inquiry not found")

type inquiryUsecase struct {
	inquiryRepo repository.InquiryRepository
	notifier    Notifier
	logger      *zerolog.Logger
}

// NewInquiryUsecase creates a new instance of InquiryUsecase.
func NewInquiryUsecase(
	inquiryRepo repository.InquiryRepository,
	notifier Notifier,
	logger *zerolog.Logger,
) InquiryUsecase {
	return &inquiryUsecase{
		inquiryRepo: inquiryRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (u *inquiryUsecase) SubmitInquiry(
	ctx context.Context,
	inquiry *model.ClientInquiry,
) (*model.ClientInquiry, error) {
	created, err := u.inquiryRepo.CreateInquiry(ctx, inquiry)
	if err != nil {
		return nil, err
	}

	if u.notifier != nil {
		subject := fmt.Sprintf("New client inquiry: %s", created.Subject)
		body := fmt.Sprintf(
			"Company: %s\nContact: %s <%s>\n\n%s",
			created.Company, created.ContactName, created.Email, created.Message,
		)
		if err := u.notifier.Notify(subject, body); err != nil {
			u.logger.Error().Err(err).
				Str("inquiry_id", created.ID.Hex()).
				Msg("failed to send inquiry notification")
		}
	}

	return created, nil
}

func (u *inquiryUsecase) GetInquiry(ctx context.Context, id string) (*model.ClientInquiry, error) {
	inquiry, err := u.inquiryRepo.GetInquiry(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInquiryNotFound
		}

		return nil, err
	}

	return inquiry, nil
}

func (u *inquiryUsecase) MarkInquiryHandled(ctx context.Context, id string) (*model.ClientInquiry, error) {
	inquiry, err := u.inquiryRepo.MarkInquiryHandled(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInquiryNotFound
		}

		return nil, err
	}

	return inquiry, nil
}

func (u *inquiryUsecase) ListInquiries(
	ctx context.Context,
	params repository.FilterInquiriesParams,
) ([]*model.ClientInquiry, error) {
	return u.inquiryRepo.ListInquiries(ctx, params)
}
