package usecase

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/corporate-site-api/internal/model"
	"github.com/vasapolrittideah/corporate-site-api/internal/repository"
	"github.com/vasapolrittideah/corporate-site-api/internal/security"
	"github.com/vasapolrittideah/corporate-site-api/internal/token"
)

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	Register(ctx context.Context, params RegisterParams) (*model.Account, string, error)
	Login(ctx context.Context, params LoginParams) (*model.Account, string, error)
	CreateAdmin(ctx context.Context, params RegisterParams) (*model.Account, error)
	GetAccount(ctx context.Context, id string) (*model.Account, error)
	ListAccounts(ctx context.Context, params repository.FilterAccountsParams) ([]*model.Account, error)
	SetAccountActive(ctx context.Context, id string, active bool) (*model.Account, error)
}

// RegisterParams defines the parameters for account registration.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

// LoginParams defines the parameters for account login.
type LoginParams struct {
	Email    string
	Password string
}

// Expected outcomes. Unknown email, wrong password, and deactivated account
// all map to ErrInvalidCredentials so login failures do not reveal whether
// an account exists.
var (
	ErrEmailExists        = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
)

type authUsecase struct {
	accountRepo repository.AccountRepository
	tokens      *token.Service
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(accountRepo repository.AccountRepository, tokens *token.Service) AuthUsecase {
	return &authUsecase{
		accountRepo: accountRepo,
		tokens:      tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, params RegisterParams) (*model.Account, string, error) {
	account, err := u.createAccount(ctx, params, model.RoleUser)
	if err != nil {
		return nil, "", err
	}

	tokenStr, err := u.tokens.Issue(account.ID.Hex(), account.Role)
	if err != nil {
		return nil, "", err
	}

	return account, tokenStr, nil
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (*model.Account, string, error) {
	account, err := u.accountRepo.GetAccountByEmail(ctx, normalizeEmail(params.Email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrInvalidCredentials
		}

		return nil, "", err
	}

	if ok, err := security.VerifyPassword(params.Password, account.PasswordHash); err != nil {
		return nil, "", err
	} else if !ok {
		return nil, "", ErrInvalidCredentials
	}

	if !account.IsActive {
		return nil, "", ErrInvalidCredentials
	}

	if err := u.accountRepo.UpdateLastLogin(ctx, account.ID.Hex()); err != nil {
		return nil, "", err
	}

	tokenStr, err := u.tokens.Issue(account.ID.Hex(), account.Role)
	if err != nil {
		return nil, "", err
	}

	account.PasswordHash = ""

	return account, tokenStr, nil
}

func (u *authUsecase) CreateAdmin(ctx context.Context, params RegisterParams) (*model.Account, error) {
	return u.createAccount(ctx, params, model.RoleAdmin)
}

func (u *authUsecase) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	account, err := u.accountRepo.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}

		return nil, err
	}

	return account, nil
}

func (u *authUsecase) ListAccounts(
	ctx context.Context,
	params repository.FilterAccountsParams,
) ([]*model.Account, error) {
	return u.accountRepo.ListAccounts(ctx, params)
}

// SetAccountActive is the deletion analogue: accounts are never removed,
// only deactivated. A deactivated account keeps its history but can no
// longer log in or use an outstanding token.
func (u *authUsecase) SetAccountActive(ctx context.Context, id string, active bool) (*model.Account, error) {
	account, err := u.accountRepo.SetActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}

		return nil, err
	}

	return account, nil
}

func (u *authUsecase) createAccount(
	ctx context.Context,
	params RegisterParams,
	role string,
) (*model.Account, error) {
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	account, err := u.accountRepo.CreateAccount(ctx, &model.Account{
		Name:         params.Name,
		Email:        normalizeEmail(params.Email),
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailExists
		}

		return nil, err
	}

	account.PasswordHash = ""

	return account, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
