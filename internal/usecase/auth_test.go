package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/corporate-site-api/internal/config"
	"github.com/vasapolrittideah/corporate-site-api/internal/model"
	"github.com/vasapolrittideah/corporate-site-api/internal/repository"
	"github.com/vasapolrittideah/corporate-site-api/internal/token"
)

type memoryAccountRepo struct {
	byID    map[string]*model.Account
	byEmail map[string]*model.Account
}

func newMemoryAccountRepo() *memoryAccountRepo {
	return &memoryAccountRepo{
		byID:    map[string]*model.Account{},
		byEmail: map[string]*model.Account{},
	}
}

func (m *memoryAccountRepo) CreateAccount(_ context.Context, account *model.Account) (*model.Account, error) {
	if _, exists := m.byEmail[account.Email]; exists {
		return nil, mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	}

	account.ID = bson.NewObjectID()
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt

	stored := *account
	m.byID[account.ID.Hex()] = &stored
	m.byEmail[account.Email] = &stored
	return account, nil
}

func (m *memoryAccountRepo) GetAccount(_ context.Context, id string) (*model.Account, error) {
	account, ok := m.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	loaded := *account
	loaded.PasswordHash = ""
	return &loaded, nil
}

func (m *memoryAccountRepo) GetAccountByEmail(_ context.Context, email string) (*model.Account, error) {
	account, ok := m.byEmail[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	loaded := *account
	return &loaded, nil
}

func (m *memoryAccountRepo) UpdateLastLogin(_ context.Context, id string) error {
	if account, ok := m.byID[id]; ok {
		now := time.Now()
		account.LastLogin = &now
	}
	return nil
}

func (m *memoryAccountRepo) SetActive(_ context.Context, id string, active bool) (*model.Account, error) {
	account, ok := m.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	account.IsActive = active

	updated := *account
	updated.PasswordHash = ""
	return &updated, nil
}

func (m *memoryAccountRepo) ListAccounts(
	_ context.Context,
	params repository.FilterAccountsParams,
) ([]*model.Account, error) {
	var accounts []*model.Account
	for _, account := range m.byID {
		if params.Role != nil && account.Role != *params.Role {
			continue
		}
		if params.IsActive != nil && account.IsActive != *params.IsActive {
			continue
		}

		loaded := *account
		loaded.PasswordHash = ""
		accounts = append(accounts, &loaded)
	}
	return accounts, nil
}

func newTestAuthUsecase(t *testing.T) (AuthUsecase, *memoryAccountRepo) {
	t.Helper()

	tokens, err := token.NewService(config.TokenConfig{
		Secret:    "0123456789abcdef0123456789abcdef",
		Issuer:    "corporate-site-api",
		Audience:  "corporate-site",
		ExpiresIn: time.Hour,
	})
	require.NoError(t, err)

	repo := newMemoryAccountRepo()
	return NewAuthUsecase(repo, tokens), repo
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()

	auth, _ := newTestAuthUsecase(t)
	ctx := context.Background()

	registered, registerTok, err := auth.Register(ctx, RegisterParams{
		Name:     "Jane Doe",
		Email:    "Jane@Example.com",
		Password: "Abcdef1!",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registerTok)
	assert.Equal(t, model.RoleUser, registered.Role)
	assert.Equal(t, "jane@example.com", registered.Email)
	assert.True(t, registered.IsActive)
	assert.Empty(t, registered.PasswordHash)

	loggedIn, loginTok, err := auth.Login(ctx, LoginParams{
		Email:    "jane@example.com",
		Password: "Abcdef1!",
	})
	require.NoError(t, err)
	require.NotEmpty(t, loginTok)
	assert.Equal(t, registered.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	auth, _ := newTestAuthUsecase(t)
	ctx := context.Background()

	_, _, err := auth.Register(ctx, RegisterParams{
		Name: "Jane Doe", Email: "jane@example.com", Password: "Abcdef1!",
	})
	require.NoError(t, err)

	_, _, err = auth.Register(ctx, RegisterParams{
		Name: "Other Jane", Email: "jane@example.com", Password: "Ghijkl2!",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	auth, _ := newTestAuthUsecase(t)
	ctx := context.Background()

	_, _, err := auth.Register(ctx, RegisterParams{
		Name: "Jane Doe", Email: "jane@example.com", Password: "Abcdef1!",
	})
	require.NoError(t, err)

	_, _, err = auth.Login(ctx, LoginParams{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	auth, _ := newTestAuthUsecase(t)

	_, _, err := auth.Login(context.Background(), LoginParams{
		Email: "nobody@example.com", Password: "Abcdef1!",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	t.Parallel()

	auth, repo := newTestAuthUsecase(t)
	ctx := context.Background()

	registered, _, err := auth.Register(ctx, RegisterParams{
		Name: "Jane Doe", Email: "jane@example.com", Password: "Abcdef1!",
	})
	require.NoError(t, err)
	_, err = repo.SetActive(ctx, registered.ID.Hex(), false)
	require.NoError(t, err)

	// Deactivation must be indistinguishable from bad credentials.
	_, _, err = auth.Login(ctx, LoginParams{Email: "jane@example.com", Password: "Abcdef1!"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSetAccountActive(t *testing.T) {
	t.Parallel()

	auth, _ := newTestAuthUsecase(t)
	ctx := context.Background()

	registered, _, err := auth.Register(ctx, RegisterParams{
		Name: "Jane Doe", Email: "jane@example.com", Password: "Abcdef1!",
	})
	require.NoError(t, err)

	deactivated, err := auth.SetAccountActive(ctx, registered.ID.Hex(), false)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)
	assert.Empty(t, deactivated.PasswordHash)

	reactivated, err := auth.SetAccountActive(ctx, registered.ID.Hex(), true)
	require.NoError(t, err)
	assert.True(t, reactivated.IsActive)
}

func TestSetAccountActive_UnknownAccount(t *testing.T) {
	t.Parallel()

	auth, _ := newTestAuthUsecase(t)

	_, err := auth.SetAccountActive(context.Background(), bson.NewObjectID().Hex(), false)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestListAccounts_FiltersByRole(t *testing.T) {
	t.Parallel()

	auth, _ := newTestAuthUsecase(t)
	ctx := context.Background()

	_, _, err := auth.Register(ctx, RegisterParams{
		Name: "Jane Doe", Email: "jane@example.com", Password: "Abcdef1!",
	})
	require.NoError(t, err)
	_, err = auth.CreateAdmin(ctx, RegisterParams{
		Name: "Site Admin", Email: "admin@example.com", Password: "Abcdef1!",
	})
	require.NoError(t, err)

	admin := model.RoleAdmin
	accounts, err := auth.ListAccounts(ctx, repository.FilterAccountsParams{Role: &admin})
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "admin@example.com", accounts[0].Email)
	assert.Empty(t, accounts[0].PasswordHash)
}

func TestCreateAdmin(t *testing.T) {
	t.Parallel()

	auth, _ := newTestAuthUsecase(t)

	admin, err := auth.CreateAdmin(context.Background(), RegisterParams{
		Name: "Site Admin", Email: "admin@example.com", Password: "Abcdef1!",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.Empty(t, admin.PasswordHash)
}
