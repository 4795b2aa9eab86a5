package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/corporate-site-api/internal/apperror"
	"github.com/vasapolrittideah/corporate-site-api/internal/config"
	"github.com/vasapolrittideah/corporate-site-api/internal/httpio"
	"github.com/vasapolrittideah/corporate-site-api/internal/model"
	"github.com/vasapolrittideah/corporate-site-api/internal/repository"
	"github.com/vasapolrittideah/corporate-site-api/internal/token"
)

type fakeAccountRepo struct {
	accounts map[string]*model.Account
}

func (f *fakeAccountRepo) CreateAccount(_ context.Context, account *model.Account) (*model.Account, error) {
	return account, nil
}

func (f *fakeAccountRepo) GetAccount(_ context.Context, id string) (*model.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	loaded := *account
	loaded.PasswordHash = ""
	return &loaded, nil
}

func (f *fakeAccountRepo) GetAccountByEmail(_ context.Context, email string) (*model.Account, error) {
	for _, account := range f.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeAccountRepo) UpdateLastLogin(_ context.Context, _ string) error { return nil }

func (f *fakeAccountRepo) SetActive(_ context.Context, id string, active bool) (*model.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	account.IsActive = active

	updated := *account
	updated.PasswordHash = ""
	return &updated, nil
}

func (f *fakeAccountRepo) ListAccounts(
	_ context.Context,
	_ repository.FilterAccountsParams,
) ([]*model.Account, error) {
	return nil, nil
}

func newTestAuthenticator(t *testing.T, expiresIn time.Duration, repo *fakeAccountRepo) (*Authenticator, *token.Service) {
	t.Helper()

	tokens, err := token.NewService(config.TokenConfig{
		Secret:    "0123456789abcdef0123456789abcdef",
		Issuer:    "corporate-site-api",
		Audience:  "corporate-site",
		ExpiresIn: expiresIn,
	})
	require.NoError(t, err)

	logger := zerolog.Nop()
	responder := httpio.NewResponder(&logger, true)

	return NewAuthenticator(tokens, repo, responder), tokens
}

func seedAccount(repo *fakeAccountRepo, role string, active bool) *model.Account {
	account := &model.Account{
		ID:       bson.NewObjectID(),
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Role:     role,
		IsActive: active,
	}
	repo.accounts[account.ID.Hex()] = account
	return account
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Code
}

func runAuthenticated(authn *Authenticator, req *http.Request) (*httptest.ResponseRecorder, *model.Account) {
	var got *model.Account
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = httpio.AccountFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	authn.Authenticate(next).ServeHTTP(rec, req)
	return rec, got
}

func TestAuthenticate_Success(t *testing.T) {
	t.Parallel()

	repo := &fakeAccountRepo{accounts: map[string]*model.Account{}}
	authn, tokens := newTestAuthenticator(t, time.Hour, repo)
	account := seedAccount(repo, model.RoleUser, true)

	tok, err := tokens.Issue(account.ID.Hex(), account.Role)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	rec, got := runAuthenticated(authn, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, account.ID, got.ID)
	assert.Empty(t, got.PasswordHash)
}

func TestAuthenticate_SchemeIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	repo := &fakeAccountRepo{accounts: map[string]*model.Account{}}
	authn, tokens := newTestAuthenticator(t, time.Hour, repo)
	account := seedAccount(repo, model.RoleUser, true)

	tok, err := tokens.Issue(account.ID.Hex(), account.Role)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "bearer "+tok)

	rec, _ := runAuthenticated(authn, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	t.Parallel()

	repo := &fakeAccountRepo{accounts: map[string]*model.Account{}}
	authn, _ := newTestAuthenticator(t, time.Hour, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)

	rec, got := runAuthenticated(authn, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apperror.CodeNoToken, errorCode(t, rec))
	assert.Nil(t, got)
}

func TestAuthenticate_ExpiredTokenHasDistinctCode(t *testing.T) {
	t.Parallel()

	repo := &fakeAccountRepo{accounts: map[string]*model.Account{}}
	authn, tokens := newTestAuthenticator(t, -2*time.Minute, repo)
	account := seedAccount(repo, model.RoleUser, true)

	tok, err := tokens.Issue(account.ID.Hex(), account.Role)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	rec, _ := runAuthenticated(authn, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apperror.CodeTokenExpired, errorCode(t, rec))
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	t.Parallel()

	repo := &fakeAccountRepo{accounts: map[string]*model.Account{}}
	authn, _ := newTestAuthenticator(t, time.Hour, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")

	rec, _ := runAuthenticated(authn, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apperror.CodeTokenInvalid, errorCode(t, rec))
}

func TestAuthenticate_UnknownAndDeactivatedLookTheSame(t *testing.T) {
	t.Parallel()

	repo := &fakeAccountRepo{accounts: map[string]*model.Account{}}
	authn, tokens := newTestAuthenticator(t, time.Hour, repo)

	deactivated := seedAccount(repo, model.RoleUser, false)

	deactivatedTok, err := tokens.Issue(deactivated.ID.Hex(), deactivated.Role)
	require.NoError(t, err)
	unknownTok, err := tokens.Issue(bson.NewObjectID().Hex(), model.RoleUser)
	require.NoError(t, err)

	for name, tok := range map[string]string{"deactivated": deactivatedTok, "unknown": unknownTok} {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)

		rec, got := runAuthenticated(authn, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
		assert.Equal(t, apperror.CodeTokenInvalid, errorCode(t, rec), name)
		assert.Nil(t, got, name)
		assert.NotContains(t, rec.Body.String(), "jane@example.com", name)
	}
}
