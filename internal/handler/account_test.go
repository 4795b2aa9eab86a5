package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vasapolrittideah/corporate-site-api/internal/model"
)

func seedAdminToken(t *testing.T, f *authFixture) string {
	t.Helper()

	admin, err := f.repo.CreateAccount(context.Background(), &model.Account{
		Name:     "Site Admin",
		Email:    "admin@example.com",
		Role:     model.RoleAdmin,
		IsActive: true,
	})
	require.NoError(t, err)

	tok, err := f.tokens.Issue(admin.ID.Hex(), admin.Role)
	require.NoError(t, err)
	return tok
}

func TestDeactivateAccountOverHTTP(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	adminTok := seedAdminToken(t, f)

	rec := f.do(t, http.MethodPost, "/api/auth/register",
		`{"name":"Jane Doe","email":"jane@example.com","password":"Abcdef1!"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered struct {
		User  model.Account `json:"user"`
		Token string        `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))

	rec = f.do(t, http.MethodPatch, "/api/accounts/"+registered.User.ID.Hex()+"/active",
		`{"active":false}`, adminTok)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated struct {
		Data model.Account `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.False(t, updated.Data.IsActive)

	// A deactivated account can no longer log in, and its outstanding
	// token stops working.
	rec = f.do(t, http.MethodPost, "/api/auth/login",
		`{"email":"jane@example.com","password":"Abcdef1!"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/auth/me", "", registered.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSetAccountActive_UnknownAccountOverHTTP(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	adminTok := seedAdminToken(t, f)

	rec := f.do(t, http.MethodPatch, "/api/accounts/"+bson.NewObjectID().Hex()+"/active",
		`{"active":false}`, adminTok)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetAccountActive_RequiresActiveField(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	adminTok := seedAdminToken(t, f)

	rec := f.do(t, http.MethodPatch, "/api/accounts/"+bson.NewObjectID().Hex()+"/active",
		`{}`, adminTok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestListAccounts_AdminOnly(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	adminTok := seedAdminToken(t, f)

	rec := f.do(t, http.MethodPost, "/api/auth/register",
		`{"name":"Jane Doe","email":"jane@example.com","password":"Abcdef1!"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))

	rec = f.do(t, http.MethodGet, "/api/accounts/", "", registered.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/accounts/", "", adminTok)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var listed struct {
		Data []model.Account `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed.Data, 2)
	assert.NotContains(t, rec.Body.String(), "password_hash")
}
