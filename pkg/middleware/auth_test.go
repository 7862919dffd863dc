package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"helper-booking/internal/data/entity"
	"helper-booking/internal/data/memstore"
	"helper-booking/pkg/database"
	"helper-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "unit-test-secret"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := utils.GetUserIDFromContext(r.Context())
		role, _ := utils.GetRoleFromContext(r.Context())
		utils.WriteJSON(w, http.StatusOK, map[string]string{
			"user_id": userID.String(),
			"role":    role,
		})
	})
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()

	var body utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func connectedState(t *testing.T) *database.ConnState {
	t.Helper()

	state := database.NewConnState(zap.NewNop())
	state.Set(true, "test")
	return state
}

func TestAuthMissingToken(t *testing.T) {
	mem := memstore.NewRepository(memstore.New())
	handler := Auth(testSecret, mem.User, connectedState(t), zap.NewNop())(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "No token provided, authorization denied", body.Msg)
}

func TestAuthValidTokenEitherHeader(t *testing.T) {
	mem := memstore.NewRepository(memstore.New())
	handler := Auth(testSecret, mem.User, connectedState(t), zap.NewNop())(okHandler())

	userID := uuid.New()
	token, err := utils.GenerateToken(userID, "customer", utils.JWTConfig{Secret: testSecret, ExpiryHours: 1})
	require.NoError(t, err)

	// Authorization: Bearer
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// x-auth-token
	req = httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("x-auth-token", token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var ctxBody map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&ctxBody))
	assert.Equal(t, userID.String(), ctxBody["user_id"])
	assert.Equal(t, "customer", ctxBody["role"])
}

func TestAuthExpiredToken(t *testing.T) {
	mem := memstore.NewRepository(memstore.New())
	handler := Auth(testSecret, mem.User, connectedState(t), zap.NewNop())(okHandler())

	token, err := utils.GenerateToken(uuid.New(), "customer", utils.JWTConfig{Secret: testSecret, ExpiryHours: -1})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token has expired, please login again", decodeEnvelope(t, rec).Msg)
}

func TestAuthWrongKeyToken(t *testing.T) {
	mem := memstore.NewRepository(memstore.New())
	handler := Auth(testSecret, mem.User, connectedState(t), zap.NewNop())(okHandler())

	token, err := utils.GenerateToken(uuid.New(), "customer", utils.JWTConfig{Secret: "other-secret", ExpiryHours: 1})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token is not valid", decodeEnvelope(t, rec).Msg)
}

func TestAuthMemoryModeRechecksIdentity(t *testing.T) {
	store := memstore.New()
	mem := memstore.NewRepository(store)
	state := database.NewConnState(zap.NewNop()) // starts disconnected
	handler := Auth(testSecret, mem.User, state, zap.NewNop())(okHandler())

	cfg := utils.JWTConfig{Secret: testSecret, ExpiryHours: 1}

	// a token for a user the memory store has never seen
	ghostToken, err := utils.GenerateToken(uuid.New(), "customer", cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+ghostToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token is not valid", decodeEnvelope(t, rec).Msg)

	// the same check passes once the user exists in the memory store
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Asha",
		Email:    "asha@example.com",
		Role:     entity.RoleCustomer,
		IsActive: true,
	}
	require.NoError(t, mem.User.Create(context.Background(), user))

	knownToken, err := utils.GenerateToken(user.ID, "customer", cfg)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+knownToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// connected mode skips the recheck entirely
	state.Set(true, "test")
	req = httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+ghostToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// failingUserRepo always errors on lookups
type failingUserRepo struct{}

func (failingUserRepo) Create(context.Context, *entity.User) error { return errors.New("store down") }
func (failingUserRepo) FindByID(context.Context, uuid.UUID) (*entity.User, error) {
	return nil, errors.New("store down")
}
func (failingUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, errors.New("store down")
}
func (failingUserRepo) Update(context.Context, *entity.User) error { return errors.New("store down") }

func TestAuthMemoryModeLookupFailure(t *testing.T) {
	state := database.NewConnState(zap.NewNop())
	handler := Auth(testSecret, failingUserRepo{}, state, zap.NewNop())(okHandler())

	token, err := utils.GenerateToken(uuid.New(), "customer", utils.JWTConfig{Secret: testSecret, ExpiryHours: 1})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Server error during authentication", decodeEnvelope(t, rec).Msg)
}
