package wire

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"helper-booking/internal/data/memstore"
	"helper-booking/internal/data/repository"
	"helper-booking/pkg/database"
	"helper-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*App, *database.ConnState) {
	t.Helper()

	state := database.NewConnState(zap.NewNop()) // memory mode
	memRepo := memstore.NewRepository(memstore.New())
	repo := repository.NewFallbackRepository(nil, memRepo, state)

	config := &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "unit-test-secret",
			ExpiryHours: 1,
		},
	}

	return Wiring(repo, memRepo, config, state, zap.NewNop()), state
}

func doJSON(t *testing.T, app *App, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func TestHealthReportsStoreMode(t *testing.T) {
	app, state := newTestApp(t)

	rec := doJSON(t, app, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "memory", body["store"])

	state.Set(true, "test")
	rec = doJSON(t, app, http.MethodGet, "/health", "", nil)
	var connected map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&connected))
	assert.Equal(t, "mongo", connected["store"])
}

func TestLoginThenProfileFlow(t *testing.T) {
	app, _ := newTestApp(t)

	rec := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "asha@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var login struct {
		Success bool   `json:"success"`
		Msg     string `json:"msg"`
		Token   string `json:"token"`
		User    struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))
	assert.True(t, login.Success)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, "asha@example.com", login.User.Email)

	// the token opens the profile
	rec = doJSON(t, app, http.MethodGet, "/api/auth/profile", login.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile struct {
		Success bool `json:"success"`
		User    struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&profile))
	assert.True(t, profile.Success)
	assert.Equal(t, "asha@example.com", profile.User.Email)

	// no token, exact refusal body
	rec = doJSON(t, app, http.MethodGet, "/api/auth/profile", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var denied utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&denied))
	assert.False(t, denied.Success)
	assert.Equal(t, "No token provided, authorization denied", denied.Msg)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _ := newTestApp(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/bookings"},
		{http.MethodGet, "/api/wallet"},
		{http.MethodGet, "/api/community/requests"},
		{http.MethodGet, "/api/community/volunteers"},
	} {
		rec := doJSON(t, app, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}
}

func TestEndToEndBookingFlow(t *testing.T) {
	app, _ := newTestApp(t)

	type account struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}

	register := func(name, email, role string) account {
		body := map[string]any{
			"name":     name,
			"email":    email,
			"password": "secret123",
		}
		if role != "" {
			body["role"] = role
		}
		rec := doJSON(t, app, http.MethodPost, "/api/auth/register", "", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		var auth account
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&auth))
		return auth
	}

	customer := register("Asha", "asha@example.com", "")
	provider := register("Plumb Co", "plumb@example.com", "provider")
	customerToken := customer.Token
	providerID := provider.User.ID

	rec := doJSON(t, app, http.MethodPost, "/api/bookings", customerToken, map[string]any{
		"provider_id":    providerID,
		"service_type":   "plumber",
		"scheduled_at":   "2030-01-02T10:00:00Z",
		"address":        "12 Canal Street",
		"amount":         250,
		"payment_method": "wallet",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Success bool `json:"success"`
		Data    struct {
			BookingID string `json:"booking_id"`
			Status    string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.True(t, created.Success)
	assert.NotEmpty(t, created.Data.BookingID)
	assert.Equal(t, "pending", created.Data.Status)

	// top up and pay through the wallet endpoints
	rec = doJSON(t, app, http.MethodPost, "/api/wallet/add", customerToken, map[string]any{"amount": 300})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, app, http.MethodPost, "/api/wallet/pay", customerToken, map[string]any{
		"booking_id": created.Data.BookingID,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var paid struct {
		Data struct {
			Balance float64 `json:"balance"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&paid))
	assert.Equal(t, 50.0, paid.Data.Balance)
}

func TestRejectedActionsAreClientErrors(t *testing.T) {
	app, _ := newTestApp(t)

	register := func(name, email, role string) (token, id string) {
		body := map[string]any{
			"name":     name,
			"email":    email,
			"password": "secret123",
		}
		if role != "" {
			body["role"] = role
		}
		rec := doJSON(t, app, http.MethodPost, "/api/auth/register", "", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		var auth struct {
			Token string `json:"token"`
			User  struct {
				ID string `json:"id"`
			} `json:"user"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&auth))
		return auth.Token, auth.User.ID
	}

	customerToken, _ := register("Asha", "asha@example.com", "")
	_, providerID := register("Plumb Co", "plumb@example.com", "provider")

	rec := doJSON(t, app, http.MethodPost, "/api/bookings", customerToken, map[string]any{
		"provider_id":    providerID,
		"service_type":   "plumber",
		"scheduled_at":   "2030-01-02T10:00:00Z",
		"address":        "12 Canal Street",
		"amount":         250,
		"payment_method": "wallet",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data struct {
			BookingID string `json:"booking_id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	bookingID := created.Data.BookingID

	// feedback on a pending booking is the caller's mistake, not a
	// server fault
	rec = doJSON(t, app, http.MethodPost, "/api/bookings/"+bookingID+"/feedback", customerToken,
		map[string]any{"rating": 5})
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	var refused utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&refused))
	assert.Equal(t, "feedback is only allowed on completed bookings", refused.Msg)

	// cancel, then try to pay
	rec = doJSON(t, app, http.MethodPut, "/api/bookings/"+bookingID+"/status", customerToken,
		map[string]any{"status": "cancelled"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, app, http.MethodPost, "/api/wallet/add", customerToken, map[string]any{"amount": 300})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, app, http.MethodPost, "/api/wallet/pay", customerToken,
		map[string]any{"booking_id": bookingID})
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&refused))
	assert.Equal(t, "booking is not payable", refused.Msg)
}
