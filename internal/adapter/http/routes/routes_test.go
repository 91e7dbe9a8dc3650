package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bond_portal/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func mockConfig() config.Config {
	return config.Config{
		Mode:                 config.ModeMock,
		TokenSecret:          "routes-test-token-secret-0123456789",
		TokenTTL:             time.Hour,
		OTPTTL:               15 * time.Minute,
		OTPHashKey:           "routes-test-otp-hash-key-0123456789",
		AcceptanceSessionTTL: 30 * time.Minute,
		UpstreamTimeout:      time.Second,
		PublicBaseURL:        "http://portal.test",
		FixturesPath:         "../../../../fixtures/mock_data.jsonc",
		AuditSink:            config.AuditSinkMemory,
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := build(context.Background(), mockConfig(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(app.close)
	return newRouter(app, zap.NewNop())
}

func call(t *testing.T, r *gin.Engine, method, path, groups string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if groups != "" {
		req.Header.Set("X-User-Groups", groups)
		req.Header.Set("X-User-ID", "u-7")
		req.Header.Set("X-User-Name", "Broker Seven")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func TestAcceptanceFlow_EndToEnd(t *testing.T) {
	r := newTestRouter(t)

	code, link := call(t, r, http.MethodPost, "/v1/offers/O1/acceptance-link", "broker", nil)
	require.Equal(t, http.StatusCreated, code)
	token, _ := link["token"].(string)
	otp, _ := link["otp"].(string)
	require.NotEmpty(t, token)
	require.Len(t, otp, 6)

	code, body := call(t, r, http.MethodPost, "/v1/bonds/O1/accept", "", map[string]string{"token": token})
	require.Equal(t, http.StatusBadRequest, code, "accept before validate-otp")
	require.Equal(t, "OTP_NOT_VERIFIED", body["code"])

	code, body = call(t, r, http.MethodPost, "/v1/bonds/O1/validate-otp", "", map[string]string{"token": token, "otp": otp})
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "offer")
	require.Contains(t, body, "policyholder")
	require.Contains(t, body, "beneficiary")

	code, body = call(t, r, http.MethodPost, "/v1/bonds/O1/accept", "", map[string]string{"token": token})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "accepted", body["status"])
	require.Equal(t, "O1", body["bondId"])

	code, _ = call(t, r, http.MethodPost, "/v1/bonds/O1/reject", "", map[string]string{"token": token})
	require.Equal(t, http.StatusBadRequest, code)

	code, body = call(t, r, http.MethodPost, "/v1/bonds/O1/validate-otp", "", map[string]string{"token": token, "otp": otp})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "INVALID_OTP", body["code"])

	code, body = call(t, r, http.MethodGet, "/v1/offers/O1", "viewer", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "accepted", body["status"])

	req := httptest.NewRequest(http.MethodGet, "/v1/offers/O1/audit", nil)
	req.Header.Set("X-User-Groups", "admin")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var events []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.NotEmpty(t, events)
	require.Contains(t, w.Body.String(), "BOND_ACCEPT_SUCCESS")
}

func TestCapabilities_Enforced(t *testing.T) {
	r := newTestRouter(t)

	code, _ := call(t, r, http.MethodPost, "/v1/offers/O1/acceptance-link", "viewer", nil)
	require.Equal(t, http.StatusForbidden, code)

	code, _ = call(t, r, http.MethodDelete, "/v1/offers/O1", "broker", nil)
	require.Equal(t, http.StatusForbidden, code)

	code, body := call(t, r, http.MethodDelete, "/v1/offers/O1", "wholesaler", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "soft_deleted", body["lifecycle"])

	code, _ = call(t, r, http.MethodPost, "/v1/parties", "viewer", map[string]string{"role": "beneficiary", "name": "X", "email": "x@y.example"})
	require.Equal(t, http.StatusForbidden, code)
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)

	code, body := call(t, r, http.MethodGet, "/v1/ping", "", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "pong", body["message"])
}
