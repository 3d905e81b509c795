//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"github.com/Harishsingh-01/roomeaseserver/internal/handler/dto/request"
	"github.com/Harishsingh-01/roomeaseserver/internal/handler/dto/response"
	"github.com/Harishsingh-01/roomeaseserver/tests/common/dbtest"
	"github.com/Harishsingh-01/roomeaseserver/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp response.LoginResponse
	httptest.DecodeResponseBody(t, w.Body, &resp)
	require.NotEmpty(t, resp.Token, "Login response is missing the token")

	return resp.Token
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, "Test User", email, role)
	return LoginUser(t, router, email, dbtest.TestPassword)
}
