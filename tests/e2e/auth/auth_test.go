//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"github.com/Harishsingh-01/roomeaseserver/internal/handler/dto/request"
	"github.com/Harishsingh-01/roomeaseserver/internal/handler/dto/response"
	"github.com/Harishsingh-01/roomeaseserver/tests/common/authtest"
	"github.com/Harishsingh-01/roomeaseserver/tests/common/dbtest"
	"github.com/Harishsingh-01/roomeaseserver/tests/common/httptest"
	"github.com/Harishsingh-01/roomeaseserver/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	sendOTPURL   = "/api/auth/send-otp"
	verifyOTPURL = "/api/auth/verify-otp"
	loginURL     = "/api/auth/login"
	profileURL   = "/api/user/profile"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

// =============================================================================
// TestRegistration - OTP registration flow
// =============================================================================

func (s *AuthSuite) TestRegistration() {
	s.Run("Normal case: OTP round trip registers the account", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sendOTPURL,
			request.SendOTPRequest{Email: "newuser@example.com"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		code := s.OTP.Code("newuser@example.com")
		require.Len(t, code, 6, "verification code was not stored")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, verifyOTPURL, request.RegisterRequest{
			Name:     "New User",
			Email:    "newuser@example.com",
			Password: "password123",
			Code:     code,
		}, "")

		var registered response.RegisterResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &registered)
		require.NotEqual(t, uuid.Nil, registered.UserID)

		token := authtest.LoginUser(t, s.Router, "newuser@example.com", "password123")
		require.NotEmpty(t, token)
	})

	s.Run("Error case: Wrong code is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sendOTPURL,
			request.SendOTPRequest{Email: "newuser@example.com"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, verifyOTPURL, request.RegisterRequest{
			Name:     "New User",
			Email:    "newuser@example.com",
			Password: "password123",
			Code:     "000000",
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid or expired verification code")
	})

	s.Run("Error case: Already registered email conflicts", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "Existing User", "taken@example.com", "user")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sendOTPURL,
			request.SendOTPRequest{Email: "taken@example.com"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, verifyOTPURL, request.RegisterRequest{
			Name:     "New User",
			Email:    "taken@example.com",
			Password: "password123",
			Code:     s.OTP.Code("taken@example.com"),
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Email already registered")
	})
}

// =============================================================================
// TestLogin - Credential checks and token issuance
// =============================================================================

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: Token grants access to the profile", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "user")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, profileURL, nil, token)
		var profile response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &profile)
		require.Equal(t, "guest@example.com", profile.Email)
	})

	s.Run("Error case: Wrong password", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "Test Guest", "guest@example.com", "user")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: "wrong-password"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("Error case: Missing token is unauthorized", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, profileURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
