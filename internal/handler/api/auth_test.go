//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/handler/api"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type stubAuthCommands struct {
	result *commands.LoginResult
	err    error
}

func (s *stubAuthCommands) Login(_ context.Context, _ string) (*commands.LoginResult, error) {
	return s.result, s.err
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *stubAuthCommands
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.commands = &stubAuthCommands{}
	handler := api.NewAuthHandler(s.commands)
	s.router.POST("/auth/login", handler.Login)
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) postLogin(body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, "/auth/login", &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AuthHandlerTestSuite) TestLogin() {
	s.Run("valid credentials", func() {
		s.commands.result = &commands.LoginResult{Token: "token-123", Role: "admin"}
		s.commands.err = nil

		rec := s.postLogin(map[string]any{"password": "s3cret"})

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"access_token":"token-123"`)
		s.Contains(rec.Body.String(), `"role":"admin"`)
	})

	s.Run("invalid credentials", func() {
		s.commands.result = nil
		s.commands.err = commands.ErrInvalidCredentials

		rec := s.postLogin(map[string]any{"password": "wrong"})

		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("missing password", func() {
		rec := s.postLogin(map[string]any{})

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
