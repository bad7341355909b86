package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/avolkov/linkstats/internal/config"
	"github.com/avolkov/linkstats/internal/db"
	"github.com/avolkov/linkstats/internal/models"
	"github.com/avolkov/linkstats/internal/services"
)

const testJWTSecret = "controller-suite-secret"

type ControllersSuite struct {
	suite.Suite
	router *gin.Engine
	config *config.Config
}

func (s *ControllersSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	appConf := config.Config{
		ServerAddress: ":80",
		BaseURL:       &url.URL{Scheme: "http", Host: "test.com:8080"},
		DBType:        config.DBTypeInMemory,
		JWTSecret:     testJWTSecret,
		JWTExpire:     time.Hour,
	}
	s.config = &appConf

	codeGen := services.NewCodeGenerator(models.ShortCodeLength)
	dbServices, err := services.Factory(db.NewMemStorage(), services.ServiceTypeInMemory, codeGen, zap.NewNop())
	s.Require().NoError(err)

	s.router = SetupRouter(RouterParams{
		Services: dbServices,
		Config:   &appConf,
		Logger:   zap.NewNop(),
	})
}

type accountCreds struct {
	Username string
	Email    string
	Password string
}

func (s *ControllersSuite) registerAccount() accountCreds {
	creds := accountCreds{
		Username: gofakeit.Username(),
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}
	res := s.makeJSONRequest(http.MethodPost, "/api/auth/public/register", gin.H{
		"username": creds.Username,
		"email":    creds.Email,
		"password": creds.Password,
	}, "")
	s.Require().Equal(http.StatusOK, res.Code, res.Body.String())
	return creds
}

func (s *ControllersSuite) loginToken(creds accountCreds) string {
	res := s.makeJSONRequest(http.MethodPost, "/api/auth/public/login", gin.H{
		"username": creds.Username,
		"password": creds.Password,
	}, "")
	s.Require().Equal(http.StatusOK, res.Code, res.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(res.Body.Bytes(), &body))
	s.Require().NotEmpty(body.Token)
	return body.Token
}

func (s *ControllersSuite) shorten(token, rawURL string) MappingDTO {
	res := s.makeJSONRequest(http.MethodPost, "/api/urls/shorten", gin.H{"originalUrl": rawURL}, token)
	s.Require().Equal(http.StatusOK, res.Code, res.Body.String())

	var dto MappingDTO
	s.Require().NoError(json.Unmarshal(res.Body.Bytes(), &dto))
	return dto
}

func (s *ControllersSuite) makeJSONRequest(method, uri string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, uri, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ControllersSuite) shortCodeOf(dto MappingDTO) string {
	parsed, err := url.Parse(dto.ShortURL)
	s.Require().NoError(err)
	return parsed.Path[1:]
}

func (s *ControllersSuite) TestPing() {
	res := s.makeJSONRequest(http.MethodGet, "/ping", nil, "")
	s.Equal(http.StatusOK, res.Code)
	s.Equal("pong", res.Body.String())
}

func (s *ControllersSuite) TestRegister() {
	creds := s.registerAccount()

	// повторная регистрация того же имени
	res := s.makeJSONRequest(http.MethodPost, "/api/auth/public/register", gin.H{
		"username": creds.Username,
		"email":    gofakeit.Email(),
		"password": "password123",
	}, "")
	s.Equal(http.StatusBadRequest, res.Code)

	// и той же почты
	res = s.makeJSONRequest(http.MethodPost, "/api/auth/public/register", gin.H{
		"username": gofakeit.Username(),
		"email":    creds.Email,
		"password": "password123",
	}, "")
	s.Equal(http.StatusBadRequest, res.Code)
}

func (s *ControllersSuite) TestRegister_InvalidBody() {
	tests := []struct {
		name string
		body gin.H
	}{
		{name: "missing email", body: gin.H{"username": "alice", "password": "password123"}},
		{name: "malformed email", body: gin.H{"username": "alice", "email": "nope", "password": "password123"}},
		{name: "short password", body: gin.H{"username": "alice", "email": "a@test.com", "password": "123"}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			res := s.makeJSONRequest(http.MethodPost, "/api/auth/public/register", tt.body, "")
			s.Equal(http.StatusBadRequest, res.Code)
		})
	}
}

func (s *ControllersSuite) TestLogin() {
	creds := s.registerAccount()

	token := s.loginToken(creds)
	s.NotEmpty(token)

	res := s.makeJSONRequest(http.MethodPost, "/api/auth/public/login", gin.H{
		"username": creds.Username,
		"password": "wrong-password",
	}, "")
	s.Equal(http.StatusUnauthorized, res.Code)

	res = s.makeJSONRequest(http.MethodPost, "/api/auth/public/login", gin.H{
		"username": "ghost",
		"password": "wrong-password",
	}, "")
	s.Equal(http.StatusUnauthorized, res.Code)
}

func (s *ControllersSuite) TestShorten() {
	creds := s.registerAccount()
	token := s.loginToken(creds)

	rawURL := "https://example.com/some/path"
	dto := s.shorten(token, rawURL)

	s.Equal(rawURL, dto.OriginalURL)
	s.Equal(creds.Username, dto.Username)
	s.Zero(dto.ClickCount)
	s.NotZero(dto.ID)

	prefix := fmt.Sprintf("%s/", s.config.BaseURL)
	s.True(len(dto.ShortURL) > len(prefix) && dto.ShortURL[:len(prefix)] == prefix,
		"short url %s must start with %s", dto.ShortURL, prefix)
	s.Len(s.shortCodeOf(dto), models.ShortCodeLength)
}

func (s *ControllersSuite) TestShorten_InvalidURL() {
	creds := s.registerAccount()
	token := s.loginToken(creds)

	res := s.makeJSONRequest(http.MethodPost, "/api/urls/shorten", gin.H{"originalUrl": "not a url"}, token)
	s.Equal(http.StatusBadRequest, res.Code)
}

func (s *ControllersSuite) TestAuthRequired() {
	uris := []struct {
		method string
		uri    string
	}{
		{method: http.MethodPost, uri: "/api/urls/shorten"},
		{method: http.MethodGet, uri: "/api/urls/myUrls"},
		{method: http.MethodGet, uri: "/api/urls/analytics/abcdefgh"},
		{method: http.MethodGet, uri: "/api/urls/totalClicks"},
	}
	for _, tt := range uris {
		s.Run(tt.uri, func() {
			res := s.makeJSONRequest(tt.method, tt.uri, nil, "")
			s.Equal(http.StatusUnauthorized, res.Code)

			res = s.makeJSONRequest(tt.method, tt.uri, nil, "garbage-token")
			s.Equal(http.StatusUnauthorized, res.Code)
		})
	}
}

func (s *ControllersSuite) TestRedirect() {
	creds := s.registerAccount()
	token := s.loginToken(creds)

	rawURL := "https://example.com/landing"
	dto := s.shorten(token, rawURL)
	shortCode := s.shortCodeOf(dto)

	res := s.makeJSONRequest(http.MethodGet, "/"+shortCode, nil, "")
	s.Equal(http.StatusFound, res.Code)
	s.Equal(rawURL, res.Header().Get("Location"))
}

func (s *ControllersSuite) TestRedirect_NotFound() {
	tests := []struct {
		name string
		uri  string
	}{
		{name: "unknown code", uri: "/aaaabbbb"},
		{name: "wrong length", uri: "/abc"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			res := s.makeJSONRequest(http.MethodGet, tt.uri, nil, "")
			s.Equal(http.StatusNotFound, res.Code)
			s.Empty(res.Header().Get("Location"))
		})
	}
}

func (s *ControllersSuite) TestMyURLs() {
	creds := s.registerAccount()
	token := s.loginToken(creds)

	first := s.shorten(token, "https://example.com/one")
	second := s.shorten(token, "https://example.com/two")

	// ссылки чужого аккаунта в выборку не попадают
	otherToken := s.loginToken(s.registerAccount())
	s.shorten(otherToken, "https://example.com/three")

	res := s.makeJSONRequest(http.MethodGet, "/api/urls/myUrls", nil, token)
	s.Require().Equal(http.StatusOK, res.Code)

	var dtos []MappingDTO
	s.Require().NoError(json.Unmarshal(res.Body.Bytes(), &dtos))
	s.Require().Len(dtos, 2)

	got := map[string]struct{}{}
	for _, dto := range dtos {
		s.Equal(creds.Username, dto.Username)
		got[dto.OriginalURL] = struct{}{}
	}
	s.Contains(got, first.OriginalURL)
	s.Contains(got, second.OriginalURL)
}

func (s *ControllersSuite) TestAnalytics() {
	creds := s.registerAccount()
	token := s.loginToken(creds)

	dto := s.shorten(token, "https://example.com/analytics")
	shortCode := s.shortCodeOf(dto)

	for range 3 {
		res := s.makeJSONRequest(http.MethodGet, "/"+shortCode, nil, "")
		s.Require().Equal(http.StatusFound, res.Code)
	}

	now := time.Now()
	uri := fmt.Sprintf("/api/urls/analytics/%s?startDate=%s&endDate=%s",
		shortCode,
		now.AddDate(0, 0, -1).Format(analyticsDateLayout),
		now.Add(time.Hour).Format(analyticsDateLayout),
	)
	res := s.makeJSONRequest(http.MethodGet, uri, nil, token)
	s.Require().Equal(http.StatusOK, res.Code, res.Body.String())

	var stats []services.ClickStats
	s.Require().NoError(json.Unmarshal(res.Body.Bytes(), &stats))
	s.Require().Len(stats, 1)
	s.Equal(now.Format(services.ClickDateLayout), stats[0].ClickDate)
	s.EqualValues(3, stats[0].Count)
}

func (s *ControllersSuite) TestAnalytics_BadDates() {
	token := s.loginToken(s.registerAccount())

	tests := []struct {
		name  string
		query string
	}{
		{name: "missing dates", query: ""},
		{name: "date only", query: "?startDate=2025-03-10&endDate=2025-03-11"},
		{name: "garbage", query: "?startDate=abc&endDate=def"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			res := s.makeJSONRequest(http.MethodGet, "/api/urls/analytics/aaaabbbb"+tt.query, nil, token)
			s.Equal(http.StatusBadRequest, res.Code)
		})
	}
}

func (s *ControllersSuite) TestTotalClicks() {
	creds := s.registerAccount()
	token := s.loginToken(creds)

	first := s.shorten(token, "https://example.com/first")
	second := s.shorten(token, "https://example.com/second")

	for _, dto := range []MappingDTO{first, second} {
		res := s.makeJSONRequest(http.MethodGet, "/"+s.shortCodeOf(dto), nil, "")
		s.Require().Equal(http.StatusFound, res.Code)
	}

	now := time.Now()
	uri := fmt.Sprintf("/api/urls/totalClicks?startDate=%s&endDate=%s",
		now.AddDate(0, 0, -1).Format(services.ClickDateLayout),
		now.Format(services.ClickDateLayout),
	)
	res := s.makeJSONRequest(http.MethodGet, uri, nil, token)
	s.Require().Equal(http.StatusOK, res.Code, res.Body.String())

	var totals map[string]int64
	s.Require().NoError(json.Unmarshal(res.Body.Bytes(), &totals))
	s.EqualValues(2, totals[now.Format(services.ClickDateLayout)])
}

func (s *ControllersSuite) TestTotalClicks_BadDates() {
	token := s.loginToken(s.registerAccount())

	res := s.makeJSONRequest(http.MethodGet,
		"/api/urls/totalClicks?startDate=2025-03-10T00:00:00&endDate=2025-03-11", nil, token)
	s.Equal(http.StatusBadRequest, res.Code)
}

// TestShorten_ClickCountInDTO счетчик в выдаче myUrls отражает переходы.
func (s *ControllersSuite) TestShorten_ClickCountInDTO() {
	creds := s.registerAccount()
	token := s.loginToken(creds)

	dto := s.shorten(token, "https://example.com/counted")
	shortCode := s.shortCodeOf(dto)

	for range 2 {
		res := s.makeJSONRequest(http.MethodGet, "/"+shortCode, nil, "")
		s.Require().Equal(http.StatusFound, res.Code)
	}

	res := s.makeJSONRequest(http.MethodGet, "/api/urls/myUrls", nil, token)
	s.Require().Equal(http.StatusOK, res.Code)

	var dtos []MappingDTO
	s.Require().NoError(json.Unmarshal(res.Body.Bytes(), &dtos))
	s.Require().Len(dtos, 1)
	s.EqualValues(2, dtos[0].ClickCount)
}

func TestControllersSuite(t *testing.T) {
	suite.Run(t, new(ControllersSuite))
}
