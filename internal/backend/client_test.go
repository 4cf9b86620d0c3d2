package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"

	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

// ClientSuite runs the client against a fake backend implementing the
// platform's REST contracts.
type ClientSuite struct {
	suite.Suite
	server *httptest.Server
	client *Client
	ctx    context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	r := mux.NewRouter()

	r.HandleFunc("/auth/token", func(w http.ResponseWriter, req *http.Request) {
		_ = req.ParseForm()
		if req.PostForm.Get("username") == "kid@example.com" && req.PostForm.Get("password") == "hunter2" {
			_ = json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok_abc", TokenType: "bearer"})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
	}).Methods(http.MethodPost)

	r.HandleFunc("/auth/register", func(w http.ResponseWriter, req *http.Request) {
		var reg RegisterRequest
		_ = json.NewDecoder(req.Body).Decode(&reg)
		if reg.Email == "taken@example.com" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "User already exists"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "User created successfully"})
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/user/me", s.requireBearer(func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(model.User{ID: 7, Email: "kid@example.com", FirstName: "Maya"})
	})).Methods(http.MethodGet)

	r.HandleFunc("/api/assessment/submit", s.requireBearer(func(w http.ResponseWriter, req *http.Request) {
		var result model.RoundResult
		_ = json.NewDecoder(req.Body).Decode(&result)
		_ = json.NewEncoder(w).Encode(SubmitResponse{RiskLevel: string(model.RiskLevelFor(result.AccuracyPercent))})
	})).Methods(http.MethodPost)

	r.HandleFunc("/api/intervention/current", s.requireBearer(func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(InterventionModule{CurrentModule: "Phoneme Peak", Status: "In Progress"})
	})).Methods(http.MethodGet)

	r.HandleFunc("/api/assessment/history", s.requireBearer(func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode([]model.ScoreRecord{
			{TestType: "Phoneme Popper Game", AccuracyPercent: 85, RiskLevel: model.RiskLow},
		})
	})).Methods(http.MethodGet)

	s.server = httptest.NewServer(r)
	s.client = NewClient(s.server.URL)
	s.ctx = context.Background()
}

func (s *ClientSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientSuite) requireBearer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Authorization") != "Bearer tok_abc" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid session"})
			return
		}
		next(w, req)
	}
}

// Login tests

func (s *ClientSuite) TestLoginSucceeds() {
	resp, err := s.client.Login(s.ctx, "kid@example.com", "hunter2")
	s.Require().NoError(err)
	s.Equal("tok_abc", resp.AccessToken)
	s.Equal("bearer", resp.TokenType)
}

func (s *ClientSuite) TestLoginSurfacesDetailVerbatim() {
	_, err := s.client.Login(s.ctx, "kid@example.com", "wrong")
	s.Require().Error(err)

	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(401, apiErr.StatusCode)
	s.Equal("Invalid credentials", apiErr.Detail)
	s.Equal("Invalid credentials", err.Error())
}

func (s *ClientSuite) TestLoginConnectionFailure() {
	s.server.Close()

	_, err := s.client.Login(s.ctx, "kid@example.com", "hunter2")
	s.ErrorIs(err, ErrConnection)
}

// Register tests

func (s *ClientSuite) TestRegisterSucceeds() {
	err := s.client.Register(s.ctx, RegisterRequest{
		Email: "new@example.com", Password: "hunter2", FirstName: "Maya", Age: 8,
	})
	s.NoError(err)
}

func (s *ClientSuite) TestRegisterDuplicateEmail() {
	err := s.client.Register(s.ctx, RegisterRequest{Email: "taken@example.com", Password: "x"})

	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal("User already exists", apiErr.Detail)
}

// Authenticated endpoints

func (s *ClientSuite) TestMeRequiresToken() {
	_, err := s.client.Me(s.ctx)
	s.True(IsAuthError(err))
}

func (s *ClientSuite) TestMeSucceedsWithToken() {
	s.client.SetToken("tok_abc")

	user, err := s.client.Me(s.ctx)
	s.Require().NoError(err)
	s.Equal("Maya", user.FirstName)
}

func (s *ClientSuite) TestSubmitAssessment() {
	s.client.SetToken("tok_abc")

	resp, err := s.client.SubmitAssessment(s.ctx, model.RoundResult{
		TestType:        "Phoneme Popper Game",
		TotalTimeSec:    15,
		AccuracyPercent: 90,
	})
	s.Require().NoError(err)
	s.Equal("Low", resp.RiskLevel)
}

func (s *ClientSuite) TestCurrentIntervention() {
	s.client.SetToken("tok_abc")

	mod, err := s.client.CurrentIntervention(s.ctx)
	s.Require().NoError(err)
	s.Equal("Phoneme Peak", mod.CurrentModule)
}

func (s *ClientSuite) TestHistory() {
	s.client.SetToken("tok_abc")

	records, err := s.client.History(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(model.RiskLow, records[0].RiskLevel)
}

func (s *ClientSuite) TestCancelledContextIsNotConnectionError() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.client.Login(ctx, "kid@example.com", "hunter2")
	s.Require().Error(err)
	s.NotErrorIs(err, ErrConnection)
	s.ErrorIs(err, context.Canceled)
}
