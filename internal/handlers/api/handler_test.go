package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/KirkDiggler/bactrack/internal/recommend"
	"github.com/KirkDiggler/bactrack/internal/services/tracker"
	"github.com/KirkDiggler/bactrack/internal/services/tracker/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockService *mocks.MockService
	server      http.Handler
	testTime    time.Time
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockService(s.mockCtrl)

	h, err := New(&Config{Service: s.mockService})
	s.Require().NoError(err)
	s.server = h.Routes()

	s.testTime = time.Date(2025, 4, 5, 22, 0, 0, 0, time.UTC)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (s *HandlerTestSuite) do(method, path, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)

	var env envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func (s *HandlerTestSuite) TestHealth() {
	rec, env := s.do(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("success", env.Status)
}

func (s *HandlerTestSuite) TestRegister() {
	s.mockService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input *tracker.RegisterInput) (*tracker.RegisterOutput, error) {
			s.Equal("alice", input.Username)
			s.Equal("female", input.Sex)
			s.Require().NotNil(input.DateOfBirth)
			s.Equal(1990, input.DateOfBirth.Year())
			return &tracker.RegisterOutput{Profile: &models.Profile{
				Username:     "alice",
				PasswordHash: "secret-hash",
				Sex:          models.SexFemale,
				WeightKg:     60,
			}}, nil
		})

	rec, env := s.do(http.MethodPost, "/profiles", `{"username":"alice","password":"pw","sex":"female","weight_kg":60,"date_of_birth":"1990-02-03"}`)
	s.Equal(http.StatusCreated, rec.Code)
	s.NotContains(string(env.Data), "secret-hash")

	var view profileView
	s.Require().NoError(json.Unmarshal(env.Data, &view))
	s.Equal("alice", view.Username)
	s.Equal(60.0, view.WeightKg)
}

func (s *HandlerTestSuite) TestRegister_Errors() {
	rec, _ := s.do(http.MethodPost, "/profiles", `{not json`)
	s.Equal(http.StatusBadRequest, rec.Code)

	s.mockService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tracker.ErrUsernameTaken)
	rec, env := s.do(http.MethodPost, "/profiles", `{"username":"alice","sex":"female","weight_kg":60}`)
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(tracker.ErrUsernameTaken.Error(), env.Message)

	s.mockService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, models.ErrUnsupportedSex)
	rec, _ = s.do(http.MethodPost, "/profiles", `{"username":"alice","sex":"x","weight_kg":60}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestLogin_InvalidCredentials() {
	s.mockService.EXPECT().Login(gomock.Any(), &tracker.LoginInput{Username: "alice", Password: "nope"}).Return(nil, tracker.ErrInvalidCredentials)

	rec, _ := s.do(http.MethodPost, "/login", `{"username":"alice","password":"nope"}`)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerTestSuite) TestStartSession() {
	driveTime := s.testTime.Add(3 * time.Hour)
	s.mockService.EXPECT().
		StartSession(gomock.Any(), &tracker.StartSessionInput{Username: "alice", MaxBAC: 0.08, DriveTime: &driveTime}).
		Return(&tracker.StartSessionOutput{Session: &models.Session{
			ID:        "session-1",
			Username:  "alice",
			MaxBAC:    0.08,
			StartTime: s.testTime,
			DriveTime: &driveTime,
		}}, nil)

	rec, env := s.do(http.MethodPost, "/profiles/alice/sessions", `{"max_bac":0.08,"drive_time":"2025-04-06T01:00:00Z"}`)
	s.Equal(http.StatusCreated, rec.Code)

	var view sessionView
	s.Require().NoError(json.Unmarshal(env.Data, &view))
	s.Equal("session-1", view.ID)
	s.Require().NotNil(view.DriveTime)
	s.True(driveTime.Equal(*view.DriveTime))
}

func (s *HandlerTestSuite) TestGetSession_NoActiveSession() {
	s.mockService.EXPECT().
		GetCurrentSession(gomock.Any(), &tracker.GetCurrentSessionInput{Username: "alice"}).
		Return(nil, tracker.ErrNoActiveSession)

	rec, env := s.do(http.MethodGet, "/profiles/alice/session", "")
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("error", env.Status)
}

func (s *HandlerTestSuite) TestRecordReading() {
	rec, _ := s.do(http.MethodPost, "/profiles/alice/readings", `{}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	s.mockService.EXPECT().
		RecordReading(gomock.Any(), &tracker.RecordReadingInput{Username: "alice", BAC: 0.04, Source: models.ReadingSourceSensor}).
		Return(&tracker.RecordReadingOutput{Reading: &models.Reading{
			ID:        "reading-1",
			SessionID: "session-1",
			BAC:       0.04,
			Source:    models.ReadingSourceSensor,
			TakenAt:   s.testTime,
		}}, nil)

	rec, env := s.do(http.MethodPost, "/profiles/alice/readings", `{"bac":0.04,"source":"sensor"}`)
	s.Equal(http.StatusCreated, rec.Code)

	var view readingView
	s.Require().NoError(json.Unmarshal(env.Data, &view))
	s.Equal("reading-1", view.ID)
	s.Equal("sensor", view.Source)
}

func (s *HandlerTestSuite) TestLogDrink_UnknownDrink() {
	s.mockService.EXPECT().
		LogDrink(gomock.Any(), &tracker.LogDrinkInput{Username: "alice", DrinkName: "Mead"}).
		Return(nil, tracker.ErrUnknownDrink)

	rec, _ := s.do(http.MethodPost, "/profiles/alice/drinks", `{"drink":"Mead"}`)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestRecommendations() {
	current := 0.03
	s.mockService.EXPECT().
		GetRecommendations(gomock.Any(), &tracker.GetRecommendationsInput{Username: "alice", BAC: &current}).
		Return(&tracker.GetRecommendationsOutput{
			Session:    &models.Session{ID: "session-1"},
			CurrentBAC: current,
			BACSource:  models.ReadingSourceManual,
			Path:       recommend.PathMaxBAC,
			Qualified:  1,
			Drinks:     []models.Drink{{Name: "Lager", AlcoholContentMl: 17.75}},
		}, nil)

	rec, env := s.do(http.MethodGet, "/profiles/alice/recommendations?bac=0.03", "")
	s.Equal(http.StatusOK, rec.Code)

	var view recommendationView
	s.Require().NoError(json.Unmarshal(env.Data, &view))
	s.Equal("max_bac", view.Path)
	s.Require().Len(view.Drinks, 1)
	s.Equal("Lager", view.Drinks[0].Name)
}

func (s *HandlerTestSuite) TestRecommendations_EmptyIsNotAnError() {
	s.mockService.EXPECT().
		GetRecommendations(gomock.Any(), &tracker.GetRecommendationsInput{Username: "alice"}).
		Return(&tracker.GetRecommendationsOutput{
			Session: &models.Session{ID: "session-1"},
			Path:    recommend.PathDriveTime,
		}, nil)

	rec, env := s.do(http.MethodGet, "/profiles/alice/recommendations", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(string(env.Data), `"drinks":[]`)
}

func (s *HandlerTestSuite) TestRecommendations_BadBAC() {
	rec, _ := s.do(http.MethodGet, "/profiles/alice/recommendations?bac=lots", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestDriveStatus() {
	s.mockService.EXPECT().
		GetDriveStatus(gomock.Any(), &tracker.GetDriveStatusInput{Username: "alice"}).
		Return(&tracker.GetDriveStatusOutput{
			CurrentBAC:        0.07,
			BACSource:         models.ReadingSourceEstimate,
			TimeUntilCanDrive: 90 * time.Minute,
			CanDriveAt:        s.testTime.Add(90 * time.Minute),
		}, nil)

	rec, env := s.do(http.MethodGet, "/profiles/alice/drive", "")
	s.Equal(http.StatusOK, rec.Code)

	var view driveStatusView
	s.Require().NoError(json.Unmarshal(env.Data, &view))
	s.Equal(5400.0, view.SecondsUntilDrive)
	s.False(view.OnTrack)
}

func (s *HandlerTestSuite) TestRateLimit() {
	h, err := New(&Config{Service: s.mockService, RateLimit: 1})
	s.Require().NoError(err)
	server := h.Routes()

	s.mockService.EXPECT().ListDrinks(gomock.Any(), gomock.Any()).Return(&tracker.ListDrinksOutput{}, nil)

	first := httptest.NewRecorder()
	server.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/drinks", nil))
	s.Equal(http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	server.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/drinks", nil))
	s.Equal(http.StatusTooManyRequests, second.Code)
}
