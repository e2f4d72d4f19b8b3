package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lixi-remit/lixi-landing/config"
	"github.com/lixi-remit/lixi-landing/config/router"
	"github.com/lixi-remit/lixi-landing/domain"
	"github.com/lixi-remit/lixi-landing/internal/emailoctopus"
	"github.com/lixi-remit/lixi-landing/internal/events"
	"github.com/lixi-remit/lixi-landing/internal/log"
	"github.com/lixi-remit/lixi-landing/internal/models"
	"github.com/lixi-remit/lixi-landing/pkg/constants"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeOctopus records subscribe calls and can be told to fail.
type fakeOctopus struct {
	mu       sync.Mutex
	emails   []string
	failWith int
}

func (f *fakeOctopus) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		EmailAddress string `json:"email_address"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.emails = append(f.emails, body.EmailAddress)
	if f.failWith != 0 {
		w.WriteHeader(f.failWith)
		_, _ = io.WriteString(w, `{"error":{"code":"INVALID_PARAMETERS"}}`)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, `{"id":"contact"}`)
}

func (f *fakeOctopus) subscribed() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.emails...)
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  []json.RawMessage `json:"errors"`
	Entry   struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
	} `json:"entry"`
	Entries []struct {
		ID            uint    `json:"id"`
		Email         string  `json:"email"`
		Name          string  `json:"name"`
		MonthlyAmount *string `json:"monthlyAmount"`
		CreatedAt     string  `json:"createdAt"`
	} `json:"entries"`
}

type WaitlistAPITestSuite struct {
	suite.Suite
	store string

	db        *gorm.DB
	server    *httptest.Server
	octopus   *fakeOctopus
	octopusUp *httptest.Server
	appConfig *config.ApplicationConfig
	core      *domain.Core
}

func TestWaitlistAPI_MemoryStore(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("set RUN_INTEGRATION_TESTS=true to run integration tests")
	}
	suite.Run(t, &WaitlistAPITestSuite{store: constants.StoreMemory})
}

func TestWaitlistAPI_GormStore(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("set RUN_INTEGRATION_TESTS=true to run integration tests")
	}
	suite.Run(t, &WaitlistAPITestSuite{store: constants.StorePostgres})
}

func (s *WaitlistAPITestSuite) SetupTest() {
	s.T().Setenv("METRICS_ENABLED", "true")

	lg := log.NewLoggerWithJSONOutput()

	if s.store == constants.StorePostgres {
		name := strings.NewReplacer("/", "_", " ", "_").Replace(s.T().Name())
		db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		s.Require().NoError(err)
		s.Require().NoError(db.AutoMigrate(models.ModelRegistry...))
		s.db = db
	}

	s.octopus = &fakeOctopus{}
	s.octopusUp = httptest.NewServer(s.octopus)

	s.appConfig = &config.ApplicationConfig{
		DB:     s.db,
		Logger: lg,
		Config: &config.AppConfig{
			Store:         s.store,
			NotifyTimeout: 2 * time.Second,
		},
		MailingList: emailoctopus.NewClient(emailoctopus.Config{
			APIKey:  "test-key",
			ListID:  "list-1",
			BaseURL: s.octopusUp.URL,
			Timeout: time.Second,
		}),
		Publisher: events.NoopPublisher{},
	}
	s.appConfig.RouterService = router.CreateRouterService(lg, nil, &router.RouterConfig{
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    10 * time.Second,
	})

	s.core = domain.SetupCoreDomain(s.appConfig)
	s.server = httptest.NewServer(s.appConfig.RouterService.GetEngine())
}

func (s *WaitlistAPITestSuite) TearDownTest() {
	s.server.Close()
	s.drain()
	s.octopusUp.Close()
	s.appConfig.Cleanup()
	s.db = nil
}

func (s *WaitlistAPITestSuite) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.Require().NoError(s.core.Shutdown(ctx))
}

func (s *WaitlistAPITestSuite) post(body string) (int, envelope) {
	resp, err := http.Post(s.server.URL+"/api/waitlist", "application/json", bytes.NewBufferString(body))
	s.Require().NoError(err)
	defer resp.Body.Close()

	var env envelope
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func (s *WaitlistAPITestSuite) list() envelope {
	resp, err := http.Get(s.server.URL + "/api/waitlist")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var env envelope
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func (s *WaitlistAPITestSuite) TestJoinWaitlist() {
	code, env := s.post(`{"email":"Hoa@Example.com","name":"Hoa","monthlyAmount":"1000-2000"}`)

	s.Equal(http.StatusOK, code)
	s.True(env.Success)
	s.Equal(uint(1), env.Entry.ID)
	s.Equal("hoa@example.com", env.Entry.Email)

	s.drain()
	s.Equal([]string{"hoa@example.com"}, s.octopus.subscribed())
}

func (s *WaitlistAPITestSuite) TestDuplicateEmailReturnsConflict() {
	code, _ := s.post(`{"email":"dup@example.com","name":"Duy"}`)
	s.Require().Equal(http.StatusOK, code)

	code, env := s.post(`{"email":" DUP@example.com ","name":"Duy again"}`)
	s.Equal(http.StatusConflict, code)
	s.False(env.Success)
	s.Equal("You're already on our waitlist! We'll be in touch soon.", env.Message)

	s.Len(s.list().Entries, 1)
}

func (s *WaitlistAPITestSuite) TestInvalidEmailReturnsFieldError() {
	code, env := s.post(`{"email":"not-an-email","name":"Nam"}`)

	s.Equal(http.StatusBadRequest, code)
	s.Equal("Validation error", env.Message)
	s.Require().Len(env.Errors, 1)
	s.JSONEq(`{"field":"email","message":"Please enter a valid email address"}`, string(env.Errors[0]))
	s.Empty(s.list().Entries)
}

func (s *WaitlistAPITestSuite) TestListIsNewestFirst() {
	for _, email := range []string{"one@example.com", "two@example.com", "three@example.com"} {
		code, _ := s.post(fmt.Sprintf(`{"email":%q,"name":"Tester"}`, email))
		s.Require().Equal(http.StatusOK, code)
	}

	env := s.list()
	s.Require().Len(env.Entries, 3)
	s.Equal("three@example.com", env.Entries[0].Email)
	s.Equal("two@example.com", env.Entries[1].Email)
	s.Equal("one@example.com", env.Entries[2].Email)
	s.Nil(env.Entries[0].MonthlyAmount)
}

func (s *WaitlistAPITestSuite) TestMailingListFailureDoesNotAffectSignup() {
	s.octopus.mu.Lock()
	s.octopus.failWith = http.StatusInternalServerError
	s.octopus.mu.Unlock()

	code, env := s.post(`{"email":"resilient@example.com","name":"Linh"}`)

	s.Equal(http.StatusOK, code)
	s.True(env.Success)

	s.drain()
	s.Equal([]string{"resilient@example.com"}, s.octopus.subscribed())
	s.Len(s.list().Entries, 1)
}

func (s *WaitlistAPITestSuite) TestHealthAndStatus() {
	resp, err := http.Get(s.server.URL + "/health")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	var health struct {
		Message string         `json:"message"`
		Data    map[string]int `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&health))
	s.Equal("LiXi health check completed", health.Message)
	s.Equal(1, health.Data["store"])
	if s.store == constants.StorePostgres {
		s.Equal(1, health.Data["database"])
	} else {
		s.Equal(0, health.Data["database"])
	}

	code, _ := s.post(`{"email":"count@example.com","name":"Quan"}`)
	s.Require().Equal(http.StatusOK, code)

	statusResp, err := http.Get(s.server.URL + "/status")
	s.Require().NoError(err)
	defer statusResp.Body.Close()

	var status map[string]any
	s.Require().NoError(json.NewDecoder(statusResp.Body).Decode(&status))
	s.Equal(true, status["success"])
	s.Equal(float64(1), status["waitlist_count"])
	s.Equal(true, status["mailing_list_enabled"])
	s.Equal(s.store, status["store"])
}

func (s *WaitlistAPITestSuite) TestLandingPageAndTranslations() {
	req, err := http.NewRequest(http.MethodGet, s.server.URL+"/", nil)
	s.Require().NoError(err)
	req.Header.Set("Accept-Language", "vi-VN,vi;q=0.9")

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(body), `<html lang="vi">`)

	i18n, err := http.Get(s.server.URL + "/api/i18n/en")
	s.Require().NoError(err)
	defer i18n.Body.Close()
	s.Equal(http.StatusOK, i18n.StatusCode)
}

func (s *WaitlistAPITestSuite) TestUnknownRouteAndMetrics() {
	resp, err := http.Get(s.server.URL + "/api/unknown")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)

	code, _ := s.post(`{"email":"metric@example.com","name":"Mai"}`)
	s.Require().Equal(http.StatusOK, code)

	metrics, err := http.Get(s.server.URL + "/metrics")
	s.Require().NoError(err)
	defer metrics.Body.Close()

	body, err := io.ReadAll(metrics.Body)
	s.Require().NoError(err)
	s.Contains(string(body), `lixi_waitlist_signups_total{result="created"} 1`)
}
