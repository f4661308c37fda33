// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/radio-billing/backend/config"
	"github.com/radio-billing/backend/internal/infra/dependency"
	"github.com/radio-billing/backend/internal/integration/email"
	"github.com/radio-billing/backend/internal/integration/persistence/model"
	"github.com/radio-billing/backend/test/integration/mock"
)

const reportRecipient = "accounting@example.com"

// testContext holds the state of one scenario.
type testContext struct {
	server   *httptest.Server
	client   *http.Client
	headers  map[string]string
	response *response

	db       *mock.Db
	redis    *redis.Client
	resend   *mock.ApiMock
	timeMock *mock.Time

	// Values captured from responses, substituted into {{name}} placeholders.
	remembered map[string]string
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario wires a fresh API instance per scenario and registers all steps.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db:     mock.NewDb(model.AllModels()),
		redis:  mock.NewRedis(),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before(ctx)
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.after()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the billing API is running$`, test.theBillingAPIIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)
	ctx.Given(`^the mail service rejects messages$`, test.theMailServiceRejectsMessages)
	ctx.Given(`^the mail service refuses the sender$`, test.theMailServiceRefusesTheSender)

	// Request steps
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I upload the payment file "([^"]*)" in "([^"]*)" mode with:$`, test.iUploadThePaymentFile)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, test.iRememberTheResponseField)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Integration assertion steps
	ctx.Then(`^(\d+) report emails? should have been sent$`, test.reportEmailsShouldHaveBeenSent)
	ctx.Then(`^report email (\d+) should have the subject "([^"]*)"$`, test.reportEmailShouldHaveTheSubject)
}

func (t *testContext) before(ctx context.Context) error {
	t.headers = make(map[string]string)
	t.response = nil
	t.remembered = make(map[string]string)
	t.timeMock = mock.NewTime()

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	if err := mock.ClearRedis(ctx, t.redis); err != nil {
		return err
	}

	t.resend = mock.NewApiServer()
	t.resend.Start()
	t.resend.SetResponse(http.MethodPost, "/emails", http.StatusOK, map[string]any{"id": "email-test"})
	return nil
}

func (t *testContext) after() {
	if t.server != nil {
		t.server.Close()
		t.server = nil
	}
	if t.resend != nil {
		t.resend.Close()
	}
}

// startServer builds the application the way cmd/api does, with the database,
// Redis and the Resend API replaced by in-process fakes.
func (t *testContext) startServer() {
	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Redis:  config.RedisConfig{Enabled: true, RunTTL: time.Hour},
		Billing: config.BillingConfig{
			PayeeCodeWidth:            4,
			PlaceholderBroadcastCount: 4,
			Timezone:                  "UTC",
		},
		Email: config.EmailConfig{
			ResendAPIKey:    "re_test",
			FromName:        "Billing Reconciliation",
			FromEmail:       "billing@example.com",
			ReportRecipient: reportRecipient,
			ResendBaseURL:   t.resend.GetUrl(),
		},
	}

	injector := dependency.NewInjector(cfg, t.db.DbConn, dependency.Options{
		Redis:       t.redis,
		EmailSender: email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail, cfg.Email.ResendBaseURL),
		Clock:       t.timeMock,
	})

	t.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
}
