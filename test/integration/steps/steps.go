// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bcrezende/erp-rezendetech-sub000/config"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/infra/dependency"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/email"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/persistence/model"
	"github.com/bcrezende/erp-rezendetech-sub000/test/integration/mock"
)

const (
	testJWTSecret   = "test-jwt-secret-key-for-testing-purposes"
	defaultPassword = "SecurePass123!"
)

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	accessToken   string
	refreshToken  string
	resetToken    string
	currentUserID uuid.UUID
	companyID     uuid.UUID
	lastID        uuid.UUID
}

type response struct {
	status int
	body   any
}

var (
	serverInit sync.Once
	serverErr  error
	serverPort int
	testDB     *mock.Db
	clock      *mock.Time
	emailAPI   *mock.EmailAPI
	injector   *dependency.Injector
)

// InitializeTestSuite opens the shared fakes before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		serverPort = findAvailablePort()
		testDB = mock.NewDb()
		clock = mock.NewTime()
		emailAPI = mock.NewEmailAPI()

		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(serverPort))
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
		_ = os.Setenv("RESEND_API_KEY", "re_test")
		_ = os.Setenv("RESEND_BASE_URL", emailAPI.GetUrl())
	})

	ctx.AfterSuite(func() {
		if emailAPI != nil {
			emailAPI.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// User and tenant setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^I have a company named "([^"]*)"$`, test.iHaveACompanyNamed)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Given(`^the following entries exist:$`, test.theFollowingEntriesExist)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Worker steps
	ctx.When(`^the notification worker runs$`, test.theNotificationWorkerRuns)
	ctx.When(`^the email worker runs$`, test.theEmailWorkerRuns)
	ctx.Given(`^the email API fails with status (\d+)$`, test.theEmailAPIFailsWithStatus)

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

	// Email assertion steps
	ctx.Then(`^the email API should have received (\d+) emails?$`, test.theEmailAPIShouldHaveReceivedEmails)
	ctx.Then(`^the email API should have received an email to "([^"]*)" with subject containing "([^"]*)"$`, test.theEmailAPIShouldHaveReceivedAnEmailTo)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() error {
	t.uri = fmt.Sprintf("http://localhost:%d", serverPort)
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.currentUserID = uuid.Nil
	t.companyID = uuid.Nil
	t.lastID = uuid.Nil

	clock.Reset()
	emailAPI.Reset()
	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}
	return testDB.ClearDB()
}

func (t *testContext) startServer() error {
	serverInit.Do(func() {
		cfg := config.Load()

		sender, err := email.NewSender(cfg.Email)
		if err != nil {
			serverErr = err
			return
		}

		injector, err = dependency.NewInjector(cfg, testDB.DbConn, dependency.Services{
			Redis:       mock.NewRedis(),
			EmailSender: sender,
			Clock:       clock,
		})
		if err != nil {
			serverErr = err
			return
		}

		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", serverPort),
			Handler: injector.Router.Setup("test"),
		}
		go func() {
			_ = server.ListenAndServe()
		}()
	})
	if serverErr != nil {
		return serverErr
	}

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return errors.New("api server did not become healthy")
}

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}

func (t *testContext) todayIs(date string) error {
	day, err := time.Parse(valueobject.DateLayout, date)
	if err != nil {
		return err
	}
	clock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, defaultPassword)
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password)
}

func (t *testContext) createUser(email, password string) error {
	var existing model.UserModel
	if err := testDB.DbConn.Where("email = ?", email).First(&existing).Error; err == nil {
		t.currentUserID = existing.ID
		return nil
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:                 uuid.New(),
		Email:              email,
		Name:               "Test User",
		PasswordHash:       hashPassword(password),
		Role:               "member",
		EmailNotifications: true,
		TermsAcceptedAt:    now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	t.currentUserID = user.ID
	return testDB.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs creates the user when needed and logs in through the API.
func (t *testContext) iAmLoggedInAs(email string) error {
	if err := t.createUser(email, defaultPassword); err != nil {
		return err
	}

	body := fmt.Sprintf(`{"email": %q, "password": %q}`, email, defaultPassword)
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", []byte(body)); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %v", t.response.status, t.response.body)
	}

	accessToken, _ := getFieldValue(t.response.body, "access_token").(string)
	refreshToken, _ := getFieldValue(t.response.body, "refresh_token").(string)
	if accessToken == "" {
		return fmt.Errorf("login response has no access token: %v", t.response.body)
	}
	t.accessToken = accessToken
	t.refreshToken = refreshToken
	return nil
}

func (t *testContext) iHaveACompanyNamed(name string) error {
	body := fmt.Sprintf(`{"name": %q}`, name)
	if err := t.executeRequest(http.MethodPost, "/api/v1/companies", []byte(body)); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("company creation failed with status %d: %v", t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var user model.UserModel
	if err := testDB.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    user.ID,
		Email:     email,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}
	return testDB.DbConn.Create(resetTokenModel).Error
}

// theFollowingEntriesExist creates entries through the API. Columns: type,
// description, amount, transaction_date and optionally due_date, category
// (by name) and paid_at, which settles the entry on that date.
func (t *testContext) theFollowingEntriesExist(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("entries table needs a header and at least one row")
	}
	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	for _, row := range table.Rows[1:] {
		values := map[string]string{}
		for i, cell := range row.Cells {
			values[header[i]] = cell.Value
		}

		request := map[string]any{
			"type":             values["type"],
			"description":      values["description"],
			"amount":           values["amount"],
			"transaction_date": values["transaction_date"],
			"due_date":         values["due_date"],
		}
		if name := values["category"]; name != "" {
			id, err := t.categoryID(name)
			if err != nil {
				return err
			}
			request["category_id"] = id.String()
		}

		payload, _ := json.Marshal(request)
		if err := t.executeRequest(http.MethodPost, "/api/v1/entries", payload); err != nil {
			return err
		}
		if t.response.status != http.StatusCreated {
			return fmt.Errorf("entry creation failed with status %d: %v", t.response.status, t.response.body)
		}

		if paidAt := values["paid_at"]; paidAt != "" {
			body := fmt.Sprintf(`{"paid_at": %q}`, paidAt)
			if err := t.executeRequest(http.MethodPost, "/api/v1/entries/"+t.lastID.String()+"/settle", []byte(body)); err != nil {
				return err
			}
			if t.response.status != http.StatusOK {
				return fmt.Errorf("entry settle failed with status %d: %v", t.response.status, t.response.body)
			}
		}
	}
	return nil
}

func (t *testContext) categoryID(name string) (uuid.UUID, error) {
	var category model.CategoryModel
	if err := testDB.DbConn.Where("company_id = ? AND name = ?", t.companyID, name).First(&category).Error; err != nil {
		return uuid.Nil, fmt.Errorf("category %q not found: %w", name, err)
	}
	return category.ID, nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path, err := t.replacePlaceholders(path)
	if err != nil {
		return err
	}
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path, err := t.replacePlaceholders(path)
	if err != nil {
		return err
	}

	var payload []byte
	if body != nil && body.Content != "" {
		content, err := t.replacePlaceholders(body.Content)
		if err != nil {
			return err
		}
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

var categoryPlaceholder = regexp.MustCompile(`\{\{category:([^}]+)\}\}`)

func (t *testContext) replacePlaceholders(content string) (string, error) {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{company_id}}", t.companyID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())

	var lookupErr error
	content = categoryPlaceholder.ReplaceAllStringFunc(content, func(match string) string {
		name := categoryPlaceholder.FindStringSubmatch(match)[1]
		id, err := t.categoryID(name)
		if err != nil {
			lookupErr = err
			return match
		}
		return id.String()
	})
	return content, lookupErr
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody
	t.captureIDs(responseBody)
	return nil
}

// captureIDs remembers the ids of created resources for later placeholders.
func (t *testContext) captureIDs(body map[string]any) {
	if id, ok := parseID(body["id"]); ok {
		t.lastID = id
	}
	if entries, ok := body["entries"].([]any); ok && len(entries) > 0 {
		if first, ok := entries[0].(map[string]any); ok {
			if id, ok := parseID(first["id"]); ok {
				t.lastID = id
			}
		}
	}
	if company, ok := body["company"].(map[string]any); ok {
		if id, ok := parseID(company["id"]); ok {
			t.companyID = id
		}
	}
	if user, ok := body["user"].(map[string]any); ok {
		if id, ok := parseID(user["id"]); ok {
			t.currentUserID = id
		}
		if id, ok := user["company_id"].(string); ok {
			if parsed, err := uuid.Parse(id); err == nil {
				t.companyID = parsed
			}
		}
	}
}

func parseID(value any) (uuid.UUID, bool) {
	s, ok := value.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}

func (t *testContext) theNotificationWorkerRuns() error {
	injector.NotificationWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) theEmailWorkerRuns() error {
	injector.EmailWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) theEmailAPIFailsWithStatus(status int) error {
	emailAPI.FailWith(status)
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := testDB.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
	entitySlicePtr := reflect.New(entitySlice.Type())
	entitySlicePtr.Elem().Set(entitySlice)

	query := testDB.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}
	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) theEmailAPIShouldHaveReceivedEmails(count int) error {
	received := emailAPI.Received()
	if len(received) != count {
		return fmt.Errorf("expected %d emails, got %d", count, len(received))
	}
	return nil
}

func (t *testContext) theEmailAPIShouldHaveReceivedAnEmailTo(recipient, subject string) error {
	for _, e := range emailAPI.Received() {
		for _, to := range e.To {
			if to == recipient && strings.Contains(e.Subject, subject) {
				return nil
			}
		}
	}
	return fmt.Errorf("no email to %q with subject containing %q in %v", recipient, subject, emailAPI.Received())
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap
	for _, currentField := range fields {
		if field == nil {
			return nil
		}
		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}
	return field
}
