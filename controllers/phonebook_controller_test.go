package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeMarquez/phonebook/config"
	"github.com/JoeMarquez/phonebook/database"
	"github.com/JoeMarquez/phonebook/models"
	"github.com/JoeMarquez/phonebook/repositories"
	"github.com/JoeMarquez/phonebook/services"
)

type testApp struct {
	router *chi.Mux
	repos  *repositories.Repositories
}

// setupTestApp wires the full stack against two temporary sqlite stores
func setupTestApp(t *testing.T) *testApp {
	dir := t.TempDir()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Phonebook: filepath.Join(dir, "phonebook.db"),
			AuditLog:  filepath.Join(dir, "audit_log.db"),
		},
	}

	stores, err := database.InitializeStores(cfg)
	require.NoError(t, err, "Failed to initialize test stores")
	t.Cleanup(func() {
		stores.Close()
	})

	repos := repositories.NewRepositories(stores)
	srvs := services.NewServices(repos)
	ctrl := NewControllers(srvs)

	return &testApp{
		router: NewRouter(ctrl),
		repos:  repos,
	}
}

func (app *testApp) do(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func (app *testApp) addPerson(t *testing.T, fullName, phoneNumber string) *httptest.ResponseRecorder {
	return app.do(t, http.MethodPost, "/PhoneBook/add", models.PersonForm{
		FullName:    fullName,
		PhoneNumber: phoneNumber,
	})
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func auditActions(t *testing.T, app *testApp) []string {
	entries, err := app.repos.Audit.GetAll(context.Background())
	require.NoError(t, err)

	actions := make([]string, len(entries))
	for i, entry := range entries {
		actions[i] = entry.Action
	}
	return actions
}

func TestListEmptyPhoneBook(t *testing.T) {
	app := setupTestApp(t)

	rec := app.do(t, http.MethodGet, "/PhoneBook/list", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var contacts []models.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contacts))
	assert.Empty(t, contacts)

	// Read-only access is audited too
	assert.Equal(t, []string{models.AuditActionList}, auditActions(t, app))
}

func TestAddPerson(t *testing.T) {
	app := setupTestApp(t)

	rec := app.addPerson(t, "John Smith", "+1 555-1234")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Person added successfully", decodeBody(t, rec)["message"])

	rec = app.do(t, http.MethodGet, "/PhoneBook/list", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var contacts []models.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contacts))
	require.Len(t, contacts, 1)
	assert.Equal(t, "John Smith", contacts[0].FullName)
	assert.Equal(t, "+1 555-1234", contacts[0].PhoneNumber)
	assert.NotZero(t, contacts[0].ID)
}

func TestAddPersonInvalidInput(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		name        string
		fullName    string
		phoneNumber string
	}{
		{"invalid name", "John5 Smith", "+1 555-1234"},
		{"name too long", "Johnathan Maximillian Bartholomew Smith", "+1 555-1234"},
		{"invalid number", "John Smith", "123456789"},
		{"empty form", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.addPerson(t, tt.fullName, tt.phoneNumber)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Invalid input. Please check your response and try again.",
				decodeBody(t, rec)["detail"])
		})
	}

	// Failed adds leave no audit trail
	assert.Empty(t, auditActions(t, app))
}

func TestAddPersonMalformedJSON(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/PhoneBook/add", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddPersonDuplicates(t *testing.T) {
	app := setupTestApp(t)

	rec := app.addPerson(t, "John Smith", "+1 555-1234")
	require.Equal(t, http.StatusOK, rec.Code)

	// Same number, different name: the number check fires first
	rec = app.addPerson(t, "Jane Doe", "+1 555-1234")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Phone number already exists in the database", decodeBody(t, rec)["detail"])

	// Same name, different number
	rec = app.addPerson(t, "John Smith", "+1 555-5678")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Person already exists in the database", decodeBody(t, rec)["detail"])

	// Only the successful add was audited
	assert.Equal(t, []string{models.AuditActionAdd}, auditActions(t, app))
}

func TestDeleteByName(t *testing.T) {
	app := setupTestApp(t)

	rec := app.addPerson(t, "John Smith", "+1 555-1234")
	require.Equal(t, http.StatusOK, rec.Code)

	target := "/PhoneBook/deleteByName?" + url.Values{"full_name": {"John Smith"}}.Encode()
	rec = app.do(t, http.MethodPut, target, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Person deleted successfully", decodeBody(t, rec)["message"])

	// The audit entry records the deleted record's stored phone number
	entries, err := app.repos.Audit.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.AuditActionDeleteByName, entries[1].Action)
	assert.Equal(t, "John Smith", entries[1].FullName)
	assert.Equal(t, "+1 555-1234", entries[1].PhoneNumber)
}

func TestDeleteByNameNotFound(t *testing.T) {
	app := setupTestApp(t)

	target := "/PhoneBook/deleteByName?" + url.Values{"full_name": {"Jane Doe"}}.Encode()
	rec := app.do(t, http.MethodPut, target, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Person not found in the database", decodeBody(t, rec)["detail"])
	assert.Empty(t, auditActions(t, app))
}

func TestDeleteByNameInvalidFormat(t *testing.T) {
	app := setupTestApp(t)

	target := "/PhoneBook/deleteByName?" + url.Values{"full_name": {"John5 Smith"}}.Encode()
	rec := app.do(t, http.MethodPut, target, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid input. Please check your response and try again.",
		decodeBody(t, rec)["detail"])

	// A missing query parameter takes the same path
	rec = app.do(t, http.MethodPut, "/PhoneBook/deleteByName", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteByNumber(t *testing.T) {
	app := setupTestApp(t)

	rec := app.addPerson(t, "John Smith", "+1 555-1234")
	require.Equal(t, http.StatusOK, rec.Code)

	target := "/PhoneBook/deleteByNumber?" + url.Values{"phone_number": {"+1 555-1234"}}.Encode()
	rec = app.do(t, http.MethodPut, target, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Person deleted successfully", decodeBody(t, rec)["message"])

	// The audit entry records the deleted record's stored full name
	entries, err := app.repos.Audit.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.AuditActionDeleteByNumber, entries[1].Action)
	assert.Equal(t, "John Smith", entries[1].FullName)
	assert.Equal(t, "+1 555-1234", entries[1].PhoneNumber)
}

func TestDeleteByNumberNotFound(t *testing.T) {
	app := setupTestApp(t)

	target := "/PhoneBook/deleteByNumber?" + url.Values{"phone_number": {"123-1234"}}.Encode()
	rec := app.do(t, http.MethodPut, target, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Person not found in the database", decodeBody(t, rec)["detail"])
	assert.Empty(t, auditActions(t, app))
}

// End to end: add, conflicting add, delete by number, list. The failed add
// leaves no audit entry; the trailing list adds one.
func TestPhoneBookScenario(t *testing.T) {
	app := setupTestApp(t)

	rec := app.addPerson(t, "John Smith", "+1 555-1234")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.addPerson(t, "John Smith", "+1 555-5678")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Person already exists in the database", decodeBody(t, rec)["detail"])

	target := "/PhoneBook/deleteByNumber?" + url.Values{"phone_number": {"+1 555-1234"}}.Encode()
	rec = app.do(t, http.MethodPut, target, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodGet, "/PhoneBook/list", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var contacts []models.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contacts))
	assert.Empty(t, contacts)

	assert.Equal(t, []string{
		models.AuditActionAdd,
		models.AuditActionDeleteByNumber,
		models.AuditActionList,
	}, auditActions(t, app))
}

func TestHealthEndpoint(t *testing.T) {
	app := setupTestApp(t)

	rec := app.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}
