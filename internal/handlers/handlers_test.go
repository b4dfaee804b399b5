package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/hetpatel09/portfolio-api/internal/handlers"
	"github.com/hetpatel09/portfolio-api/internal/mail"
	"github.com/hetpatel09/portfolio-api/internal/middleware"
	"github.com/hetpatel09/portfolio-api/internal/services"
	"github.com/hetpatel09/portfolio-api/internal/store/memstore"
)

const (
	testSecret   = "test-secret"
	testPassword = "admin123"
)

type fakeMailer struct {
	sent []mail.Message
	err  error
}

func (f *fakeMailer) Send(m mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

func newTestApp() (*fiber.App, *fakeMailer) {
	st := memstore.New()
	mailer := &fakeMailer{}

	handlers.InitProjectHandlers(services.NewProjectService(st))
	handlers.InitExperienceHandlers(services.NewExperienceService(st))
	handlers.InitCertificationHandlers(services.NewCertificationService(st))
	handlers.InitContactHandler(mailer)
	handlers.InitAdminHandler(services.NewAdminService(testSecret, testPassword, ""))

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	handlers.RegisterRoutes(app, middleware.AdminAuth([]byte(testSecret)))
	return app, mailer
}

func request(t *testing.T, app *fiber.App, method, path, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := request(t, app, http.MethodPost, "/api/admin/login", "", map[string]string{"password": testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decode(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestLiveness(t *testing.T) {
	app, _ := newTestApp()

	resp := request(t, app, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	require.Equal(t, "Portfolio API is running!", body["message"])
}

func TestUnmatchedRouteReturns404(t *testing.T) {
	app, _ := newTestApp()

	resp := request(t, app, http.MethodGet, "/api/nope", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	require.Equal(t, "Route not found", body["message"])
}

func TestAdminLoginRejectsBadPassword(t *testing.T) {
	app, _ := newTestApp()

	resp := request(t, app, http.MethodPost, "/api/admin/login", "", map[string]string{"password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = request(t, app, http.MethodPost, "/api/admin/login", "", map[string]string{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMutationsRequireToken(t *testing.T) {
	app, _ := newTestApp()

	payload := map[string]any{
		"category":     "Web",
		"title":        "Portfolio",
		"description":  "Site",
		"technologies": []string{"Go"},
	}

	resp := request(t, app, http.MethodPost, "/api/projects", "", payload)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = request(t, app, http.MethodPost, "/api/projects", "garbage-token", payload)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Reads stay open.
	resp = request(t, app, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProjectCRUD(t *testing.T) {
	app, _ := newTestApp()
	token := login(t, app)

	resp := request(t, app, http.MethodPost, "/api/projects", token, map[string]any{
		"category":     "  Web ",
		"title":        " Portfolio ",
		"description":  "My site",
		"technologies": []string{" Go ", "React"},
		"githubUrl":    "https://github.com/x/y",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	decode(t, resp, &created)
	require.Equal(t, "Web", created["category"])
	require.Equal(t, "Portfolio", created["title"])
	require.Equal(t, []any{"Go", "React"}, created["technologies"])
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	require.NotEmpty(t, created["createdAt"])

	// Update: empty title keeps the old value, URL fields clear.
	resp = request(t, app, http.MethodPut, "/api/projects/"+id, token, map[string]any{
		"title":     "",
		"category":  "Backend",
		"githubUrl": "",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated map[string]any
	decode(t, resp, &updated)
	require.Equal(t, "Portfolio", updated["title"])
	require.Equal(t, "Backend", updated["category"])
	require.Equal(t, "", updated["githubUrl"])

	// Unknown and malformed ids.
	resp = request(t, app, http.MethodPut, "/api/projects/64b0c8c2a2f0a1b2c3d4e5f6", token, map[string]any{"title": "x"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = request(t, app, http.MethodPut, "/api/projects/not-hex", token, map[string]any{"title": "x"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errBody map[string]string
	decode(t, resp, &errBody)
	require.Equal(t, "Invalid project ID format", errBody["message"])

	// Delete returns the snapshot, then turns NotFound.
	resp = request(t, app, http.MethodDelete, "/api/projects/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var deleted map[string]any
	decode(t, resp, &deleted)
	require.Equal(t, "Project deleted successfully", deleted["message"])
	snapshot, ok := deleted["deletedProject"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Portfolio", snapshot["title"])

	resp = request(t, app, http.MethodDelete, "/api/projects/"+id, token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProjectCreateValidation(t *testing.T) {
	app, _ := newTestApp()
	token := login(t, app)

	resp := request(t, app, http.MethodPost, "/api/projects", token, map[string]any{
		"category":    "Web",
		"title":       "Portfolio",
		"description": "Site",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = request(t, app, http.MethodPost, "/api/projects", token, map[string]any{
		"category":     "Web",
		"title":        "Portfolio",
		"description":  "Site",
		"technologies": []string{"Go"},
		"githubUrl":    "not-a-url",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	require.Equal(t, "Validation error", body["message"])
	require.Equal(t, "GitHub URL must be a valid URL", body["error"])
}

func TestExperienceListOrdering(t *testing.T) {
	app, _ := newTestApp()
	token := login(t, app)

	for _, title := range []string{"A", "B", "C"} {
		resp := request(t, app, http.MethodPost, "/api/experiences", token, map[string]any{
			"title":       title,
			"company":     "Acme",
			"location":    "Remote",
			"startDate":   "Jan 2023",
			"description": "Work",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := request(t, app, http.MethodGet, "/api/experiences", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]any
	decode(t, resp, &list)
	require.Len(t, list, 3)
	require.Equal(t, "C", list[0]["title"])
	require.Equal(t, "B", list[1]["title"])
	require.Equal(t, "A", list[2]["title"])
}

func TestCertificationCreateScenario(t *testing.T) {
	app, _ := newTestApp()
	token := login(t, app)

	resp := request(t, app, http.MethodPost, "/api/certifications", token, map[string]any{
		"name":         "AWS SA",
		"organization": "Amazon",
		"description":  "Cloud cert",
		"skills":       []string{"EC2", "S3"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	decode(t, resp, &created)
	require.Equal(t, []any{"EC2", "S3"}, created["skills"])
	require.NotEmpty(t, created["id"])
	require.NotEmpty(t, created["createdAt"])
}

func TestContactRelay(t *testing.T) {
	app, mailer := newTestApp()

	payload := map[string]string{
		"name":    "Jane",
		"email":   "jane@example.com",
		"subject": "Hello",
		"message": "Line one\nLine two",
	}

	resp := request(t, app, http.MethodPost, "/api/contact", "", payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	require.Equal(t, "Message sent successfully", body["message"])
	require.Len(t, mailer.sent, 1)
	require.Equal(t, "Hello", mailer.sent[0].Subject)
	require.Equal(t, "jane@example.com", mailer.sent[0].Email)
}

func TestContactRelayMissingFields(t *testing.T) {
	app, mailer := newTestApp()

	for _, missing := range []string{"name", "email", "subject", "message"} {
		payload := map[string]string{
			"name":    "Jane",
			"email":   "jane@example.com",
			"subject": "Hello",
			"message": "Hi",
		}
		delete(payload, missing)

		resp := request(t, app, http.MethodPost, "/api/contact", "", payload)
		require.Equalf(t, http.StatusBadRequest, resp.StatusCode, "missing %s", missing)

		var body map[string]string
		decode(t, resp, &body)
		require.Equal(t, "All fields are required", body["message"])
	}
	require.Empty(t, mailer.sent)
}

func TestContactRelayFailureMessages(t *testing.T) {
	cases := []struct {
		err     error
		message string
		label   string
	}{
		{mail.ErrAuth, "Email authentication failed. Please check your email configuration.", "Authentication Error"},
		{mail.ErrUnreachable, "Email server not found. Please check your internet connection.", "Network Error"},
		{errors.New("boom"), "Error sending message. Please try again later.", "Email Error"},
	}

	for _, tc := range cases {
		app, mailer := newTestApp()
		mailer.err = tc.err

		resp := request(t, app, http.MethodPost, "/api/contact", "", map[string]string{
			"name":    "Jane",
			"email":   "jane@example.com",
			"subject": "Hello",
			"message": "Hi",
		})
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body map[string]string
		decode(t, resp, &body)
		require.Equal(t, tc.message, body["message"])
		require.Equal(t, tc.label, body["error"])
	}
}
