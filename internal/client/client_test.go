package client_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/require"

	"github.com/hetpatel09/portfolio-api/internal/client"
	"github.com/hetpatel09/portfolio-api/internal/handlers"
	"github.com/hetpatel09/portfolio-api/internal/mail"
	"github.com/hetpatel09/portfolio-api/internal/middleware"
	"github.com/hetpatel09/portfolio-api/internal/models"
	"github.com/hetpatel09/portfolio-api/internal/services"
	"github.com/hetpatel09/portfolio-api/internal/store/memstore"
)

type fakeMailer struct {
	sent []mail.Message
}

func (f *fakeMailer) Send(m mail.Message) error {
	f.sent = append(f.sent, m)
	return nil
}

func newServer(t *testing.T) (*httptest.Server, *fakeMailer) {
	t.Helper()

	st := memstore.New()
	mailer := &fakeMailer{}

	handlers.InitProjectHandlers(services.NewProjectService(st))
	handlers.InitExperienceHandlers(services.NewExperienceService(st))
	handlers.InitCertificationHandlers(services.NewCertificationService(st))
	handlers.InitContactHandler(mailer)
	handlers.InitAdminHandler(services.NewAdminService("test-secret", "admin123", ""))

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	handlers.RegisterRoutes(app, middleware.AdminAuth([]byte("test-secret")))

	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return srv, mailer
}

func TestClientLogin(t *testing.T) {
	srv, _ := newServer(t)
	cl := client.New(srv.URL)

	err := cl.Login("wrong")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "Invalid password", apiErr.Message)

	require.NoError(t, cl.Login("admin123"))
}

func TestClientProjectRoundTrip(t *testing.T) {
	srv, _ := newServer(t)
	cl := client.New(srv.URL)
	require.NoError(t, cl.Login("admin123"))

	created, err := cl.CreateProject(models.Project{
		Category:     "Web",
		Title:        "Portfolio",
		Description:  "My site",
		Technologies: []string{"Go", "React"},
	})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	list, err := cl.ListProjects()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Portfolio", list[0].Title)

	created.Title = "Renamed"
	updated, err := cl.UpdateProject(created.ID.Hex(), *created)
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Title)

	deleted, err := cl.DeleteProject(created.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "Renamed", deleted.Title)

	list, err = cl.ListProjects()
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestClientMutationsWithoutLogin(t *testing.T) {
	srv, _ := newServer(t)
	cl := client.New(srv.URL)

	_, err := cl.CreateCertification(models.Certification{
		Name:         "AWS SA",
		Organization: "Amazon",
		Description:  "Cloud cert",
	})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestClientSendContact(t *testing.T) {
	srv, mailer := newServer(t)
	cl := client.New(srv.URL)

	require.NoError(t, cl.SendContact("Jane", "jane@example.com", "Hello", "Hi there"))
	require.Len(t, mailer.sent, 1)

	err := cl.SendContact("Jane", "", "Hello", "Hi there")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Len(t, mailer.sent, 1)
}
