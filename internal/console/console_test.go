package console_test

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/require"

	"github.com/hetpatel09/portfolio-api/internal/client"
	"github.com/hetpatel09/portfolio-api/internal/console"
	"github.com/hetpatel09/portfolio-api/internal/handlers"
	"github.com/hetpatel09/portfolio-api/internal/mail"
	"github.com/hetpatel09/portfolio-api/internal/middleware"
	"github.com/hetpatel09/portfolio-api/internal/services"
	"github.com/hetpatel09/portfolio-api/internal/store/memstore"
)

type noopMailer struct{}

func (noopMailer) Send(mail.Message) error { return nil }

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	st := memstore.New()
	handlers.InitProjectHandlers(services.NewProjectService(st))
	handlers.InitExperienceHandlers(services.NewExperienceService(st))
	handlers.InitCertificationHandlers(services.NewCertificationService(st))
	handlers.InitContactHandler(noopMailer{})
	handlers.InitAdminHandler(services.NewAdminService("test-secret", "admin123", ""))

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	handlers.RegisterRoutes(app, middleware.AdminAuth([]byte("test-secret")))

	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, srv *httptest.Server, script string) string {
	t.Helper()

	var out bytes.Buffer
	con := console.New(client.New(srv.URL), strings.NewReader(script), &out)
	require.NoError(t, con.Run())
	return out.String()
}

func TestConsoleRejectsBadPassword(t *testing.T) {
	srv := newServer(t)

	// Wrong passphrase keeps the console unauthenticated; EOF ends it.
	out := run(t, srv, "wrong\n")
	require.Contains(t, out, "Invalid password")
	require.NotContains(t, out, "Commands:")
}

func TestConsoleProjectLifecycle(t *testing.T) {
	srv := newServer(t)

	script := strings.Join([]string{
		"admin123",
		"add",
		"Web",           // category
		"My Site",       // title
		"A description", // description
		"Go, React",     // technologies
		"",              // githubUrl
		"",              // projectUrl
		"list",
		"edit 1",
		"",        // keep category
		"Renamed", // new title
		"",        // keep description
		"",        // keep technologies
		"",        // keep githubUrl
		"",        // keep projectUrl
		"list",
		"delete 1",
		"y",
		"quit",
	}, "\n") + "\n"

	out := run(t, srv, script)
	require.Contains(t, out, "Created project")
	require.Contains(t, out, "Web — My Site")
	require.Contains(t, out, "Updated project")
	require.Contains(t, out, "Web — Renamed")
	require.Contains(t, out, "Are you sure you want to delete this item?")
	require.Contains(t, out, "Deleted project")

	// Server state reflects the whole session.
	cl := client.New(srv.URL)
	list, err := cl.ListProjects()
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestConsoleDeleteCancelled(t *testing.T) {
	srv := newServer(t)

	script := strings.Join([]string{
		"admin123",
		"tab certifications",
		"add",
		"AWS SA",     // name
		"Amazon",     // organization
		"",           // verificationUrl
		"Cloud cert", // description
		"EC2, S3",    // skills
		"delete 1",
		"n",
		"quit",
	}, "\n") + "\n"

	out := run(t, srv, script)
	require.Contains(t, out, "Created certification")
	require.Contains(t, out, "Cancelled")

	cl := client.New(srv.URL)
	list, err := cl.ListCertifications()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, []string{"EC2", "S3"}, list[0].Skills)
}

func TestConsoleTabSwitching(t *testing.T) {
	srv := newServer(t)

	out := run(t, srv, "admin123\ntab experiences\nlist\ntab nope\nquit\n")
	require.Contains(t, out, "No experiences")
	require.Contains(t, out, `Unknown tab "nope"`)
}
