// Package serve exposes the viewer page and the catalog over HTTP.
package serve

import (
	"github.com/gofiber/fiber/v2"

	"grossview/viewer/internal/catalog"
	"grossview/viewer/internal/export"
	"grossview/viewer/internal/logging"
)

// Server hosts the rendered viewer page and a JSON catalog endpoint.
type Server struct {
	app *fiber.App
	cat *catalog.Catalog
}

// New builds a server around the catalog.
func New(cat *catalog.Catalog) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
			AppName:               "grossview",
		}),
		cat: cat,
	}
	s.app.Get("/", s.handleIndex)
	s.app.Get("/api/catalog", s.handleCatalog)
	return s
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	page, err := export.Render(s.cat)
	if err != nil {
		logging.Error(err)
		return fiber.NewError(fiber.StatusInternalServerError, "render viewer page")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(page)
}

func (s *Server) handleCatalog(c *fiber.Ctx) error {
	return c.JSON(s.cat.Entries())
}

// Listen blocks serving HTTP on the given address.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
