package server

import (
	"embed"
	"net/http"
	"time"

	"github.com/Rodrigo-Rojo/blog/config"
	"github.com/Rodrigo-Rojo/blog/db"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/helmet/v2"
	"github.com/gofiber/template/html/v2"
	log "github.com/sirupsen/logrus"
)

//go:embed views/*
var viewsDir embed.FS

// Mailer is implemented by the outbound contact-mail bridge.
type Mailer interface {
	Send(name, email, phone, message string) error
}

type Config struct {
	Site   config.Site
	Store  *db.Store
	Mailer Mailer
}

type handlers struct {
	site   config.Site
	store  *db.Store
	mailer Mailer
}

// New builds the fiber app with all blog routes registered.
func New(cfg *Config) *fiber.App {
	h := &handlers{site: cfg.Site, store: cfg.Store, mailer: cfg.Mailer}

	app := fiber.New(fiber.Config{
		Views: html.NewFileSystem(http.FS(viewsDir), ".html"),
	})

	app.Use(helmet.New())
	app.Use(requestid.New(requestid.ConfigDefault))
	app.Use(compress.New())

	// Track the latency of each request
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.WithFields(log.Fields{
			"method":  c.Method(),
			"route":   c.Route().Path,
			"latency": time.Since(start),
		}).Info("Request")
		return err
	})

	app.Get("/", h.ServePosts)
	app.Get("/post/:id", h.ServePost)

	app.Get("/make_post", h.ServeNewPost)
	app.Post("/make_post", h.CreatePost)

	app.Get("/edit-post/:id", h.ServeEditPost)
	app.Post("/edit-post/:id", h.EditPost)

	app.Get("/delete_post/:id", h.DeletePost)
	app.Post("/delete_post/:id", h.DeletePost)

	app.Get("/about", h.ServeAbout)
	app.Get("/contact", h.ServeContact)
	app.Post("/message", h.SendMessage)

	return app
}

// page renders a view inside the shared layout with the site chrome and
// the current year attached.
func (h *handlers) page(c *fiber.Ctx, name string, data fiber.Map) error {
	data["Site"] = h.site
	data["Year"] = time.Now().Year()
	return c.Render("views/"+name, data, "views/nested/index")
}
