package server

import (
	"errors"
	"strconv"

	"github.com/Rodrigo-Rojo/blog/db"
	"github.com/Rodrigo-Rojo/blog/models"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func parseId(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64)
}

// GET /
func (h *handlers) ServePosts(c *fiber.Ctx) error {
	posts, err := h.store.All()
	if err != nil {
		c.SendString("Failed to get posts")
		return c.SendStatus(500)
	}
	views := make([]models.PostView, len(posts))
	for i, post := range posts {
		views[i] = post.ToPostView(i + 1)
	}
	return h.page(c, "index", fiber.Map{
		"PageTitle": h.site.Title,
		"Posts":     views,
	})
}

// GET /post/:id
func (h *handlers) ServePost(c *fiber.Ctx) error {
	id, err := parseId(c)
	if err != nil {
		c.SendString("Got invalid id")
		return c.SendStatus(400)
	}
	post, err := h.store.GetById(id)
	if errors.Is(err, db.ErrNotFound) {
		c.SendString("Failed to get post")
		return c.SendStatus(404)
	}
	if err != nil {
		c.SendString("Failed to get post")
		return c.SendStatus(500)
	}
	return h.page(c, "post", fiber.Map{
		"PageTitle": post.Title,
		"Post":      post.ToPostView(0),
	})
}

// GET /make_post
func (h *handlers) ServeNewPost(c *fiber.Ctx) error {
	return h.servePostForm(c, "Create a Post", "/make_post", PostForm{}, nil)
}

// POST /make_post
func (h *handlers) CreatePost(c *fiber.Ctx) error {
	form := PostForm{}
	if err := c.BodyParser(&form); err != nil {
		c.SendString("Failed to parse form")
		return c.SendStatus(400)
	}
	if errs := form.Validate(); len(errs) > 0 {
		return h.servePostForm(c, "Create a Post", "/make_post", form, errs)
	}
	_, err := h.store.Create(form.Fields())
	if errors.Is(err, db.ErrDuplicateTitle) {
		return h.servePostForm(c, "Create a Post", "/make_post", form,
			map[string]string{"title": err.Error()})
	}
	if err != nil {
		c.SendString("Failed to create post")
		return c.SendStatus(500)
	}
	return c.Redirect("/")
}

// GET /edit-post/:id
func (h *handlers) ServeEditPost(c *fiber.Ctx) error {
	id, err := parseId(c)
	if err != nil {
		c.SendString("Got invalid id")
		return c.SendStatus(400)
	}
	post, err := h.store.GetById(id)
	if errors.Is(err, db.ErrNotFound) {
		c.SendString("Failed to get post")
		return c.SendStatus(404)
	}
	if err != nil {
		c.SendString("Failed to get post")
		return c.SendStatus(500)
	}
	return h.servePostForm(c, "Edit Post", "/edit-post/"+c.Params("id"),
		formFromPost(post), nil)
}

// POST /edit-post/:id
func (h *handlers) EditPost(c *fiber.Ctx) error {
	id, err := parseId(c)
	if err != nil {
		c.SendString("Got invalid id")
		return c.SendStatus(400)
	}
	form := PostForm{}
	if err := c.BodyParser(&form); err != nil {
		c.SendString("Failed to parse form")
		return c.SendStatus(400)
	}
	action := "/edit-post/" + c.Params("id")
	if errs := form.Validate(); len(errs) > 0 {
		return h.servePostForm(c, "Edit Post", action, form, errs)
	}
	_, err = h.store.Update(id, form.Fields())
	if errors.Is(err, db.ErrNotFound) {
		c.SendString("Failed to get post")
		return c.SendStatus(404)
	}
	if errors.Is(err, db.ErrDuplicateTitle) {
		return h.servePostForm(c, "Edit Post", action, form,
			map[string]string{"title": err.Error()})
	}
	if err != nil {
		c.SendString("Failed to update post")
		return c.SendStatus(500)
	}
	return c.Redirect("/")
}

// GET,POST /delete_post/:id
func (h *handlers) DeletePost(c *fiber.Ctx) error {
	id, err := parseId(c)
	if err != nil {
		c.SendString("Got invalid id")
		return c.SendStatus(400)
	}
	err = h.store.Delete(id)
	if errors.Is(err, db.ErrNotFound) {
		c.SendString("Failed to get post")
		return c.SendStatus(404)
	}
	if err != nil {
		c.SendString("Failed to delete post")
		return c.SendStatus(500)
	}
	return c.Redirect("/")
}

// GET /about
func (h *handlers) ServeAbout(c *fiber.Ctx) error {
	return h.page(c, "about", fiber.Map{
		"PageTitle": "About",
	})
}

// GET /contact
func (h *handlers) ServeContact(c *fiber.Ctx) error {
	return h.page(c, "contact", fiber.Map{
		"PageTitle": "Contact",
		"H1":        "Contact Me",
		"Sent":      false,
	})
}

// POST /message - delivery failures are logged and never shown to the
// visitor; the confirmation renders either way.
func (h *handlers) SendMessage(c *fiber.Ctx) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	phone := c.FormValue("phone")
	message := c.FormValue("message")
	if err := h.mailer.Send(name, email, phone, message); err != nil {
		log.WithFields(log.Fields{
			"error": err,
			"email": email,
		}).Error("Failed to send contact mail")
	}
	return h.page(c, "contact", fiber.Map{
		"PageTitle": "Contact",
		"H1":        "Email Sent",
		"Sent":      true,
	})
}

func (h *handlers) servePostForm(c *fiber.Ctx, h1, action string, form PostForm, errs map[string]string) error {
	if errs == nil {
		errs = map[string]string{}
	}
	return h.page(c, "make-post", fiber.Map{
		"PageTitle": h1,
		"H1":        h1,
		"Action":    action,
		"Form":      form,
		"Errors":    errs,
	})
}
