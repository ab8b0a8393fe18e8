package server

import (
	"net/url"
	"strings"

	"github.com/Rodrigo-Rojo/blog/db"
	"github.com/Rodrigo-Rojo/blog/models"
)

const requiredMsg = "This field is required."

// PostForm carries the user-editable post fields through a create or edit
// submission.
type PostForm struct {
	Title    string `form:"title"`
	Subtitle string `form:"subtitle"`
	Author   string `form:"author"`
	ImgUrl   string `form:"img_url"`
	Body     string `form:"body"`
}

// Validate checks the required-field and URL-shape rules and returns a map
// of field name to error message. An empty map means the form is valid.
func (form PostForm) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(form.Title) == "" {
		errs["title"] = requiredMsg
	}
	if strings.TrimSpace(form.Subtitle) == "" {
		errs["subtitle"] = requiredMsg
	}
	if strings.TrimSpace(form.Author) == "" {
		errs["author"] = requiredMsg
	}
	if strings.TrimSpace(form.Body) == "" {
		errs["body"] = requiredMsg
	}
	if strings.TrimSpace(form.ImgUrl) == "" {
		errs["img_url"] = requiredMsg
	} else if !validUrl(form.ImgUrl) {
		errs["img_url"] = "Invalid URL."
	}
	return errs
}

// A well-formed URL needs at least a scheme and a host.
func validUrl(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func (form PostForm) Fields() db.PostFields {
	return db.PostFields{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Author:   form.Author,
		ImgUrl:   form.ImgUrl,
		Body:     form.Body,
	}
}

func formFromPost(post models.Post) PostForm {
	return PostForm{
		Title:    post.Title,
		Subtitle: post.Subtitle,
		Author:   post.Author,
		ImgUrl:   post.ImgUrl,
		Body:     post.Body,
	}
}
