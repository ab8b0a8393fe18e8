package models

import (
	"html/template"
	"time"
)

// DateLayout is the display format stamped on every post at creation.
const DateLayout = "January 2, 2006"

type Post struct {
	Id       uint64 `gorm:"primaryKey;<-:create"`
	Title    string `gorm:"uniqueIndex"`
	Subtitle string
	Date     string `gorm:"<-:create"`
	Body     string
	Author   string
	ImgUrl   string
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// PostView wraps a post for rendering: the body is marked as trusted HTML
// and Position carries the post's 1-based place in the current listing.
type PostView struct {
	Post     Post
	Position int
	HTMLBody template.HTML
}

func (post Post) ToPostView(position int) PostView {
	return PostView{
		Post:     post,
		Position: position,
		HTMLBody: template.HTML(post.Body),
	}
}
