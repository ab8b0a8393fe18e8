package db

import (
	"errors"
	"time"

	"github.com/Rodrigo-Rojo/blog/models"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("post not found")
	ErrDuplicateTitle = errors.New("a post with that title already exists")
)

// PostFields are the user-editable attributes of a post. Id and Date are
// owned by the store and never appear here.
type PostFields struct {
	Title    string
	Subtitle string
	Author   string
	ImgUrl   string
	Body     string
}

type Store struct {
	conn *gorm.DB
}

func NewStore(conn *gorm.DB) *Store {
	return &Store{conn: conn}
}

// All returns every post in the store's iteration order.
func (s *Store) All() ([]models.Post, error) {
	posts := []models.Post{}
	result := s.conn.Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *Store) GetById(id uint64) (models.Post, error) {
	post := models.Post{}
	result := s.conn.First(&post, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.Post{}, ErrNotFound
	}
	if result.Error != nil {
		return models.Post{}, result.Error
	}
	return post, nil
}

// Create persists a new post. The id is assigned by the database and the
// date is stamped from the clock at call time.
func (s *Store) Create(fields PostFields) (models.Post, error) {
	post := models.Post{
		Title:    fields.Title,
		Subtitle: fields.Subtitle,
		Date:     models.FormatDate(time.Now()),
		Body:     fields.Body,
		Author:   fields.Author,
		ImgUrl:   fields.ImgUrl,
	}
	result := s.conn.Create(&post)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return models.Post{}, ErrDuplicateTitle
	}
	if result.Error != nil {
		return models.Post{}, result.Error
	}
	return post, nil
}

// Update overwrites every user-editable field on the post matching id.
// Id and Date are never touched.
func (s *Store) Update(id uint64, fields PostFields) (models.Post, error) {
	post, err := s.GetById(id)
	if err != nil {
		return models.Post{}, err
	}
	result := s.conn.Model(&post).
		Select("title", "subtitle", "author", "img_url", "body").
		Updates(models.Post{
			Title:    fields.Title,
			Subtitle: fields.Subtitle,
			Author:   fields.Author,
			ImgUrl:   fields.ImgUrl,
			Body:     fields.Body,
		})
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return models.Post{}, ErrDuplicateTitle
	}
	if result.Error != nil {
		return models.Post{}, result.Error
	}
	return s.GetById(id)
}

// Delete hard-deletes the post matching id. Deleting a post that does not
// exist is an error, not a no-op.
func (s *Store) Delete(id uint64) error {
	result := s.conn.Delete(&models.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
