package db_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Rodrigo-Rojo/blog/db"
	"github.com/Rodrigo-Rojo/blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *db.Store {
	conn, err := db.Open(filepath.Join(t.TempDir(), "posts.db"))
	require.NoError(t, err)
	return db.NewStore(conn)
}

func postFields(title string) db.PostFields {
	return db.PostFields{
		Title:    title,
		Subtitle: "A subtitle",
		Author:   "Rodrigo",
		ImgUrl:   "https://example.com/cover.jpg",
		Body:     "<p>Hello world</p>",
	}
}

func TestCreateAssignsIdAndDate(t *testing.T) {
	store := newTestStore(t)

	post, err := store.Create(postFields("First Post"))
	require.NoError(t, err)
	assert.NotZero(t, post.Id)
	assert.Equal(t, models.FormatDate(time.Now()), post.Date)

	posts, err := store.All()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, post.Id, posts[0].Id)
}

func TestCreateDuplicateTitle(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Create(postFields("Same Title"))
	require.NoError(t, err)

	_, err = store.Create(postFields("Same Title"))
	assert.ErrorIs(t, err, db.ErrDuplicateTitle)

	posts, err := store.All()
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestGetById(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Create(postFields("Find Me"))
	require.NoError(t, err)

	post, err := store.GetById(created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Find Me", post.Title)

	_, err = store.GetById(created.Id + 1000)
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestRoundTrip(t *testing.T) {
	store := newTestStore(t)

	fields := postFields("Round Trip")
	created, err := store.Create(fields)
	require.NoError(t, err)

	post, err := store.GetById(created.Id)
	require.NoError(t, err)
	assert.Equal(t, fields.Title, post.Title)
	assert.Equal(t, fields.Subtitle, post.Subtitle)
	assert.Equal(t, fields.Author, post.Author)
	assert.Equal(t, fields.ImgUrl, post.ImgUrl)
	assert.Equal(t, fields.Body, post.Body)
}

func TestUpdateOverwritesFieldsButNotIdOrDate(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Create(postFields("Before Edit"))
	require.NoError(t, err)

	updated, err := store.Update(created.Id, db.PostFields{
		Title:    "After Edit",
		Subtitle: "New subtitle",
		Author:   "Someone Else",
		ImgUrl:   "https://example.com/other.jpg",
		Body:     "<p>Edited</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, created.Date, updated.Date)
	assert.Equal(t, "After Edit", updated.Title)
	assert.Equal(t, "New subtitle", updated.Subtitle)
	assert.Equal(t, "Someone Else", updated.Author)
	assert.Equal(t, "<p>Edited</p>", updated.Body)
}

func TestUpdateMissingPost(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Update(42, postFields("Nope"))
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestUpdateToDuplicateTitle(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Create(postFields("Taken"))
	require.NoError(t, err)
	second, err := store.Create(postFields("Free"))
	require.NoError(t, err)

	_, err = store.Update(second.Id, postFields("Taken"))
	assert.ErrorIs(t, err, db.ErrDuplicateTitle)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Create(postFields("Doomed"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(created.Id))

	_, err = store.GetById(created.Id)
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestDeleteMissingPost(t *testing.T) {
	store := newTestStore(t)

	err := store.Delete(42)
	assert.ErrorIs(t, err, db.ErrNotFound)
}
