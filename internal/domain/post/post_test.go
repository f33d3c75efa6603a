package post

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savconnect/savconnect-api/internal/domain/identity"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func author() identity.Identity {
	return identity.Identity{ID: uuid.New(), Name: "Sav", Avatar: "https://cdn.example.com/sav.png"}
}

func TestNew(t *testing.T) {
	a := author()

	p, err := New(a, "hello world", now)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, a.ID, p.AuthorID)
	assert.Equal(t, "hello world", p.Text)
	assert.Equal(t, a.Name, p.Name)
	assert.Equal(t, a.Avatar, p.Avatar)
	assert.Empty(t, p.Likes)
	assert.Empty(t, p.Comments)
	assert.Equal(t, now, p.CreatedAt)
}

func TestNew_EmptyText(t *testing.T) {
	_, err := New(author(), "", now)
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestLikeUnlike_RoundTrip(t *testing.T) {
	p, err := New(author(), "hello", now)
	require.NoError(t, err)
	other := uuid.New()
	require.NoError(t, p.Like(other))
	before := append([]Like(nil), p.Likes...)

	u := uuid.New()
	require.NoError(t, p.Like(u))
	require.NoError(t, p.Unlike(u))

	assert.Equal(t, before, p.Likes)
}

func TestLike_Twice(t *testing.T) {
	p, err := New(author(), "hello", now)
	require.NoError(t, err)
	u := uuid.New()

	require.NoError(t, p.Like(u))
	err = p.Like(u)

	assert.ErrorIs(t, err, ErrAlreadyLiked)
	assert.Len(t, p.Likes, 1)
}

func TestLike_InsertsAtHead(t *testing.T) {
	p, err := New(author(), "hello", now)
	require.NoError(t, err)
	first, second := uuid.New(), uuid.New()

	require.NoError(t, p.Like(first))
	require.NoError(t, p.Like(second))

	require.Len(t, p.Likes, 2)
	assert.Equal(t, second, p.Likes[0].UserID)
	assert.Equal(t, first, p.Likes[1].UserID)
}

func TestUnlike_NotLiked(t *testing.T) {
	p, err := New(author(), "hello", now)
	require.NoError(t, err)

	err = p.Unlike(uuid.New())

	assert.ErrorIs(t, err, ErrNotLiked)
	assert.Empty(t, p.Likes)
}

func TestAddComment(t *testing.T) {
	p, err := New(author(), "hello", now)
	require.NoError(t, err)
	commenter := identity.Identity{ID: uuid.New(), Name: "Alex", Avatar: "https://cdn.example.com/alex.png"}

	id, err := p.AddComment(commenter, "nice post", now.Add(time.Minute))
	require.NoError(t, err)

	require.Len(t, p.Comments, 1)
	c := p.Comments[0]
	assert.Equal(t, id, c.ID)
	assert.Equal(t, commenter.ID, c.UserID)
	assert.Equal(t, "nice post", c.Text)
	assert.Equal(t, "Alex", c.Name, "author name is snapshotted onto the comment")
	assert.Equal(t, commenter.Avatar, c.Avatar)
}

func TestAddComment_EmptyText(t *testing.T) {
	p, err := New(author(), "hello", now)
	require.NoError(t, err)

	_, err = p.AddComment(author(), "", now)

	assert.ErrorIs(t, err, ErrEmptyText)
	assert.Empty(t, p.Comments)
}

func TestAddComment_InsertsAtHead(t *testing.T) {
	p, err := New(author(), "hello", now)
	require.NoError(t, err)
	commenter := author()

	_, err = p.AddComment(commenter, "first", now)
	require.NoError(t, err)
	_, err = p.AddComment(commenter, "second", now.Add(time.Minute))
	require.NoError(t, err)

	require.Len(t, p.Comments, 2)
	assert.Equal(t, "second", p.Comments[0].Text)
	assert.Equal(t, "first", p.Comments[1].Text)
}

func TestRemoveComment(t *testing.T) {
	p, err := New(author(), "hello", now)
	require.NoError(t, err)
	commenter := author()
	id, err := p.AddComment(commenter, "hi", now)
	require.NoError(t, err)

	require.NoError(t, p.RemoveComment(id, commenter.ID))
	assert.Empty(t, p.Comments)
}

func TestRemoveComment_NotFound(t *testing.T) {
	p, err := New(author(), "hello", now)
	require.NoError(t, err)

	err = p.RemoveComment(uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestRemoveComment_NotAuthor(t *testing.T) {
	p, err := New(author(), "hello", now)
	require.NoError(t, err)
	commenter := author()
	id, err := p.AddComment(commenter, "hi", now)
	require.NoError(t, err)

	err = p.RemoveComment(id, uuid.New())

	assert.ErrorIs(t, err, identity.ErrNotOwner)
	require.Len(t, p.Comments, 1)
	assert.Equal(t, id, p.Comments[0].ID)
}
