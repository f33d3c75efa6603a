package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/savconnect/savconnect-api/internal/domain/identity"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrAlreadyLiked    = errors.New("post already liked")
	ErrNotLiked        = errors.New("post has not been liked")
	ErrEmptyText       = errors.New("text is required")
)

type Like struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
}

// Comment carries a snapshot of the author's name and avatar taken when
// the comment was written.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// Post is a single feed document. Likes and Comments are embedded,
// newest-first, and written back only as part of the whole post row.
type Post struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates a post authored by the given identity, denormalizing the
// author's name and avatar onto the document.
func New(author identity.Identity, text string, now time.Time) (*Post, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	return &Post{
		ID:        uuid.New(),
		AuthorID:  author.ID,
		Text:      text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		Likes:     []Like{},
		Comments:  []Comment{},
		CreatedAt: now,
	}, nil
}

// LikedBy reports whether the user already has a like on this post.
func (p *Post) LikedBy(userID uuid.UUID) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// Like inserts a like record at the head of the list. At most one like
// per user is ever recorded.
func (p *Post) Like(userID uuid.UUID) error {
	if p.LikedBy(userID) {
		return ErrAlreadyLiked
	}
	p.Likes = append([]Like{{ID: uuid.New(), UserID: userID}}, p.Likes...)
	return nil
}

// Unlike removes the user's like record, located by user id equality
// rather than position.
func (p *Post) Unlike(userID uuid.UUID) error {
	kept := make([]Like, 0, len(p.Likes))
	found := false
	for _, l := range p.Likes {
		if !found && l.UserID == userID {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return ErrNotLiked
	}
	p.Likes = kept
	return nil
}

// AddComment inserts a comment at the head of the list with a snapshot
// of the author's name and avatar. Returns the new comment's id.
func (p *Post) AddComment(author identity.Identity, text string, now time.Time) (uuid.UUID, error) {
	if text == "" {
		return uuid.Nil, ErrEmptyText
	}
	c := Comment{
		ID:        uuid.New(),
		UserID:    author.ID,
		Text:      text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		CreatedAt: now,
	}
	p.Comments = append([]Comment{c}, p.Comments...)
	return c.ID, nil
}

// RemoveComment removes the comment with the given id, but only if the
// acting user authored it. The aggregate is unchanged on any failure.
func (p *Post) RemoveComment(commentID, actingUserID uuid.UUID) error {
	idx := -1
	for i, c := range p.Comments {
		if c.ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrCommentNotFound
	}
	if err := identity.Authorize(actingUserID, p.Comments[idx].UserID); err != nil {
		return err
	}
	p.Comments = append(p.Comments[:idx:idx], p.Comments[idx+1:]...)
	return nil
}

type Repository interface {
	Save(ctx context.Context, p *Post) error
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)
	List(ctx context.Context, limit, offset int) ([]*Post, error)
}
