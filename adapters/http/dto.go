package http

import (
	"time"

	"github.com/savconnect/savconnect-api/internal/domain/notification"
	"github.com/savconnect/savconnect-api/internal/domain/post"
	"github.com/savconnect/savconnect-api/internal/domain/profile"
)

// Profile DTOs

type ExperienceDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

type EducationDTO struct {
	ID           string     `json:"id"`
	University   string     `json:"university"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	Location     string     `json:"location"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Description  string     `json:"description,omitempty"`
}

type SocialDTO struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Youtube  string `json:"youtube,omitempty"`
}

type ProfileDTO struct {
	OwnerID    string          `json:"owner_id"`
	Company    string          `json:"company"`
	Status     string          `json:"status"`
	Location   string          `json:"location"`
	Bio        string          `json:"bio,omitempty"`
	Skills     []string        `json:"skills"`
	Social     SocialDTO       `json:"social"`
	Experience []ExperienceDTO `json:"experience"`
	Education  []EducationDTO  `json:"education"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// UpsertProfileRequest uses pointers so an omitted field is
// distinguishable from an explicitly empty one: omitted fields keep
// their stored value.
type UpsertProfileRequest struct {
	Company  *string `json:"company"`
	Status   *string `json:"status"`
	Location *string `json:"location"`
	Bio      *string `json:"bio"`
	Skills   *string `json:"skills"`
	LinkedIn *string `json:"linkedin"`
	Youtube  *string `json:"youtube"`
}

type AddExperienceRequest struct {
	Title       string     `json:"title" binding:"required"`
	Company     string     `json:"company" binding:"required"`
	Location    string     `json:"location" binding:"required"`
	From        time.Time  `json:"from" binding:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type AddEducationRequest struct {
	University   string     `json:"university" binding:"required"`
	Degree       string     `json:"degree" binding:"required"`
	FieldOfStudy string     `json:"fieldofstudy" binding:"required"`
	Location     string     `json:"location" binding:"required"`
	From         time.Time  `json:"from" binding:"required"`
	To           *time.Time `json:"to"`
	Description  string     `json:"description"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	dto := ProfileDTO{
		OwnerID:   p.OwnerID.String(),
		Company:   p.Company,
		Status:    p.Status,
		Location:  p.Location,
		Bio:       p.Bio,
		Skills:    p.Skills,
		Social:    SocialDTO(p.Social),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	dto.Experience = make([]ExperienceDTO, len(p.Experience))
	for i, e := range p.Experience {
		dto.Experience[i] = ExperienceDTO{
			ID:          e.ID.String(),
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			From:        e.From,
			To:          e.To,
			Current:     e.Current,
			Description: e.Description,
		}
	}
	dto.Education = make([]EducationDTO, len(p.Education))
	for i, e := range p.Education {
		dto.Education[i] = EducationDTO{
			ID:           e.ID.String(),
			University:   e.University,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			Location:     e.Location,
			From:         e.From,
			To:           e.To,
			Description:  e.Description,
		}
	}
	return dto
}

// Post DTOs

type CreatePostRequest struct {
	Text string `json:"text" binding:"required"`
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type LikeDTO struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
}

type CommentDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

type PostDTO struct {
	ID        string       `json:"id"`
	AuthorID  string       `json:"author_id"`
	Text      string       `json:"text"`
	Name      string       `json:"name"`
	Avatar    string       `json:"avatar"`
	Likes     []LikeDTO    `json:"likes"`
	Comments  []CommentDTO `json:"comments"`
	CreatedAt time.Time    `json:"created_at"`
}

func ToPostDTO(p *post.Post) PostDTO {
	dto := PostDTO{
		ID:        p.ID.String(),
		AuthorID:  p.AuthorID.String(),
		Text:      p.Text,
		Name:      p.Name,
		Avatar:    p.Avatar,
		CreatedAt: p.CreatedAt,
	}
	dto.Likes = make([]LikeDTO, len(p.Likes))
	for i, l := range p.Likes {
		dto.Likes[i] = LikeDTO{ID: l.ID.String(), UserID: l.UserID.String()}
	}
	dto.Comments = make([]CommentDTO, len(p.Comments))
	for i, c := range p.Comments {
		dto.Comments[i] = CommentDTO{
			ID:        c.ID.String(),
			UserID:    c.UserID.String(),
			Text:      c.Text,
			Name:      c.Name,
			Avatar:    c.Avatar,
			CreatedAt: c.CreatedAt,
		}
	}
	return dto
}

// Notification DTOs

type NotificationDTO struct {
	ID        string     `json:"id"`
	Kind      string     `json:"kind"`
	PostID    string     `json:"post_id"`
	ActorID   string     `json:"actor_id"`
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
}

func ToNotificationDTO(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID.String(),
		Kind:      string(n.Kind),
		PostID:    n.PostID.String(),
		ActorID:   n.ActorID.String(),
		CreatedAt: n.CreatedAt,
		ReadAt:    n.ReadAt,
	}
}
