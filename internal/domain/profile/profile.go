package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrExperienceNotFound = errors.New("experience entry not found")
	ErrEducationNotFound  = errors.New("education entry not found")
)

// MissingFieldError reports a required field that was empty on an
// embedded entry, so the caller can name it in the response.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

type Experience struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

type Education struct {
	ID           uuid.UUID  `json:"id"`
	University   string     `json:"university"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	Location     string     `json:"location"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Description  string     `json:"description,omitempty"`
}

type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Youtube  string `json:"youtube,omitempty"`
}

// Profile is the per-user career document. Experience and Education are
// embedded, newest-first, and are only ever written back as part of the
// whole profile row.
type Profile struct {
	OwnerID    uuid.UUID    `json:"owner_id"`
	Company    string       `json:"company"`
	Status     string       `json:"status"`
	Location   string       `json:"location"`
	Bio        string       `json:"bio,omitempty"`
	Skills     []string     `json:"skills"`
	Social     SocialLinks  `json:"social"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (e Experience) validate() error {
	switch {
	case e.Title == "":
		return &MissingFieldError{Field: "title"}
	case e.Company == "":
		return &MissingFieldError{Field: "company"}
	case e.Location == "":
		return &MissingFieldError{Field: "location"}
	case e.From.IsZero():
		return &MissingFieldError{Field: "from"}
	}
	return nil
}

func (e Education) validate() error {
	switch {
	case e.University == "":
		return &MissingFieldError{Field: "university"}
	case e.Degree == "":
		return &MissingFieldError{Field: "degree"}
	case e.FieldOfStudy == "":
		return &MissingFieldError{Field: "fieldofstudy"}
	case e.Location == "":
		return &MissingFieldError{Field: "location"}
	case e.From.IsZero():
		return &MissingFieldError{Field: "from"}
	}
	return nil
}

// AddExperience validates the entry, assigns it a fresh id and inserts
// it at the head of the list. On error the profile is unchanged.
func (p *Profile) AddExperience(entry Experience) (uuid.UUID, error) {
	if err := entry.validate(); err != nil {
		return uuid.Nil, err
	}
	entry.ID = uuid.New()
	p.Experience = append([]Experience{entry}, p.Experience...)
	return entry.ID, nil
}

// RemoveExperience removes the entry with the given id, preserving the
// relative order of the rest. Lookup is by id, never by position.
func (p *Profile) RemoveExperience(id uuid.UUID) error {
	kept := make([]Experience, 0, len(p.Experience))
	found := false
	for _, e := range p.Experience {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrExperienceNotFound
	}
	p.Experience = kept
	return nil
}

func (p *Profile) AddEducation(entry Education) (uuid.UUID, error) {
	if err := entry.validate(); err != nil {
		return uuid.Nil, err
	}
	entry.ID = uuid.New()
	p.Education = append([]Education{entry}, p.Education...)
	return entry.ID, nil
}

func (p *Profile) RemoveEducation(id uuid.UUID) error {
	kept := make([]Education, 0, len(p.Education))
	found := false
	for _, e := range p.Education {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrEducationNotFound
	}
	p.Education = kept
	return nil
}

// ParseSkills splits a comma-delimited skills string into an ordered
// list, trimming whitespace around each element.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, s := range parts {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

type Repository interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	List(ctx context.Context) ([]*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, ownerID uuid.UUID) error
}
