package http

import (
	"bytes"
	"time"

	profileUC "github.com/devconnect/api/internal/application/usecase/profile"
	"github.com/google/uuid"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// upsertProfileRequest mirrors the flat body the old API accepted: optional
// strings everywhere, skills as one comma separated string. Optional fields
// bind as pointers so an absent field can be told apart from an empty one
// and keeps its stored value on update.
type upsertProfileRequest struct {
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Status         string  `json:"status" binding:"required"`
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"githubusername"`
	Skills         string  `json:"skills" binding:"required"`
	Youtube        string  `json:"youtube"`
	Twitter        string  `json:"twitter"`
	Facebook       string  `json:"facebook"`
	Linkedin       string  `json:"linkedin"`
	Instagram      string  `json:"instagram"`
}

func (r *upsertProfileRequest) toInput(userID uuid.UUID) profileUC.UpsertProfileInput {
	return profileUC.UpsertProfileInput{
		UserID:         userID,
		Company:        r.Company,
		Website:        r.Website,
		Location:       r.Location,
		Status:         r.Status,
		Bio:            r.Bio,
		GithubUsername: r.GithubUsername,
		Skills:         r.Skills,
		Youtube:        r.Youtube,
		Twitter:        r.Twitter,
		Facebook:       r.Facebook,
		Linkedin:       r.Linkedin,
		Instagram:      r.Instagram,
	}
}

// flexDate accepts the two shapes clients historically sent for history
// entries: full RFC3339 timestamps and bare YYYY-MM-DD dates.
type flexDate struct {
	time.Time
}

func (d *flexDate) UnmarshalJSON(data []byte) error {
	raw := string(bytes.Trim(data, `"`))
	if raw == "" || raw == "null" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d *flexDate) timePtr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	return &d.Time
}

type experienceRequest struct {
	Title       string    `json:"title" binding:"required"`
	Company     string    `json:"company" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	From        flexDate  `json:"from" binding:"required"`
	To          *flexDate `json:"to"`
	Current     bool      `json:"current"`
	Description string    `json:"description"`
}

func (r *experienceRequest) toInput(userID uuid.UUID) profileUC.ExperienceInput {
	return profileUC.ExperienceInput{
		UserID:      userID,
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		From:        r.From.Time,
		To:          r.To.timePtr(),
		Current:     r.Current,
		Description: r.Description,
	}
}

type educationRequest struct {
	School       string    `json:"school" binding:"required"`
	Degree       string    `json:"degree" binding:"required"`
	FieldOfStudy string    `json:"fieldofstudy" binding:"required"`
	From         flexDate  `json:"from" binding:"required"`
	To           *flexDate `json:"to"`
	Current      bool      `json:"current"`
	Description  string    `json:"description"`
}

func (r *educationRequest) toInput(userID uuid.UUID) profileUC.EducationInput {
	return profileUC.EducationInput{
		UserID:       userID,
		School:       r.School,
		Degree:       r.Degree,
		FieldOfStudy: r.FieldOfStudy,
		From:         r.From.Time,
		To:           r.To.timePtr(),
		Current:      r.Current,
		Description:  r.Description,
	}
}

type createPostRequest struct {
	Text string `json:"text" binding:"required"`
}

type addCommentRequest struct {
	Text string `json:"text" binding:"required"`
}
