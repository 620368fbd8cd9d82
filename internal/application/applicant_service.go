package application

import (
	"context"

	"github.com/jobdeck/jobdeck/internal/domain/entity"
	repo "github.com/jobdeck/jobdeck/internal/domain/repository"
)

// ApplicantService exposes profile reads and updates on top of the
// applicant repository.
type ApplicantService struct {
	Repo repo.ApplicantRepository
}

func NewApplicantService(r repo.ApplicantRepository) *ApplicantService {
	return &ApplicantService{Repo: r}
}

// Profile is an applicant with the password hash stripped, safe to return
// over the wire.
type Profile struct {
	ApplicantID   int    `json:"applicantId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Location      string `json:"location"`
	Email         string `json:"email"`
	JobTitle      string `json:"jobTitle"`
	AboutMe       string `json:"aboutMe"`
	ResumeFileURL string `json:"resumeFileUrl"`
	JobPrefs      string `json:"jobPreferences"`
}

func toProfile(a *entity.Applicant) *Profile {
	return &Profile{
		ApplicantID:   a.ID,
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		Location:      a.Location,
		Email:         a.Email,
		JobTitle:      a.JobTitle,
		AboutMe:       a.AboutMe,
		ResumeFileURL: a.ResumeFileURL,
		JobPrefs:      a.JobPreferences,
	}
}

func (s *ApplicantService) GetProfile(ctx context.Context, id int) (*Profile, error) {
	a, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProfile(a), nil
}

// ProfileUpdate carries the editable profile fields. Empty first or last
// name means keep the stored value; the remaining fields overwrite
// unconditionally, so an empty string clears them.
type ProfileUpdate struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Location      string `json:"location"`
	JobTitle      string `json:"jobTitle"`
	AboutMe       string `json:"aboutMe"`
	ResumeFileURL string `json:"resumeFileUrl"`
	JobPrefs      string `json:"jobPreferences"`
}

func (s *ApplicantService) UpdateProfile(ctx context.Context, id int, upd ProfileUpdate) (*Profile, error) {
	a, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.FirstName != "" {
		a.FirstName = upd.FirstName
	}
	if upd.LastName != "" {
		a.LastName = upd.LastName
	}
	a.Location = upd.Location
	a.JobTitle = upd.JobTitle
	a.AboutMe = upd.AboutMe
	a.ResumeFileURL = upd.ResumeFileURL
	a.JobPreferences = upd.JobPrefs

	if err := s.Repo.UpdateProfile(ctx, a); err != nil {
		return nil, err
	}
	return toProfile(a), nil
}

// List returns every applicant, password hashes stripped.
func (s *ApplicantService) List(ctx context.Context) ([]*Profile, error) {
	all, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Profile, 0, len(all))
	for i := range all {
		out = append(out, toProfile(&all[i]))
	}
	return out, nil
}
