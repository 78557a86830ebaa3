package domain

import (
	"context"
	"errors"
)

// ValidContactTimes are the only accepted preferred_contact_time labels.
var ValidContactTimes = []string{"7AM-10AM", "10AM-12PM", "12PM-2PM", "2PM-5PM", "5PM-8PM"}

var ErrFosterNotFound = errors.New("foster not found")

type Foster struct {
	ID                   int     `json:"id"`
	Name                 string  `json:"name" valid:"required~Name is required"`
	Email                string  `json:"email" valid:"required~Email is required,email~Invalid email format"`
	PhoneNumber          string  `json:"phone_number" valid:"required~Phone number is required"`
	PetName              string  `json:"pet_name" valid:"required~Pet name is required"`
	PreferredContactTime string  `json:"preferred_contact_time" valid:"required~Preferred contact time is required,in(7AM-10AM|10AM-12PM|12PM-2PM|2PM-5PM|5PM-8PM)~Invalid preferred contact time"`
	CallID               *string `json:"call_id"`
	CallCompleted        bool    `json:"call_completed"`
	Transcription        *string `json:"transcription"`
	PhotographyNeeded    bool    `json:"photographyneeded"`
	EmailSent            bool    `json:"email_sent"`
}

type FosterRepo interface {
	GetAllFosters(ctx context.Context) (*[]Foster, error)
	GetFosterByID(ctx context.Context, id int) (*Foster, error)
	GetFosterByCallID(ctx context.Context, callID string) (*Foster, error)
	CreateFoster(ctx context.Context, foster *Foster) error
	DeleteFoster(ctx context.Context, id int) (*Foster, error)
	SetCallID(ctx context.Context, id int, callID string) error
	SaveBiography(ctx context.Context, id int, biography string) error
	CompleteCallByID(ctx context.Context, id int, biography string, photographyNeeded bool) error
	CompleteCallByCallID(ctx context.Context, callID string, biography string, photographyNeeded bool) error
	ListPhotographyNeeded(ctx context.Context) (*[]Foster, error)
	ClearPhotographyFlag(ctx context.Context, callID string) error
	MarkPhotographyNotified(ctx context.Context, callID string) error
}

type FosterUseCase interface {
	GetAllFostersUC(ctx context.Context) (*[]Foster, error)
	GetFosterByIDUC(ctx context.Context, id int) (*Foster, error)
	CreateFosterUC(ctx context.Context, foster *Foster) error
	DeleteFosterUC(ctx context.Context, id int) (*Foster, error)
}
