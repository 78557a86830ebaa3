package domain

import "context"

// PetBioRequest is the structured questionnaire a foster fills in before
// asking for a generated biography.
type PetBioRequest struct {
	FosterID             int    `json:"fosterId"`
	PetName              string `json:"petName"`
	Transcription        string `json:"transcription"`
	Species              string `json:"species"`
	Breed                string `json:"breed"`
	Vaccinated           bool   `json:"vaccinated"`
	LeashTrained         bool   `json:"leashTrained"`
	HouseTrained         bool   `json:"houseTrained"`
	AvailableForAdoption bool   `json:"availableForAdoption"`
	SpayedNeutered       string `json:"spayedNeutered"`
	OtherNotes           string `json:"otherNotes"`
	PreviewOnly          bool   `json:"previewOnly"`
}

type BiographyResult struct {
	Biography    string `json:"biography"`
	FromDatabase bool   `json:"from_database"`
}

// BiographyRepo is the text-generation vendor (OpenAI chat completion).
type BiographyRepo interface {
	FromTranscript(ctx context.Context, transcript string) (string, error)
	FromQuestionnaire(ctx context.Context, req *PetBioRequest, transcript string) (string, error)
}

type BiographyUseCase interface {
	GetTranscriptUC(ctx context.Context, callID string) (string, error)
	GenerateBiographyUC(ctx context.Context, callID string) (*BiographyResult, error)
	GeneratePetBioUC(ctx context.Context, req *PetBioRequest) (string, error)
	SaveBiographyUC(ctx context.Context, fosterID int, biography string) error
}
