package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"foster/config"
	"foster/domain"
)

type biographyUC struct {
	fosterRepo domain.FosterRepo
	voiceRepo  domain.VoiceCallRepo
	bioRepo    domain.BiographyRepo
	metrics    *config.Metrics
	TimeOut    time.Duration
}

func NewBiographyUseCase(fosterRepo domain.FosterRepo, voiceRepo domain.VoiceCallRepo, bioRepo domain.BiographyRepo, metrics *config.Metrics, timeOut time.Duration) domain.BiographyUseCase {
	return &biographyUC{
		fosterRepo: fosterRepo,
		voiceRepo:  voiceRepo,
		bioRepo:    bioRepo,
		metrics:    metrics,
		TimeOut:    timeOut,
	}
}

func (bUC *biographyUC) GetTranscriptUC(ctx context.Context, callID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, bUC.TimeOut)
	defer cancel()

	return bUC.voiceRepo.GetTranscript(ctx, callID)
}

// GenerateBiographyUC returns the stored biography for a call when one
// exists, otherwise fetches the transcript and generates a fresh one,
// persisting it on the matching foster row if there is one.
func (bUC *biographyUC) GenerateBiographyUC(ctx context.Context, callID string) (*domain.BiographyResult, error) {
	ctx, cancel := context.WithTimeout(ctx, bUC.TimeOut)
	defer cancel()

	foster, err := bUC.fosterRepo.GetFosterByCallID(ctx, callID)
	if err != nil && !errors.Is(err, domain.ErrFosterNotFound) {
		return nil, err
	}

	if foster != nil && foster.Transcription != nil && *foster.Transcription != "" {
		return &domain.BiographyResult{Biography: *foster.Transcription, FromDatabase: true}, nil
	}

	transcript, err := bUC.voiceRepo.GetTranscript(ctx, callID)
	if err != nil {
		return nil, err
	}

	photosNeeded := transcriptRequestsPhotography(transcript)

	bio, err := bUC.bioRepo.FromTranscript(ctx, transcript)
	if err != nil {
		return nil, err
	}
	bUC.metrics.BiosGenerated.Inc()

	if foster != nil {
		if err := bUC.fosterRepo.CompleteCallByCallID(ctx, callID, bio, photosNeeded); err != nil {
			return nil, err
		}
	}

	return &domain.BiographyResult{Biography: bio, FromDatabase: false}, nil
}

// GeneratePetBioUC drafts a biography from the questionnaire plus the
// foster's transcript. When PreviewOnly is set the draft is returned without
// touching the registry; persisting is the explicit save endpoint's job.
func (bUC *biographyUC) GeneratePetBioUC(ctx context.Context, req *domain.PetBioRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, bUC.TimeOut)
	defer cancel()

	bio, err := bUC.bioRepo.FromQuestionnaire(ctx, req, filterAgentLines(req.Transcription))
	if err != nil {
		return "", err
	}
	bUC.metrics.BiosGenerated.Inc()

	if req.PreviewOnly {
		return bio, nil
	}

	if err := bUC.fosterRepo.SaveBiography(ctx, req.FosterID, bio); err != nil {
		return "", err
	}

	return bio, nil
}

func (bUC *biographyUC) SaveBiographyUC(ctx context.Context, fosterID int, biography string) error {
	ctx, cancel := context.WithTimeout(ctx, bUC.TimeOut)
	defer cancel()

	return bUC.fosterRepo.SaveBiography(ctx, fosterID, biography)
}

// filterAgentLines drops interviewer lines so the generator only sees what
// the foster said.
func filterAgentLines(transcript string) string {
	lines := strings.Split(transcript, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "AGENT:") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
