package usecase

import (
	"context"
	"errors"
	"time"

	"foster/config"
	"foster/domain"

	"github.com/sirupsen/logrus"
)

type photographyUC struct {
	fosterRepo domain.FosterRepo
	mailRepo   domain.MailRepo
	metrics    *config.Metrics
	log        *logrus.Logger
	TimeOut    time.Duration
}

func NewPhotographyUseCase(fosterRepo domain.FosterRepo, mailRepo domain.MailRepo, metrics *config.Metrics, log *logrus.Logger, timeOut time.Duration) domain.PhotographyUseCase {
	return &photographyUC{
		fosterRepo: fosterRepo,
		mailRepo:   mailRepo,
		metrics:    metrics,
		log:        log,
		TimeOut:    timeOut,
	}
}

func (pUC *photographyUC) SendPhotoRequestUC(ctx context.Context, recipientEmail, fosterName, petName string) error {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	return pUC.mailRepo.SendPhotoRequest(ctx, recipientEmail, fosterName, petName)
}

// CheckPhotoRequestUC notifies the photography team about one foster if
// their flag is set, then clears the flag. Reports whether an email fired.
func (pUC *photographyUC) CheckPhotoRequestUC(ctx context.Context, callID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	foster, err := pUC.fosterRepo.GetFosterByCallID(ctx, callID)
	if err != nil {
		if errors.Is(err, domain.ErrFosterNotFound) {
			return false, nil
		}
		return false, err
	}

	if !foster.PhotographyNeeded {
		return false, nil
	}

	if err := pUC.mailRepo.SendPhotographyNotice(ctx, foster); err != nil {
		return false, err
	}
	pUC.metrics.PhotoEmailsSent.Inc()

	if err := pUC.fosterRepo.ClearPhotographyFlag(ctx, callID); err != nil {
		return false, err
	}

	return true, nil
}

// SweepPhotographyNeededUC is the periodic pass over every flagged foster.
// A failed email leaves that foster's flag set so the next sweep retries it.
func (pUC *photographyUC) SweepPhotographyNeededUC(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	fosters, err := pUC.fosterRepo.ListPhotographyNeeded(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range *fosters {
		foster := &(*fosters)[i]

		if foster.CallID == nil {
			// The flag is only ever set from a transcript, so a flagged
			// foster without a call id is inconsistent data.
			pUC.log.Warnf("Foster ID %d flagged for photography but has no call_id, skipping", foster.ID)
			continue
		}

		if err := pUC.mailRepo.SendPhotographyNotice(ctx, foster); err != nil {
			pUC.log.Errorf("Failed to send photography email for foster ID %d: %v", foster.ID, err)
			continue
		}
		pUC.log.Infof("Email sent for foster ID %d - %s", foster.ID, foster.Name)
		pUC.metrics.PhotoEmailsSent.Inc()

		if err := pUC.fosterRepo.MarkPhotographyNotified(ctx, *foster.CallID); err != nil {
			pUC.log.Errorf("Failed to mark foster ID %d notified: %v", foster.ID, err)
			continue
		}

		sent++
	}

	return sent, nil
}

func (pUC *photographyUC) SendTestEmailUC(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	return pUC.mailRepo.SendTestEmail(ctx)
}
