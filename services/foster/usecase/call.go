package usecase

import (
	"context"
	"strings"
	"time"

	"foster/config"
	"foster/domain"
)

type callUC struct {
	fosterRepo domain.FosterRepo
	voiceRepo  domain.VoiceCallRepo
	metrics    *config.Metrics
	TimeOut    time.Duration
}

func NewCallUseCase(fosterRepo domain.FosterRepo, voiceRepo domain.VoiceCallRepo, metrics *config.Metrics, timeOut time.Duration) domain.CallUseCase {
	return &callUC{
		fosterRepo: fosterRepo,
		voiceRepo:  voiceRepo,
		metrics:    metrics,
		TimeOut:    timeOut,
	}
}

// MakeCallUC dials the foster's phone and, when fosterID is given, records
// the vendor call id on their row.
func (cUC *callUC) MakeCallUC(ctx context.Context, phoneNumber string, fosterID *int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	callID, err := cUC.voiceRepo.PlaceCall(ctx, "+1"+stripPhoneNumber(phoneNumber))
	if err != nil {
		return "", err
	}
	cUC.metrics.CallsPlaced.Inc()

	if fosterID != nil {
		if err := cUC.fosterRepo.SetCallID(ctx, *fosterID, callID); err != nil {
			return "", err
		}
	}

	return callID, nil
}

// stripPhoneNumber drops everything but digits, matching how numbers are
// normalized before dialing.
func stripPhoneNumber(phoneNumber string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phoneNumber)
}
