package domain

import (
	"context"
	"errors"
)

// ErrNoTranscript is returned when a call exists but the vendor has no
// transcript for it yet. Callers treat this as an interim state, not a failure.
var ErrNoTranscript = errors.New("no transcript available for this call")

// VoiceCallRepo is the outbound-call vendor (Retell).
type VoiceCallRepo interface {
	// PlaceCall dials toNumber (E.164) and returns the vendor call id.
	PlaceCall(ctx context.Context, toNumber string) (string, error)
	GetTranscript(ctx context.Context, callID string) (string, error)
}

type CallUseCase interface {
	MakeCallUC(ctx context.Context, phoneNumber string, fosterID *int) (string, error)
}
