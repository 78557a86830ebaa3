package domain

import "context"

type MailRepo interface {
	// SendPhotoRequest asks a foster to schedule a shoot for their pet.
	SendPhotoRequest(ctx context.Context, recipientEmail, fosterName, petName string) error
	// SendPhotographyNotice tells the photography team a foster needs photos.
	SendPhotographyNotice(ctx context.Context, foster *Foster) error
	SendTestEmail(ctx context.Context) error
}

type PhotographyUseCase interface {
	SendPhotoRequestUC(ctx context.Context, recipientEmail, fosterName, petName string) error
	// CheckPhotoRequestUC reports whether a notification was actually sent.
	CheckPhotoRequestUC(ctx context.Context, callID string) (bool, error)
	SweepPhotographyNeededUC(ctx context.Context) (int, error)
	SendTestEmailUC(ctx context.Context) error
}
