package usecase

import (
	"context"

	"foster/domain"
)

// Function-field mocks so each test overrides only what it needs.

type mockFosterRepo struct {
	getAllFn               func(ctx context.Context) (*[]domain.Foster, error)
	getByIDFn              func(ctx context.Context, id int) (*domain.Foster, error)
	getByCallIDFn          func(ctx context.Context, callID string) (*domain.Foster, error)
	createFn               func(ctx context.Context, foster *domain.Foster) error
	deleteFn               func(ctx context.Context, id int) (*domain.Foster, error)
	setCallIDFn            func(ctx context.Context, id int, callID string) error
	saveBiographyFn        func(ctx context.Context, id int, biography string) error
	completeByIDFn         func(ctx context.Context, id int, biography string, photographyNeeded bool) error
	completeByCallIDFn     func(ctx context.Context, callID string, biography string, photographyNeeded bool) error
	listPhotographyFn      func(ctx context.Context) (*[]domain.Foster, error)
	clearPhotographyFn     func(ctx context.Context, callID string) error
	markPhotographyFn      func(ctx context.Context, callID string) error
}

func (m *mockFosterRepo) GetAllFosters(ctx context.Context) (*[]domain.Foster, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return &[]domain.Foster{}, nil
}

func (m *mockFosterRepo) GetFosterByID(ctx context.Context, id int) (*domain.Foster, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, domain.ErrFosterNotFound
}

func (m *mockFosterRepo) GetFosterByCallID(ctx context.Context, callID string) (*domain.Foster, error) {
	if m.getByCallIDFn != nil {
		return m.getByCallIDFn(ctx, callID)
	}
	return nil, domain.ErrFosterNotFound
}

func (m *mockFosterRepo) CreateFoster(ctx context.Context, foster *domain.Foster) error {
	if m.createFn != nil {
		return m.createFn(ctx, foster)
	}
	return nil
}

func (m *mockFosterRepo) DeleteFoster(ctx context.Context, id int) (*domain.Foster, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil, domain.ErrFosterNotFound
}

func (m *mockFosterRepo) SetCallID(ctx context.Context, id int, callID string) error {
	if m.setCallIDFn != nil {
		return m.setCallIDFn(ctx, id, callID)
	}
	return nil
}

func (m *mockFosterRepo) SaveBiography(ctx context.Context, id int, biography string) error {
	if m.saveBiographyFn != nil {
		return m.saveBiographyFn(ctx, id, biography)
	}
	return nil
}

func (m *mockFosterRepo) CompleteCallByID(ctx context.Context, id int, biography string, photographyNeeded bool) error {
	if m.completeByIDFn != nil {
		return m.completeByIDFn(ctx, id, biography, photographyNeeded)
	}
	return nil
}

func (m *mockFosterRepo) CompleteCallByCallID(ctx context.Context, callID string, biography string, photographyNeeded bool) error {
	if m.completeByCallIDFn != nil {
		return m.completeByCallIDFn(ctx, callID, biography, photographyNeeded)
	}
	return nil
}

func (m *mockFosterRepo) ListPhotographyNeeded(ctx context.Context) (*[]domain.Foster, error) {
	if m.listPhotographyFn != nil {
		return m.listPhotographyFn(ctx)
	}
	return &[]domain.Foster{}, nil
}

func (m *mockFosterRepo) ClearPhotographyFlag(ctx context.Context, callID string) error {
	if m.clearPhotographyFn != nil {
		return m.clearPhotographyFn(ctx, callID)
	}
	return nil
}

func (m *mockFosterRepo) MarkPhotographyNotified(ctx context.Context, callID string) error {
	if m.markPhotographyFn != nil {
		return m.markPhotographyFn(ctx, callID)
	}
	return nil
}

type mockVoiceRepo struct {
	placeCallFn     func(ctx context.Context, toNumber string) (string, error)
	getTranscriptFn func(ctx context.Context, callID string) (string, error)
}

func (m *mockVoiceRepo) PlaceCall(ctx context.Context, toNumber string) (string, error) {
	if m.placeCallFn != nil {
		return m.placeCallFn(ctx, toNumber)
	}
	return "call_mock", nil
}

func (m *mockVoiceRepo) GetTranscript(ctx context.Context, callID string) (string, error) {
	if m.getTranscriptFn != nil {
		return m.getTranscriptFn(ctx, callID)
	}
	return "", domain.ErrNoTranscript
}

type mockBioRepo struct {
	fromTranscriptFn    func(ctx context.Context, transcript string) (string, error)
	fromQuestionnaireFn func(ctx context.Context, req *domain.PetBioRequest, transcript string) (string, error)
}

func (m *mockBioRepo) FromTranscript(ctx context.Context, transcript string) (string, error) {
	if m.fromTranscriptFn != nil {
		return m.fromTranscriptFn(ctx, transcript)
	}
	return "generated biography", nil
}

func (m *mockBioRepo) FromQuestionnaire(ctx context.Context, req *domain.PetBioRequest, transcript string) (string, error) {
	if m.fromQuestionnaireFn != nil {
		return m.fromQuestionnaireFn(ctx, req, transcript)
	}
	return "generated biography", nil
}

type mockMailRepo struct {
	sendPhotoRequestFn      func(ctx context.Context, recipientEmail, fosterName, petName string) error
	sendPhotographyNoticeFn func(ctx context.Context, foster *domain.Foster) error
	sendTestEmailFn         func(ctx context.Context) error
}

func (m *mockMailRepo) SendPhotoRequest(ctx context.Context, recipientEmail, fosterName, petName string) error {
	if m.sendPhotoRequestFn != nil {
		return m.sendPhotoRequestFn(ctx, recipientEmail, fosterName, petName)
	}
	return nil
}

func (m *mockMailRepo) SendPhotographyNotice(ctx context.Context, foster *domain.Foster) error {
	if m.sendPhotographyNoticeFn != nil {
		return m.sendPhotographyNoticeFn(ctx, foster)
	}
	return nil
}

func (m *mockMailRepo) SendTestEmail(ctx context.Context) error {
	if m.sendTestEmailFn != nil {
		return m.sendTestEmailFn(ctx)
	}
	return nil
}
