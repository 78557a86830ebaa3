package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"foster/config"
	"foster/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProgramUC(fosterRepo domain.FosterRepo, voiceRepo domain.VoiceCallRepo, bioRepo domain.BiographyRepo, hour int) *programUC {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	p := NewProgramUseCase(fosterRepo, voiceRepo, bioRepo, config.NewMetrics(), log, time.Minute).(*programUC)
	p.now = func() time.Time {
		return time.Date(2025, time.March, 10, hour, 30, 0, 0, time.UTC)
	}
	return p
}

func strPtr(s string) *string {
	return &s
}

func TestWithinContactWindow_AllLabelsAllHours(t *testing.T) {
	windows := map[string][2]int{
		"7AM-10AM": {7, 10},
		"10AM-12PM": {10, 12},
		"12PM-2PM": {12, 14},
		"2PM-5PM": {14, 17},
		"5PM-8PM": {17, 20},
	}

	for label, bounds := range windows {
		for hour := 0; hour < 24; hour++ {
			expected := hour >= bounds[0] && hour <= bounds[1]
			got := withinContactWindow(label, hour)
			assert.Equalf(t, expected, got, "window %s, hour %d", label, hour)
		}
	}
}

func TestWithinContactWindow_Malformed(t *testing.T) {
	cases := []string{
		"",
		"7AM",
		"7AM 10AM",
		"morning-afternoon",
		"-",
		"AM-PM",
	}

	for _, window := range cases {
		for hour := 0; hour < 24; hour++ {
			assert.Falsef(t, withinContactWindow(window, hour), "window %q, hour %d", window, hour)
		}
	}
}

func TestWithinContactWindow_MidnightAndNoon(t *testing.T) {
	// 12AM normalizes to 0, 12PM stays 12.
	assert.True(t, withinContactWindow("12AM-12PM", 0))
	assert.True(t, withinContactWindow("12AM-12PM", 12))
	assert.False(t, withinContactWindow("12AM-12PM", 13))
}

func TestRunProgram_PlacesCallWithinWindow(t *testing.T) {
	fosters := []domain.Foster{
		{ID: 1, PhoneNumber: "555-123-4567", PreferredContactTime: "7AM-10AM"},
	}

	var dialed string
	var savedCallID string

	fosterRepo := &mockFosterRepo{
		getAllFn: func(ctx context.Context) (*[]domain.Foster, error) {
			return &fosters, nil
		},
		setCallIDFn: func(ctx context.Context, id int, callID string) error {
			require.Equal(t, 1, id)
			savedCallID = callID
			return nil
		},
	}
	voiceRepo := &mockVoiceRepo{
		placeCallFn: func(ctx context.Context, toNumber string) (string, error) {
			dialed = toNumber
			return "call_abc", nil
		},
	}

	p := newTestProgramUC(fosterRepo, voiceRepo, &mockBioRepo{}, 8)

	result, err := p.RunProgramUC(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, "+15551234567", dialed)
	assert.Equal(t, "call_abc", savedCallID)
}

func TestRunProgram_SkipsOutsideWindow(t *testing.T) {
	fosters := []domain.Foster{
		{ID: 1, PhoneNumber: "5551234567", PreferredContactTime: "7AM-10AM"},
	}

	fosterRepo := &mockFosterRepo{
		getAllFn: func(ctx context.Context) (*[]domain.Foster, error) {
			return &fosters, nil
		},
		setCallIDFn: func(ctx context.Context, id int, callID string) error {
			t.Fatal("SetCallID should not be called outside the window")
			return nil
		},
	}
	voiceRepo := &mockVoiceRepo{
		placeCallFn: func(ctx context.Context, toNumber string) (string, error) {
			t.Fatal("PlaceCall should not be called outside the window")
			return "", nil
		},
	}

	p := newTestProgramUC(fosterRepo, voiceRepo, &mockBioRepo{}, 14)

	result, err := p.RunProgramUC(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.Processed)
	assert.True(t, hasLogContaining(result.Logs, "Outside preferred time window"))
}

func TestRunProgram_TranscriptWithPhotographyPhrase(t *testing.T) {
	transcript := "USER: I don't have any photos.\nAGENT: " + photographyPhrase + "\nUSER: Thanks!"

	fosters := []domain.Foster{
		{ID: 3, PhoneNumber: "5551234567", PreferredContactTime: "7AM-10AM", CallID: strPtr("call_xyz")},
	}

	var savedBio string
	var savedPhotoFlag bool

	fosterRepo := &mockFosterRepo{
		getAllFn: func(ctx context.Context) (*[]domain.Foster, error) {
			return &fosters, nil
		},
		completeByIDFn: func(ctx context.Context, id int, biography string, photographyNeeded bool) error {
			require.Equal(t, 3, id)
			savedBio = biography
			savedPhotoFlag = photographyNeeded
			return nil
		},
	}
	voiceRepo := &mockVoiceRepo{
		getTranscriptFn: func(ctx context.Context, callID string) (string, error) {
			require.Equal(t, "call_xyz", callID)
			return transcript, nil
		},
	}
	bioRepo := &mockBioRepo{
		fromTranscriptFn: func(ctx context.Context, transcript string) (string, error) {
			return "A lovely pet biography.", nil
		},
	}

	p := newTestProgramUC(fosterRepo, voiceRepo, bioRepo, 8)

	result, err := p.RunProgramUC(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, "A lovely pet biography.", savedBio)
	assert.True(t, savedPhotoFlag)
}

func TestRunProgram_NoTranscriptYetIsNotAnError(t *testing.T) {
	fosters := []domain.Foster{
		{ID: 1, CallID: strPtr("call_pending")},
	}

	fosterRepo := &mockFosterRepo{
		getAllFn: func(ctx context.Context) (*[]domain.Foster, error) {
			return &fosters, nil
		},
	}
	voiceRepo := &mockVoiceRepo{
		getTranscriptFn: func(ctx context.Context, callID string) (string, error) {
			return "", domain.ErrNoTranscript
		},
	}

	p := newTestProgramUC(fosterRepo, voiceRepo, &mockBioRepo{}, 8)

	result, err := p.RunProgramUC(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.Processed)
	assert.True(t, hasLogContaining(result.Logs, "No transcript available yet"))
}

func TestRunProgram_PartialVendorFailure(t *testing.T) {
	fosters := []domain.Foster{
		{ID: 1, CallID: strPtr("call_1")},
		{ID: 2, CallID: strPtr("call_2")},
		{ID: 3, CallID: strPtr("call_3")},
	}

	fosterRepo := &mockFosterRepo{
		getAllFn: func(ctx context.Context) (*[]domain.Foster, error) {
			return &fosters, nil
		},
	}
	voiceRepo := &mockVoiceRepo{
		getTranscriptFn: func(ctx context.Context, callID string) (string, error) {
			if callID == "call_2" {
				return "", errors.New("vendor exploded")
			}
			return fmt.Sprintf("USER: transcript for %s", callID), nil
		},
	}

	p := newTestProgramUC(fosterRepo, voiceRepo, &mockBioRepo{}, 8)

	result, err := p.RunProgramUC(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 3, result.Total)
	assert.True(t, hasLogContaining(result.Logs, "vendor exploded"))
}

func TestRunProgram_RegistryReadFailureIsFatal(t *testing.T) {
	fosterRepo := &mockFosterRepo{
		getAllFn: func(ctx context.Context) (*[]domain.Foster, error) {
			return nil, errors.New("connection refused")
		},
	}

	p := newTestProgramUC(fosterRepo, &mockVoiceRepo{}, &mockBioRepo{}, 8)

	result, err := p.RunProgramUC(context.Background())
	require.Error(t, err)
	require.NotNil(t, result)

	assert.True(t, hasLogContaining(result.Logs, "Failed to load fosters"))
}

func TestRunProgram_RejectsOverlappingRuns(t *testing.T) {
	p := newTestProgramUC(&mockFosterRepo{}, &mockVoiceRepo{}, &mockBioRepo{}, 8)

	p.mu.Lock()
	defer p.mu.Unlock()

	_, err := p.RunProgramUC(context.Background())
	assert.ErrorIs(t, err, domain.ErrProgramRunning)
}

func TestTranscriptRequestsPhotography(t *testing.T) {
	assert.True(t, transcriptRequestsPhotography("AGENT: "+photographyPhrase))
	assert.False(t, transcriptRequestsPhotography("AGENT: We'll send photos."))
	// Case-sensitive exact match.
	assert.False(t, transcriptRequestsPhotography(strings.ToLower(photographyPhrase)))
}

func hasLogContaining(logs []string, substr string) bool {
	for _, line := range logs {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
