package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"foster/config"
	"foster/domain"

	"github.com/sirupsen/logrus"
)

// photographyPhrase is the exact line the call agent speaks when a foster
// says they have no photos. The transcript match is a case-sensitive
// substring check; keep the string byte-for-byte identical to the agent
// script.
const photographyPhrase = "No worries at all! We'll have a member of the photography team reach out to you to coordinate a time for photos."

func transcriptRequestsPhotography(transcript string) bool {
	return strings.Contains(transcript, photographyPhrase)
}

type programUC struct {
	fosterRepo domain.FosterRepo
	voiceRepo  domain.VoiceCallRepo
	bioRepo    domain.BiographyRepo
	metrics    *config.Metrics
	log        *logrus.Logger
	TimeOut    time.Duration

	// mu keeps timer-triggered and on-demand passes from overlapping.
	mu  sync.Mutex
	now func() time.Time
}

func NewProgramUseCase(fosterRepo domain.FosterRepo, voiceRepo domain.VoiceCallRepo, bioRepo domain.BiographyRepo, metrics *config.Metrics, log *logrus.Logger, timeOut time.Duration) domain.ProgramUseCase {
	return &programUC{
		fosterRepo: fosterRepo,
		voiceRepo:  voiceRepo,
		bioRepo:    bioRepo,
		metrics:    metrics,
		log:        log,
		TimeOut:    timeOut,
		now:        time.Now,
	}
}

// RunProgramUC walks every foster record in id order and advances each one:
// records with a call already placed get their transcript turned into a
// biography, records without one get called if their contact window is open.
// Per-record vendor failures are logged and skipped; only a failed registry
// read aborts the pass.
func (p *programUC) RunProgramUC(ctx context.Context) (*domain.ProgramResult, error) {
	if !p.mu.TryLock() {
		return nil, domain.ErrProgramRunning
	}
	defer p.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, p.TimeOut)
	defer cancel()

	p.metrics.ProgramRuns.Inc()

	result := &domain.ProgramResult{}
	logMessage := func(format string, args ...interface{}) {
		msg := fmt.Sprintf(format, args...)
		p.log.Info(msg)
		result.Logs = append(result.Logs, msg)
	}

	logMessage("Starting program execution...")

	fosters, err := p.fosterRepo.GetAllFosters(ctx)
	if err != nil {
		p.metrics.ProgramRunErrors.Inc()
		logMessage("Failed to load fosters: %v", err)
		return result, err
	}

	result.Total = len(*fosters)
	logMessage("Found %d fosters to process", result.Total)

	for i := range *fosters {
		foster := &(*fosters)[i]

		if foster.CallID != nil {
			if p.processTranscript(ctx, foster, logMessage) {
				result.Processed++
			}
		} else {
			if p.placeCall(ctx, foster, logMessage) {
				result.Processed++
			}
		}
	}

	logMessage("Program completed. Successfully processed %d out of %d fosters.", result.Processed, result.Total)

	return result, nil
}

// processTranscript handles a foster whose call was already placed: fetch
// the transcript, derive the photography flag, generate and persist a
// biography. Returns true when the record was advanced.
func (p *programUC) processTranscript(ctx context.Context, foster *domain.Foster, logMessage func(string, ...interface{})) bool {
	callID := *foster.CallID
	logMessage("Found call_id for foster ID: %d, attempting to generate biography", foster.ID)

	transcript, err := p.voiceRepo.GetTranscript(ctx, callID)
	if err != nil {
		if errors.Is(err, domain.ErrNoTranscript) {
			logMessage("No transcript available yet for call_id %s, skipping biography generation", callID)
		} else {
			logMessage("Error processing call_id %s for foster ID %d: %v", callID, foster.ID, err)
		}
		return false
	}
	logMessage("Successfully retrieved transcript for call ID %s", callID)

	photosNeeded := transcriptRequestsPhotography(transcript)
	if photosNeeded {
		logMessage("Photography needed flag set to true for foster ID %d", foster.ID)
	}

	logMessage("Generating biography...")
	bio, err := p.bioRepo.FromTranscript(ctx, transcript)
	if err != nil {
		logMessage("Error generating biography for foster ID %d: %v", foster.ID, err)
		return false
	}
	logMessage("Successfully generated biography for foster ID %d", foster.ID)

	if err := p.fosterRepo.CompleteCallByID(ctx, foster.ID, bio, photosNeeded); err != nil {
		logMessage("Error updating foster ID %d: %v", foster.ID, err)
		return false
	}
	logMessage("Successfully updated foster record with biography and photography needs")

	p.metrics.BiosGenerated.Inc()
	p.metrics.FostersProcessed.Inc()
	return true
}

// placeCall dials a foster who has no call yet, but only inside their
// preferred contact window. Returns true when a call was placed and
// recorded.
func (p *programUC) placeCall(ctx context.Context, foster *domain.Foster, logMessage func(string, ...interface{})) bool {
	logMessage("No call_id found. Checking preferred time for foster ID %d", foster.ID)

	currentHour := p.now().Hour()
	if !withinContactWindow(foster.PreferredContactTime, currentHour) {
		logMessage("Outside preferred time window (Current hour: %d, Preferred: %s), skipping foster ID %d", currentHour, foster.PreferredContactTime, foster.ID)
		return false
	}

	logMessage("Within preferred time window, initiating call...")
	callID, err := p.voiceRepo.PlaceCall(ctx, "+1"+stripPhoneNumber(foster.PhoneNumber))
	if err != nil {
		logMessage("Error initiating call for foster ID %d: %v", foster.ID, err)
		return false
	}
	logMessage("Successfully initiated call with ID: %s", callID)

	if err := p.fosterRepo.SetCallID(ctx, foster.ID, callID); err != nil {
		logMessage("Error updating foster ID %d with call_id: %v", foster.ID, err)
		return false
	}
	logMessage("Successfully updated foster record with new call_id")

	p.metrics.CallsPlaced.Inc()
	p.metrics.FostersProcessed.Inc()
	return true
}

// withinContactWindow reports whether hour falls inside a window label like
// "7AM-10AM". Both ends are inclusive. Malformed labels are treated as a
// closed window, never an error.
func withinContactWindow(window string, hour int) bool {
	if !strings.Contains(window, "-") {
		return false
	}

	parts := strings.SplitN(window, "-", 2)

	start, ok := parseWindowHour(parts[0])
	if !ok {
		return false
	}
	end, ok := parseWindowHour(parts[1])
	if !ok {
		return false
	}

	return hour >= start && hour <= end
}

// parseWindowHour turns one side of a window label ("7AM", "12PM") into a
// 24-hour value: 12AM maps to 0, 12PM stays 12, other PM hours gain 12.
func parseWindowHour(label string) (int, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, label)

	hour, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}

	if strings.Contains(label, "PM") && hour != 12 {
		hour += 12
	}
	if strings.Contains(label, "AM") && hour == 12 {
		hour = 0
	}

	return hour, true
}
