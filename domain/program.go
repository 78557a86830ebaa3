package domain

import (
	"context"
	"errors"
)

// ErrProgramRunning is returned when a batch pass is requested while a
// previous one has not finished.
var ErrProgramRunning = errors.New("foster program is already running")

// ProgramResult is the outcome of one batch pass over the registry.
// Processed counts fosters actually advanced (call placed or biography
// generated), not fosters merely visited.
type ProgramResult struct {
	Processed int      `json:"processed"`
	Total     int      `json:"total"`
	Logs      []string `json:"logs"`
}

type ProgramUseCase interface {
	RunProgramUC(ctx context.Context) (*ProgramResult, error)
}
