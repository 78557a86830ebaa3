package usecase

import (
	"context"
	"time"

	"foster/domain"
)

type fosterUC struct {
	fosterRepo domain.FosterRepo
	TimeOut    time.Duration
}

func NewFosterUseCase(repo domain.FosterRepo, timeOut time.Duration) domain.FosterUseCase {
	return &fosterUC{
		fosterRepo: repo,
		TimeOut:    timeOut,
	}
}

func (fUC *fosterUC) GetAllFostersUC(ctx context.Context) (*[]domain.Foster, error) {
	ctx, cancel := context.WithTimeout(ctx, fUC.TimeOut)
	defer cancel()

	fosters, err := fUC.fosterRepo.GetAllFosters(ctx)
	if err != nil {
		return nil, err
	}
	return fosters, nil
}

func (fUC *fosterUC) GetFosterByIDUC(ctx context.Context, id int) (*domain.Foster, error) {
	ctx, cancel := context.WithTimeout(ctx, fUC.TimeOut)
	defer cancel()

	foster, err := fUC.fosterRepo.GetFosterByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return foster, nil
}

func (fUC *fosterUC) CreateFosterUC(ctx context.Context, foster *domain.Foster) error {
	ctx, cancel := context.WithTimeout(ctx, fUC.TimeOut)
	defer cancel()

	err := fUC.fosterRepo.CreateFoster(ctx, foster)
	if err != nil {
		return err
	}
	return nil
}

func (fUC *fosterUC) DeleteFosterUC(ctx context.Context, id int) (*domain.Foster, error) {
	ctx, cancel := context.WithTimeout(ctx, fUC.TimeOut)
	defer cancel()

	deleted, err := fUC.fosterRepo.DeleteFoster(ctx, id)
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
