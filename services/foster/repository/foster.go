package repository

import (
	"context"
	"errors"
	"fmt"

	"foster/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const fosterColumns = "id, name, email, phone_number, pet_name, preferred_contact_time, call_id, call_completed, transcription, photographyneeded, email_sent"

type fosterRepository struct {
	db *pgxpool.Pool
}

func NewFosterRepository(database *pgxpool.Pool) domain.FosterRepo {
	return &fosterRepository{
		db: database,
	}
}

func scanFoster(row pgx.Row) (*domain.Foster, error) {
	var f domain.Foster
	err := row.Scan(&f.ID, &f.Name, &f.Email, &f.PhoneNumber, &f.PetName, &f.PreferredContactTime,
		&f.CallID, &f.CallCompleted, &f.Transcription, &f.PhotographyNeeded, &f.EmailSent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFosterNotFound
		}
		return nil, fmt.Errorf("could not scan foster: %v", err)
	}
	return &f, nil
}

func (fr *fosterRepository) GetAllFosters(ctx context.Context) (*[]domain.Foster, error) {
	query := fmt.Sprintf(`SELECT %s FROM fosters ORDER BY id ASC;`, fosterColumns)

	rows, err := fr.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not get all fosters: %v", err)
	}
	defer rows.Close()

	var fosters []domain.Foster
	for rows.Next() {
		f, err := scanFoster(rows)
		if err != nil {
			return nil, err
		}
		fosters = append(fosters, *f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &fosters, nil
}

func (fr *fosterRepository) GetFosterByID(ctx context.Context, id int) (*domain.Foster, error) {
	query := fmt.Sprintf(`SELECT %s FROM fosters WHERE id = $1;`, fosterColumns)
	return scanFoster(fr.db.QueryRow(ctx, query, id))
}

func (fr *fosterRepository) GetFosterByCallID(ctx context.Context, callID string) (*domain.Foster, error) {
	query := fmt.Sprintf(`SELECT %s FROM fosters WHERE call_id = $1;`, fosterColumns)
	return scanFoster(fr.db.QueryRow(ctx, query, callID))
}

func (fr *fosterRepository) CreateFoster(ctx context.Context, foster *domain.Foster) error {
	query := fmt.Sprintf(`
		INSERT INTO fosters (name, email, phone_number, pet_name, preferred_contact_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s;`, fosterColumns)

	created, err := scanFoster(fr.db.QueryRow(ctx, query, foster.Name, foster.Email, foster.PhoneNumber, foster.PetName, foster.PreferredContactTime))
	if err != nil {
		return fmt.Errorf("could not insert foster: %v", err)
	}

	*foster = *created
	return nil
}

func (fr *fosterRepository) DeleteFoster(ctx context.Context, id int) (*domain.Foster, error) {
	query := fmt.Sprintf(`DELETE FROM fosters WHERE id = $1 RETURNING %s;`, fosterColumns)
	return scanFoster(fr.db.QueryRow(ctx, query, id))
}

func (fr *fosterRepository) SetCallID(ctx context.Context, id int, callID string) error {
	query := `UPDATE fosters SET call_id = $1 WHERE id = $2;`

	tag, err := fr.db.Exec(ctx, query, callID, id)
	if err != nil {
		return fmt.Errorf("could not update foster call_id: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFosterNotFound
	}
	return nil
}

func (fr *fosterRepository) SaveBiography(ctx context.Context, id int, biography string) error {
	query := `UPDATE fosters SET transcription = $1 WHERE id = $2;`

	tag, err := fr.db.Exec(ctx, query, biography, id)
	if err != nil {
		return fmt.Errorf("could not save biography: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFosterNotFound
	}
	return nil
}

func (fr *fosterRepository) CompleteCallByID(ctx context.Context, id int, biography string, photographyNeeded bool) error {
	query := `UPDATE fosters SET transcription = $1, photographyneeded = $2, call_completed = TRUE WHERE id = $3;`

	tag, err := fr.db.Exec(ctx, query, biography, photographyNeeded, id)
	if err != nil {
		return fmt.Errorf("could not complete call: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFosterNotFound
	}
	return nil
}

func (fr *fosterRepository) CompleteCallByCallID(ctx context.Context, callID string, biography string, photographyNeeded bool) error {
	query := `UPDATE fosters SET transcription = $1, photographyneeded = $2, call_completed = TRUE WHERE call_id = $3;`

	tag, err := fr.db.Exec(ctx, query, biography, photographyNeeded, callID)
	if err != nil {
		return fmt.Errorf("could not complete call: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFosterNotFound
	}
	return nil
}

func (fr *fosterRepository) ListPhotographyNeeded(ctx context.Context) (*[]domain.Foster, error) {
	query := fmt.Sprintf(`SELECT %s FROM fosters WHERE photographyneeded = TRUE ORDER BY id ASC;`, fosterColumns)

	rows, err := fr.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not list fosters needing photography: %v", err)
	}
	defer rows.Close()

	var fosters []domain.Foster
	for rows.Next() {
		f, err := scanFoster(rows)
		if err != nil {
			return nil, err
		}
		fosters = append(fosters, *f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &fosters, nil
}

func (fr *fosterRepository) ClearPhotographyFlag(ctx context.Context, callID string) error {
	query := `UPDATE fosters SET photographyneeded = FALSE WHERE call_id = $1;`

	if _, err := fr.db.Exec(ctx, query, callID); err != nil {
		return fmt.Errorf("could not clear photography flag: %v", err)
	}
	return nil
}

func (fr *fosterRepository) MarkPhotographyNotified(ctx context.Context, callID string) error {
	query := `UPDATE fosters SET photographyneeded = FALSE, email_sent = TRUE WHERE call_id = $1;`

	if _, err := fr.db.Exec(ctx, query, callID); err != nil {
		return fmt.Errorf("could not mark photography notified: %v", err)
	}
	return nil
}
