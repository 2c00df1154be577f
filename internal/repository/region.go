package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nzwalks/backend/internal/db"
	"github.com/nzwalks/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type regionRepository struct {
	db *sqlx.DB
}

func newRegionRepository(db *sqlx.DB) *regionRepository {
	return &regionRepository{
		db: db,
	}
}

func (r *regionRepository) GetAll(ctx context.Context) ([]domain.Region, error) {
	const query = `
	SELECT BIN_TO_UUID(id) AS id, code, name, region_image_url FROM region ORDER BY name ASC;
	`
	regions := make([]domain.Region, 0)
	if err := r.db.SelectContext(ctx, &regions, query); err != nil {
		return nil, fmt.Errorf("select all from region failed: %w", err)
	}
	return regions, nil
}

func (r *regionRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Region, error) {
	const query = `
	SELECT BIN_TO_UUID(id) AS id, code, name, region_image_url FROM region WHERE id = uuid_to_bin(?);
	`
	var region domain.Region
	if err := r.db.GetContext(ctx, &region, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegionNotFound
		}
		return nil, fmt.Errorf("select from region by id failed: %w", err)
	}
	return &region, nil
}

func (r *regionRepository) Create(ctx context.Context, region *domain.Region) (*domain.Region, error) {
	const query = `
	INSERT INTO region (id, code, name, region_image_url) VALUES (uuid_to_bin(?), ?, ?, ?);
	`
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("new region id failed: %w", err)
	}

	created := *region
	created.ID = id

	if _, err := r.db.ExecContext(ctx, query, created.ID, created.Code, created.Name, created.RegionImageURL); err != nil {
		if db.IsDuplicateEntry(err) {
			return nil, domain.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("db insert region failed: %w", err)
	}
	return &created, nil
}

func (r *regionRepository) Update(ctx context.Context, id uuid.UUID, region *domain.Region) (*domain.Region, error) {
	const query = `
	UPDATE region SET code = ?, name = ?, region_image_url = ? WHERE id = uuid_to_bin(?);
	`
	var updated *domain.Region
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		existing, err := r.lockOneByID(ctx, tx, id)
		if err != nil {
			return err
		}

		existing.Code = region.Code
		existing.Name = region.Name
		existing.RegionImageURL = region.RegionImageURL

		if _, err := tx.ExecContext(ctx, query, existing.Code, existing.Name, existing.RegionImageURL, id); err != nil {
			return fmt.Errorf("db update region failed: %w", err)
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *regionRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Region, error) {
	const query = `
	DELETE FROM region WHERE id = uuid_to_bin(?);
	`
	var deleted *domain.Region
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		existing, err := r.lockOneByID(ctx, tx, id)
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, query, id)
		if err != nil {
			return fmt.Errorf("db delete region failed: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("db delete region rows affected failed: %w", err)
		}
		if affected == 0 {
			return domain.ErrNoRowsAffected
		}
		deleted = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *regionRepository) lockOneByID(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*domain.Region, error) {
	const query = `
	SELECT BIN_TO_UUID(id) AS id, code, name, region_image_url FROM region WHERE id = uuid_to_bin(?) FOR UPDATE;
	`
	var region domain.Region
	if err := tx.GetContext(ctx, &region, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegionNotFound
		}
		return nil, fmt.Errorf("select region for update failed: %w", err)
	}
	return &region, nil
}

func (r *regionRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx failed: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx failed: %w", err)
	}
	return nil
}
