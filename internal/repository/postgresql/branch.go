package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sahelretail/hr-backend-go/internal/domain/branch"
	"github.com/sahelretail/hr-backend-go/internal/pkg/database"
)

type branchRepository struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) List(ctx context.Context) ([]branch.Branch, error) {
	query := `
		SELECT id, name, address, created_at, updated_at
		FROM branches
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var branches []branch.Branch
	for rows.Next() {
		var b branch.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	return branches, nil
}

func (r *branchRepository) GetByID(ctx context.Context, id int64) (branch.Branch, error) {
	query := `
		SELECT id, name, address, created_at, updated_at
		FROM branches
		WHERE id = $1
	`

	var b branch.Branch
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.Address, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch: %w", err)
	}

	return b, nil
}
