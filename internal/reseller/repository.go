package reseller

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrResellerNotFound = errors.New("reseller not found")

type Repository interface {
	GetResellerByID(ctx context.Context, id int) (*Reseller, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetResellerByID(ctx context.Context, id int) (*Reseller, error) {
	query := `
		SELECT reseller_id, name, created_at
		FROM resellers
		WHERE reseller_id = $1
	`

	var res Reseller
	err := r.db.GetContext(ctx, &res, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrResellerNotFound
		}
		return nil, err
	}

	return &res, nil
}
