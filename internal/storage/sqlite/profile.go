package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sandevgo/bodai/internal/core"
)

var _ core.ProfileRepository = (*ProfileRepo)(nil)

type ProfileRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db, now: time.Now}
}

func (r *ProfileRepo) AddFact(ctx context.Context, category core.Category, info string) (core.ProfileFact, error) {
	if !category.Valid() {
		return core.ProfileFact{}, fmt.Errorf("%q: %w", category, core.ErrInvalidCategory)
	}

	created := r.now().Unix()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO user_profile (category, info, timestamp) VALUES (?, ?, ?)`,
		string(category), info, created,
	)
	if err != nil {
		return core.ProfileFact{}, fmt.Errorf("failed to insert profile fact: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.ProfileFact{}, err
	}

	return core.ProfileFact{ID: id, Category: category, Info: info, Timestamp: created}, nil
}

func (r *ProfileRepo) ListFacts(ctx context.Context) ([]core.ProfileFact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, category, info, timestamp FROM user_profile ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}
	defer rows.Close()

	var facts []core.ProfileFact
	for rows.Next() {
		var f core.ProfileFact
		var category sql.NullString
		if err := rows.Scan(&f.ID, &category, &f.Info, &f.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan profile fact: %w", err)
		}
		f.Category = core.Category(category.String)
		facts = append(facts, f)
	}

	return facts, rows.Err()
}

func (r *ProfileRepo) UpdateFact(ctx context.Context, id int64, info string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE user_profile SET info = ? WHERE id = ?`, info, id)
	if err != nil {
		return fmt.Errorf("failed to update profile fact: %w", err)
	}
	return affectedOne(res, id)
}

func (r *ProfileRepo) DeleteFact(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM user_profile WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile fact: %w", err)
	}
	return affectedOne(res, id)
}

func (r *ProfileRepo) ClearFacts(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM user_profile`); err != nil {
		return fmt.Errorf("failed to clear profile: %w", err)
	}
	return nil
}
