package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sandevgo/bodai/internal/core"
)

var _ core.MemoryRepository = (*MemoryRepo)(nil)

type MemoryRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewMemoryRepo(db *sql.DB) *MemoryRepo {
	return &MemoryRepo{db: db, now: time.Now}
}

func (r *MemoryRepo) AddMemory(ctx context.Context, text string) (core.Memory, error) {
	created := r.now()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO memory (text, timestamp) VALUES (?, ?)`,
		text, created.Unix(),
	)
	if err != nil {
		return core.Memory{}, fmt.Errorf("failed to insert memory: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Memory{}, err
	}

	return core.Memory{ID: id, Text: text, Timestamp: created.Unix()}, nil
}

func (r *MemoryRepo) ListMemories(ctx context.Context) ([]core.Memory, error) {
	return r.query(ctx, `SELECT id, text, timestamp FROM memory ORDER BY id DESC`)
}

func (r *MemoryRepo) SearchMemories(ctx context.Context) ([]core.Memory, error) {
	return r.query(ctx, `SELECT id, text, timestamp FROM memory`)
}

func (r *MemoryRepo) UpdateMemory(ctx context.Context, id int64, text string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE memory SET text = ? WHERE id = ?`, text, id)
	if err != nil {
		return fmt.Errorf("failed to update memory: %w", err)
	}
	return affectedOne(res, id)
}

func (r *MemoryRepo) DeleteMemory(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM memory WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete memory: %w", err)
	}
	return affectedOne(res, id)
}

func (r *MemoryRepo) query(ctx context.Context, query string) ([]core.Memory, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query memories: %w", err)
	}
	defer rows.Close()

	var memories []core.Memory
	for rows.Next() {
		var m core.Memory
		if err := rows.Scan(&m.ID, &m.Text, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan memory: %w", err)
		}
		memories = append(memories, m)
	}

	return memories, rows.Err()
}
