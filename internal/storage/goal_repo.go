package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

type GoalRepo struct {
	db *sql.DB
}

func NewGoalRepo(db *sql.DB) *GoalRepo {
	return &GoalRepo{db: db}
}

type GoalInsert struct {
	ParentID  *int64
	Title     string
	Boss      bool
	BaseXP    int
	Deadline  *time.Time
	BlockedBy []int64
}

func (r *GoalRepo) Insert(ctx context.Context, in GoalInsert) (int64, error) {
	var blockedJSON *string
	if len(in.BlockedBy) > 0 {
		data, err := json.Marshal(in.BlockedBy)
		if err != nil {
			return 0, fmt.Errorf("marshal blocked_by: %w", err)
		}
		s := string(data)
		blockedJSON = &s
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO goals (parent_id, title, status, boss, base_xp, deadline, blocked_by)
		VALUES (?, ?, 'open', ?, ?, ?, ?)
	`, in.ParentID, in.Title, boolToInt(in.Boss), in.BaseXP, in.Deadline, blockedJSON)
	if err != nil {
		return 0, fmt.Errorf("goal insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("goal last insert id: %w", err)
	}
	return id, nil
}

const goalColumns = `id, parent_id, title, status, boss, base_xp, deadline, blocked_by, created_at, completed_at`

func (r *GoalRepo) Get(ctx context.Context, id int64) (*Goal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = ?`, id)
	return scanGoal(row)
}

func (r *GoalRepo) ListAll(ctx context.Context) ([]Goal, error) {
	return r.list(ctx, `SELECT `+goalColumns+` FROM goals ORDER BY id ASC`)
}

func (r *GoalRepo) ListChildren(ctx context.Context, parentID int64) ([]Goal, error) {
	return r.list(ctx, `SELECT `+goalColumns+` FROM goals WHERE parent_id = ? ORDER BY id ASC`, parentID)
}

func (r *GoalRepo) list(ctx context.Context, query string, args ...any) ([]Goal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("goal list: %w", err)
	}
	defer rows.Close()

	var out []Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("goal rows: %w", err)
	}
	return out, nil
}

func (r *GoalRepo) MarkDone(ctx context.Context, id int64, completedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE goals SET status = 'done', completed_at = ? WHERE id = ?`, completedAt, id)
	if err != nil {
		return fmt.Errorf("goal mark done: %w", err)
	}
	return nil
}

// Reopen reverts a goal to open and clears its completion timestamp.
func (r *GoalRepo) Reopen(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE goals SET status = 'open', completed_at = NULL WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("goal reopen: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGoal(row scanner) (*Goal, error) {
	var (
		id          int64
		parent      sql.NullInt64
		title       string
		status      string
		boss        int
		baseXP      int
		deadline    sql.NullTime
		blockedRaw  sql.NullString
		createdAt   time.Time
		completedAt sql.NullTime
	)

	if err := row.Scan(&id, &parent, &title, &status, &boss, &baseXP, &deadline, &blockedRaw, &createdAt, &completedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("goal scan: %w", err)
	}

	g := &Goal{
		ID:        id,
		Title:     title,
		Status:    status,
		Boss:      boss != 0,
		BaseXP:    baseXP,
		CreatedAt: createdAt,
	}
	if parent.Valid {
		v := parent.Int64
		g.ParentID = &v
	}
	if deadline.Valid {
		v := deadline.Time
		g.Deadline = &v
	}
	if completedAt.Valid {
		v := completedAt.Time
		g.CompletedAt = &v
	}
	if blockedRaw.Valid && blockedRaw.String != "" {
		if err := json.Unmarshal([]byte(blockedRaw.String), &g.BlockedBy); err != nil {
			return nil, fmt.Errorf("unmarshal blocked_by: %w", err)
		}
	}
	return g, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
