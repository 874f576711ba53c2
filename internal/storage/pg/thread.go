package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/threadhub-dev/threadhub/internal/domain"
	internal_errors "github.com/threadhub-dev/threadhub/internal/errors"
	"github.com/threadhub-dev/threadhub/internal/query"
)

// sortColumns maps allow-listed sort fields to column names. Only values
// from this map ever reach the ORDER BY clause.
var sortColumns = map[string]string{
	query.SortById:        "id",
	query.SortByTitle:     "title",
	query.SortByCreatedAt: "created_at",
}

const threadColumns = "id, title, content, user_id, category_id, created_at, updated_at"

func scanThread(row interface{ Scan(...any) error }) (domain.Thread, error) {
	var t domain.Thread
	err := row.Scan(&t.Id, &t.Title, &t.Content, &t.UserId, &t.CategoryId, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// ListThreads executes one composed query built from the validated specs:
// each present filter becomes a positional predicate, the sort field is
// resolved through the allow-list map, and pagination becomes LIMIT/OFFSET.
func (s *Storage) ListThreads(q query.ListQuery) ([]domain.Thread, int, error) {
	conds := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if q.Filter.UserId != nil {
		args = append(args, *q.Filter.UserId)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if q.Filter.CategoryId != nil {
		args = append(args, *q.Filter.CategoryId)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM threads"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count threads: %w", err)
	}

	direction := "ASC"
	if q.Sort.Desc {
		direction = "DESC"
	}
	args = append(args, q.Pagination.PerPage, q.Pagination.Offset())
	// id is the tie-breaker so pagination is stable under equal sort keys
	rows, err := s.db.Query(fmt.Sprintf(
		"SELECT %s FROM threads%s ORDER BY %s %s, id ASC LIMIT $%d OFFSET $%d",
		threadColumns, where, sortColumns[q.Sort.Field], direction, len(args)-1, len(args),
	), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list threads: %w", err)
	}
	defer rows.Close()

	var threads []domain.Thread
	for rows.Next() {
		t, err := scanThread(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}
	return threads, total, nil
}

func (s *Storage) CreateThread(data domain.ThreadCreationData) (domain.Thread, error) {
	// Verify the category exists so the caller gets a clear failure
	// instead of a raw constraint violation.
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)", data.CategoryId).Scan(&exists)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to validate category: %w", err)
	}
	if !exists {
		return domain.Thread{}, internal_errors.New(internal_errors.Validation, "Category not found")
	}

	thread, err := scanThread(s.db.QueryRow(fmt.Sprintf(`
        INSERT INTO threads (title, content, user_id, category_id)
        VALUES ($1, $2, $3, $4)
        RETURNING %s
    `, threadColumns), data.Title, data.Content, data.Author, data.CategoryId))
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return thread, nil
}

func (s *Storage) GetThread(id domain.ThreadId) (domain.Thread, error) {
	thread, err := scanThread(s.db.QueryRow(
		fmt.Sprintf("SELECT %s FROM threads WHERE id = $1", threadColumns), id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.New(internal_errors.NotFound, "Thread not found")
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return thread, nil
}

// UpdateThread applies only the fields present in data; owner and creation
// time are never touched.
func (s *Storage) UpdateThread(id domain.ThreadId, data domain.ThreadUpdateData) (domain.Thread, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{}
	if data.Title != nil {
		args = append(args, *data.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if data.Content != nil {
		args = append(args, *data.Content)
		sets = append(sets, fmt.Sprintf("content = $%d", len(args)))
	}
	if data.CategoryId != nil {
		var exists bool
		err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)", *data.CategoryId).Scan(&exists)
		if err != nil {
			return domain.Thread{}, fmt.Errorf("failed to validate category: %w", err)
		}
		if !exists {
			return domain.Thread{}, internal_errors.New(internal_errors.Validation, "Category not found")
		}
		args = append(args, *data.CategoryId)
		sets = append(sets, fmt.Sprintf("category_id = $%d", len(args)))
	}

	args = append(args, id)
	thread, err := scanThread(s.db.QueryRow(fmt.Sprintf(
		"UPDATE threads SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), threadColumns,
	), args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.New(internal_errors.NotFound, "Thread not found")
		}
		return domain.Thread{}, fmt.Errorf("failed to update thread: %w", err)
	}
	return thread, nil
}

func (s *Storage) DeleteThread(id domain.ThreadId) error {
	result, err := s.db.Exec("DELETE FROM threads WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete thread: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.New(internal_errors.NotFound, "Thread not found")
	}
	return nil
}
