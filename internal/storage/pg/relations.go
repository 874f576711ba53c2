package pg

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/threadhub-dev/threadhub/internal/domain"
)

// Typed relation accessors for the relation loader. Each runs one batched
// lookup; callers stitch the results onto their threads.

func (s *Storage) UsersByIds(ids []domain.UserId) (map[domain.UserId]domain.User, error) {
	rows, err := s.db.Query(
		"SELECT id, name, email, created_at FROM users WHERE id = ANY($1)",
		pq.Array(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer rows.Close()

	users := make(map[domain.UserId]domain.User, len(ids))
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.Id, &u.Name, &u.Email, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users[u.Id] = u
	}
	return users, rows.Err()
}

func (s *Storage) CategoriesByIds(ids []domain.CategoryId) (map[domain.CategoryId]domain.Category, error) {
	rows, err := s.db.Query(
		"SELECT id, title FROM categories WHERE id = ANY($1)",
		pq.Array(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	defer rows.Close()

	categories := make(map[domain.CategoryId]domain.Category, len(ids))
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.Id, &c.Title); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories[c.Id] = c
	}
	return categories, rows.Err()
}

func (s *Storage) RepliesByThreadIds(ids []domain.ThreadId) (map[domain.ThreadId][]domain.Reply, error) {
	rows, err := s.db.Query(`
        SELECT id, thread_id, user_id, content, created_at
        FROM replies
        WHERE thread_id = ANY($1)
        ORDER BY created_at, id
    `, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	replies := make(map[domain.ThreadId][]domain.Reply)
	for rows.Next() {
		var reply domain.Reply
		if err := rows.Scan(&reply.Id, &reply.ThreadId, &reply.UserId, &reply.Content, &reply.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies[reply.ThreadId] = append(replies[reply.ThreadId], reply)
	}
	return replies, rows.Err()
}
