package service

import (
	"github.com/threadhub-dev/threadhub/internal/domain"
	"github.com/threadhub-dev/threadhub/internal/errors"
	"github.com/threadhub-dev/threadhub/internal/query"
	"github.com/threadhub-dev/threadhub/internal/render"
)

type ThreadService interface {
	List(q query.ListQuery) (domain.ThreadPage, error)
	Create(actor *domain.User, data domain.ThreadCreationData) (domain.Thread, error)
	Get(id domain.ThreadId) (domain.Thread, error)
	Update(actor *domain.User, id domain.ThreadId, data domain.ThreadUpdateData) (domain.Thread, error)
	Delete(actor *domain.User, id domain.ThreadId) error
}

type Thread struct {
	storage ThreadStorage
}

// ThreadStorage is the persistence collaborator. Listing executes one
// composed query from the validated specs; relations are fetched through
// the typed accessors below, never by name.
type ThreadStorage interface {
	ListThreads(q query.ListQuery) ([]domain.Thread, int, error)
	CreateThread(data domain.ThreadCreationData) (domain.Thread, error)
	GetThread(id domain.ThreadId) (domain.Thread, error)
	UpdateThread(id domain.ThreadId, data domain.ThreadUpdateData) (domain.Thread, error)
	DeleteThread(id domain.ThreadId) error

	UsersByIds(ids []domain.UserId) (map[domain.UserId]domain.User, error)
	CategoriesByIds(ids []domain.CategoryId) (map[domain.CategoryId]domain.Category, error)
	RepliesByThreadIds(ids []domain.ThreadId) (map[domain.ThreadId][]domain.Reply, error)
}

func NewThread(storage ThreadStorage) ThreadService {
	return &Thread{storage}
}

func (s *Thread) List(q query.ListQuery) (domain.ThreadPage, error) {
	threads, total, err := s.storage.ListThreads(q)
	if err != nil {
		return domain.ThreadPage{}, err
	}
	if err := s.attachRelations(threads, q.Relations); err != nil {
		return domain.ThreadPage{}, err
	}
	if threads == nil {
		threads = []domain.Thread{}
	}

	perPage := q.Pagination.PerPage
	return domain.ThreadPage{
		Items:      threads,
		Page:       q.Pagination.Page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	}, nil
}

// Create persists a new thread owned by actor. The owner always comes from
// the resolved identity, never from the request body.
func (s *Thread) Create(actor *domain.User, data domain.ThreadCreationData) (domain.Thread, error) {
	if actor == nil {
		return domain.Thread{}, errors.New(errors.Forbidden, "Unauthorized")
	}
	data.Author = actor.Id

	thread, err := s.storage.CreateThread(data)
	if err != nil {
		return domain.Thread{}, err
	}
	threads := []domain.Thread{thread}
	if err := s.attachRelations(threads, query.Relations{User: true, Category: true}); err != nil {
		return domain.Thread{}, err
	}
	return threads[0], nil
}

func (s *Thread) Get(id domain.ThreadId) (domain.Thread, error) {
	thread, err := s.storage.GetThread(id)
	if err != nil {
		return domain.Thread{}, err
	}
	threads := []domain.Thread{thread}
	if err := s.attachRelations(threads, query.Relations{User: true, Category: true, Replies: true}); err != nil {
		return domain.Thread{}, err
	}
	threads[0].ContentHtml = render.Markdown(threads[0].Content)
	return threads[0], nil
}

// Update applies a partial update. Existence is checked first, then
// ownership, then the payload: an unauthorized caller never learns whether
// their payload would have been valid.
func (s *Thread) Update(actor *domain.User, id domain.ThreadId, data domain.ThreadUpdateData) (domain.Thread, error) {
	existing, err := s.storage.GetThread(id)
	if err != nil {
		return domain.Thread{}, err
	}
	if err := canMutate(actor, &existing); err != nil {
		return domain.Thread{}, err
	}
	if err := validateUpdate(data); err != nil {
		return domain.Thread{}, err
	}

	thread, err := s.storage.UpdateThread(id, data)
	if err != nil {
		return domain.Thread{}, err
	}
	threads := []domain.Thread{thread}
	if err := s.attachRelations(threads, query.Relations{User: true, Category: true}); err != nil {
		return domain.Thread{}, err
	}
	return threads[0], nil
}

func (s *Thread) Delete(actor *domain.User, id domain.ThreadId) error {
	existing, err := s.storage.GetThread(id)
	if err != nil {
		return err
	}
	if err := canMutate(actor, &existing); err != nil {
		return err
	}
	return s.storage.DeleteThread(id)
}

// canMutate is the ownership guard: only the identified owner of a thread
// may mutate it.
func canMutate(actor *domain.User, thread *domain.Thread) error {
	if actor == nil || actor.Id != thread.UserId {
		return errors.New(errors.Forbidden, "Unauthorized")
	}
	return nil
}

func validateUpdate(data domain.ThreadUpdateData) error {
	if data.Title != nil && *data.Title == "" {
		return errors.New(errors.Validation, "title must not be empty")
	}
	if data.CategoryId != nil && *data.CategoryId <= 0 {
		return errors.New(errors.Validation, "category_id must be a positive integer")
	}
	return nil
}

// attachRelations is the relation loader: it augments fetched threads with
// owner, category and reply records via the storage accessors, one batched
// lookup per relation.
func (s *Thread) attachRelations(threads []domain.Thread, rel query.Relations) error {
	if len(threads) == 0 {
		return nil
	}

	if rel.User {
		ids := make([]domain.UserId, 0, len(threads))
		for i := range threads {
			ids = append(ids, threads[i].UserId)
		}
		users, err := s.storage.UsersByIds(ids)
		if err != nil {
			return err
		}
		for i := range threads {
			if user, ok := users[threads[i].UserId]; ok {
				u := user
				threads[i].User = &u
			}
		}
	}

	if rel.Category {
		ids := make([]domain.CategoryId, 0, len(threads))
		for i := range threads {
			ids = append(ids, threads[i].CategoryId)
		}
		categories, err := s.storage.CategoriesByIds(ids)
		if err != nil {
			return err
		}
		for i := range threads {
			if category, ok := categories[threads[i].CategoryId]; ok {
				c := category
				threads[i].Category = &c
			}
		}
	}

	if rel.Replies {
		ids := make([]domain.ThreadId, 0, len(threads))
		for i := range threads {
			ids = append(ids, threads[i].Id)
		}
		replies, err := s.storage.RepliesByThreadIds(ids)
		if err != nil {
			return err
		}
		for i := range threads {
			threads[i].Replies = replies[threads[i].Id]
		}
	}

	return nil
}
