package handler

import (
	"net/http"

	"github.com/threadhub-dev/threadhub/internal/domain"
	mw "github.com/threadhub-dev/threadhub/internal/middleware"
	"github.com/threadhub-dev/threadhub/internal/query"
)

type CreateThreadRequest struct {
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content" validate:"required"`
	CategoryId int64  `json:"category_id" validate:"required,gt=0"`
}

type UpdateThreadRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	CategoryId *int64  `json:"category_id"`
}

func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	q, err := query.ParseList(r.URL.Query(), h.cfg.Public.DefaultPerPage, h.cfg.Public.MaxPerPage)
	if err != nil {
		writeError(w, err)
		return
	}

	page, err := h.thread.List(q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, page)
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body CreateThreadRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	thread, err := h.thread.Create(user, domain.ThreadCreationData{
		Title:      body.Title,
		Content:    body.Content,
		CategoryId: body.CategoryId,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, thread)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	id, err := threadIdParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	thread, err := h.thread.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, thread)
}

func (h *Handler) UpdateThread(w http.ResponseWriter, r *http.Request) {
	id, err := threadIdParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	// Body fields are validated by the service after the ownership guard;
	// only the JSON shape is checked here.
	var body UpdateThreadRequest
	if err := decode(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	thread, err := h.thread.Update(mw.GetUserFromContext(r), id, domain.ThreadUpdateData{
		Title:      body.Title,
		Content:    body.Content,
		CategoryId: body.CategoryId,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, thread)
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	id, err := threadIdParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.thread.Delete(mw.GetUserFromContext(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Thread deleted successfully")
}
