package domain

import "time"

type (
	ThreadId   = int64
	UserId     = int64
	CategoryId = int64
	ReplyId    = int64
)

// Thread is the primary resource: a titled text post owned by a user and
// classified under a category. The owner is set once at creation from the
// authenticated caller and never changes afterwards.
type Thread struct {
	Id          ThreadId   `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	ContentHtml string     `json:"contentHtml,omitempty"`
	UserId      UserId     `json:"userId"`
	CategoryId  CategoryId `json:"categoryId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// attached relations, nil unless explicitly loaded
	User     *User     `json:"user,omitempty"`
	Category *Category `json:"category,omitempty"`
	Replies  []Reply   `json:"replies,omitempty"`
}

type ThreadCreationData struct {
	Title      string
	Content    string
	CategoryId CategoryId
	Author     UserId
}

// ThreadUpdateData carries a partial update; nil fields are left untouched.
type ThreadUpdateData struct {
	Title      *string
	Content    *string
	CategoryId *CategoryId
}

// ThreadPage is one page of a filtered, sorted listing plus its
// count metadata envelope.
type ThreadPage struct {
	Items      []Thread `json:"items"`
	Page       int      `json:"page"`
	PerPage    int      `json:"per_page"`
	Total      int      `json:"total"`
	TotalPages int      `json:"total_pages"`
}
