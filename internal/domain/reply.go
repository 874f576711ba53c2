package domain

import "time"

// Reply belongs to a thread. The thread API only attaches and counts
// replies; creating them is a separate surface.
type Reply struct {
	Id        ReplyId   `json:"id"`
	ThreadId  ThreadId  `json:"threadId"`
	UserId    UserId    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
