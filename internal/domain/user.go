package domain

import "time"

type User struct {
	Id        UserId    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	PassHash  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

type Credentials struct {
	Name     string
	Email    string
	Password string
}
