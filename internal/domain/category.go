package domain

type Category struct {
	Id    CategoryId `json:"id"`
	Title string     `json:"title"`
}
