package model

// News is a home page news item. Content may contain markdown.
type News struct {
	ID      int    `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Date    string `json:"date" yaml:"date"`
	Content string `json:"content" yaml:"content"`
}
