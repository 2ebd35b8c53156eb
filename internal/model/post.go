package model

import "time"

// Post represents a short text entry authored by a user. Author and
// publication date are set once at creation; only the text and the group
// assignment may change afterwards, and only at the author's hand.
type Post struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	PubDate  time.Time `json:"pub_date"`
	AuthorID string    `json:"author_id"`
	GroupID  *string   `json:"group_id,omitempty"`
}

// PageSize is the fixed number of posts per feed page.
const PageSize = 10

// PostOrder names a listing order for post collections.
type PostOrder string

// OrderNewestFirst sorts by publication date descending, post id descending
// on ties. It is the store-wide default for every feed.
const OrderNewestFirst PostOrder = "newest_first"

// PostScope selects which posts a listing covers. The zero value covers all
// posts; setting GroupID or AuthorID narrows the listing to one group or
// one author.
type PostScope struct {
	GroupID  string `json:"group_id,omitempty"`
	AuthorID string `json:"author_id,omitempty"`
}

// PostPage is one bounded window of a feed.
type PostPage struct {
	Items       []*Post `json:"items"`
	Number      int     `json:"number"`
	PageCount   int     `json:"page_count"`
	HasNext     bool    `json:"has_next"`
	HasPrevious bool    `json:"has_previous"`
}

// CreatePostRequest represents a request to create a post
type CreatePostRequest struct {
	Text    string  `json:"text"`
	GroupID *string `json:"group_id,omitempty"`
}

// UpdatePostRequest represents a request to edit a post's text and group
type UpdatePostRequest struct {
	Text    string  `json:"text"`
	GroupID *string `json:"group_id,omitempty"`
}
