package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Username               string    `json:"username" db:"username"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	FirstName              string    `json:"firstName" db:"first_name"`
	LastName               string    `json:"lastName" db:"last_name"`
	DateJoined             time.Time `json:"dateJoined" db:"date_joined"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
}

type Category struct {
	CategoryID  string    `json:"categoryId" db:"category_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Slug        string    `json:"slug" db:"slug"`
	IsPublished bool      `json:"isPublished" db:"is_published"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Location struct {
	LocationID  string    `json:"locationId" db:"location_id"`
	Name        string    `json:"name" db:"name"`
	IsPublished bool      `json:"isPublished" db:"is_published"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID      string    `json:"postId" db:"post_id"`
	Title       string    `json:"title" db:"title"`
	Text        string    `json:"text" db:"text"`
	PubDate     time.Time `json:"pubDate" db:"pub_date"`
	AuthorID    string    `json:"authorId" db:"author_id"`
	LocationID  *string   `json:"locationId" db:"location_id"`
	CategoryID  *string   `json:"categoryId" db:"category_id"`
	ImageURL    *string   `json:"imageUrl" db:"image_url"`
	IsPublished bool      `json:"isPublished" db:"is_published"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// поля из join-ов, таблице posts не принадлежат
	AuthorUsername      string  `json:"authorUsername" db:"author_username"`
	CategorySlug        *string `json:"categorySlug" db:"category_slug"`
	CategoryIsPublished *bool   `json:"-" db:"category_is_published"`
	CommentCount        int     `json:"commentCount" db:"comment_count"`
}

type Comment struct {
	CommentID string    `json:"commentId" db:"comment_id"`
	Text      string    `json:"text" db:"text"`
	PostID    string    `json:"postId" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	AuthorUsername string `json:"authorUsername" db:"author_username"`
}
