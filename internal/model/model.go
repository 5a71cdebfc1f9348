package model

import "time"

// Account is a single entry in the fixture directory. The stories and
// posts slices are kept in insertion order, which the fixture treats as
// chronological; the first post is the account's latest one.
type Account struct {
	Username  string   `json:"username" yaml:"username"`
	Private   bool     `json:"private" yaml:"private"`
	Followers int      `json:"followers" yaml:"followers"`
	Stories   []Story  `json:"stories" yaml:"stories"`
	Posts     []Post   `json:"posts" yaml:"posts"`
	Following []string `json:"following" yaml:"following"`
}

type Story struct {
	Content   string    `json:"content" yaml:"content"`
	Hashtags  []string  `json:"hashtags" yaml:"hashtags"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Likes     int       `json:"likes" yaml:"likes"`
}

type Post struct {
	Content   string    `json:"content" yaml:"content"`
	Hashtags  []string  `json:"hashtags" yaml:"hashtags"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Likes     int       `json:"likes" yaml:"likes"`
	Link      string    `json:"link,omitempty" yaml:"link,omitempty"`
	Comments  []Comment `json:"comments,omitempty" yaml:"comments,omitempty"`
}

// Comment authors are free-form usernames; they do not have to exist in
// the directory.
type Comment struct {
	Username  string    `json:"username" yaml:"username"`
	Content   string    `json:"content" yaml:"content"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}
