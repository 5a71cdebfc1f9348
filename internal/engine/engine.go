// Package engine implements the hashtag-activity queries. Every
// function is a pure read over an account snapshot; time scoping is
// expressed as an explicit cutoff so callers own the clock.
package engine

import (
	"errors"
	"time"

	"github.com/upstar-club/mocksocial/internal/model"
)

// ErrNoPosts is returned when an operation needs the account's latest
// post and the post sequence is empty.
var ErrNoPosts = errors.New("account has no posts")

// Activity aggregates an account's engagement for one hashtag within a
// window. Followers is a passthrough and is not time-scoped.
type Activity struct {
	Followers          int
	StoriesWithHashtag int
	PostsWithHashtag   int
	TotalLikes         int
}

// HasStory reports whether any story carries the hashtag, with no time
// bound.
func HasStory(acct model.Account, hashtag string) bool {
	for _, s := range acct.Stories {
		if hasTag(s.Hashtags, hashtag) {
			return true
		}
	}
	return false
}

// CountStories counts stories tagged with hashtag at or after cutoff.
func CountStories(acct model.Account, hashtag string, cutoff time.Time) int {
	n := 0
	for _, s := range acct.Stories {
		if hasTag(s.Hashtags, hashtag) && !s.Timestamp.Before(cutoff) {
			n++
		}
	}
	return n
}

// CountPosts counts posts tagged with hashtag at or after cutoff.
func CountPosts(acct model.Account, hashtag string, cutoff time.Time) int {
	n := 0
	for _, p := range acct.Posts {
		if hasTag(p.Hashtags, hashtag) && !p.Timestamp.Before(cutoff) {
			n++
		}
	}
	return n
}

// DailyActivity aggregates counts and likes for the window. TotalLikes
// sums likes over hashtag-matching posts inside the window only.
func DailyActivity(acct model.Account, hashtag string, cutoff time.Time) Activity {
	likes := 0
	for _, p := range acct.Posts {
		if hasTag(p.Hashtags, hashtag) && !p.Timestamp.Before(cutoff) {
			likes += p.Likes
		}
	}
	return Activity{
		Followers:          acct.Followers,
		StoriesWithHashtag: CountStories(acct, hashtag, cutoff),
		PostsWithHashtag:   CountPosts(acct, hashtag, cutoff),
		TotalLikes:         likes,
	}
}

// LatestPostLink returns the link of the account's latest post. Latest
// means first in fixture order, not a timestamp sort.
func LatestPostLink(acct model.Account) (string, error) {
	if len(acct.Posts) == 0 {
		return "", ErrNoPosts
	}
	return acct.Posts[0].Link, nil
}

// HasCommentFrom reports whether username commented on the account's
// latest post. An account without posts has no comments to match.
func HasCommentFrom(acct model.Account, username string) bool {
	if len(acct.Posts) == 0 {
		return false
	}
	for _, c := range acct.Posts[0].Comments {
		if c.Username == username {
			return true
		}
	}
	return false
}

// Follows reports whether the account follows target.
func Follows(acct model.Account, target string) bool {
	for _, f := range acct.Following {
		if f == target {
			return true
		}
	}
	return false
}

// Hashtag matching is exact-string membership; no normalization.
func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
