package httpapp

import (
	"errors"
	"net/http"

	"github.com/upstar-club/mocksocial/internal/engine"
	"github.com/upstar-club/mocksocial/internal/timewindow"
)

// BoolResponse answers yes/no mission checks.
type BoolResponse struct {
	Result   bool   `json:"result"`
	Username string `json:"username"`
}

// CountResponse answers counting queries.
type CountResponse struct {
	Result   int    `json:"result"`
	Username string `json:"username"`
}

// ActivityResponse aggregates a day's engagement for one hashtag.
type ActivityResponse struct {
	Followers          int    `json:"followers"`
	StoriesWithHashtag int    `json:"stories_with_hashtag"`
	PostsWithHashtag   int    `json:"posts_with_hashtag"`
	TotalLikes         int    `json:"total_likes"`
	Username           string `json:"username"`
}

// TiktokActivityResponse is the TikTok variant; the platform has no
// stories, so that count is absent.
type TiktokActivityResponse struct {
	Followers        int    `json:"followers"`
	PostsWithHashtag int    `json:"posts_with_hashtag"`
	TotalLikes       int    `json:"total_likes"`
	Username         string `json:"username"`
}

// LinkResponse carries a single post URL.
type LinkResponse struct {
	Link string `json:"link"`
}

// handleCheckStory godoc
//
//	@Summary		Check for a story with a hashtag
//	@Description	Reports whether the user has any story carrying the hashtag, with no time bound.
//	@Tags			Stories
//	@Produce		json
//	@Param			username	query		string	true	"Username to check"
//	@Param			hashtag		query		string	true	"Hashtag, including the # prefix"
//	@Success		200			{object}	BoolResponse
//	@Failure		403			{object}	map[string]string	"Account is private"
//	@Failure		404			{object}	map[string]string	"Account does not exist"
//	@Router			/check-story [get]
func (s *Server) handleCheckStory(w http.ResponseWriter, r *http.Request) {
	username, hashtag, ok := queryParams(w, r, true)
	if !ok {
		return
	}
	acct, ok := s.guard(w, username)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, BoolResponse{
		Result:   engine.HasStory(acct, hashtag),
		Username: username,
	})
}

// handleCountStories godoc
//
//	@Summary		Count stories with a hashtag since midnight
//	@Description	Counts the user's stories tagged with the hashtag since midnight in the reference timezone.
//	@Tags			Stories
//	@Produce		json
//	@Param			username	query		string	true	"Username to check"
//	@Param			hashtag		query		string	true	"Hashtag, including the # prefix"
//	@Success		200			{object}	CountResponse
//	@Failure		403			{object}	map[string]string	"Account is private"
//	@Failure		404			{object}	map[string]string	"Account does not exist"
//	@Router			/count-stories [get]
func (s *Server) handleCountStories(w http.ResponseWriter, r *http.Request) {
	username, hashtag, ok := queryParams(w, r, true)
	if !ok {
		return
	}
	acct, ok := s.guard(w, username)
	if !ok {
		return
	}
	cutoff := timewindow.Resolve(timewindow.TodayMidnight, s.now())
	writeJSON(w, http.StatusOK, CountResponse{
		Result:   engine.CountStories(acct, hashtag, cutoff),
		Username: username,
	})
}

// handleCountPosts godoc
//
//	@Summary		Count posts with a hashtag in a timeframe
//	@Description	Counts the user's posts tagged with the hashtag since the selected timeframe (default last_sunday_midnight).
//	@Tags			Posts
//	@Produce		json
//	@Param			username	query		string	true	"Username to check"
//	@Param			hashtag		query		string	true	"Hashtag, including the # prefix"
//	@Param			timeframe	query		string	false	"Timeframe selector"	Enums(today_midnight, last_sunday_midnight, last_24_hours)	default(last_sunday_midnight)
//	@Success		200			{object}	CountResponse
//	@Failure		400			{object}	map[string]string	"Unknown timeframe"
//	@Failure		403			{object}	map[string]string	"Account is private"
//	@Failure		404			{object}	map[string]string	"Account does not exist"
//	@Router			/count-posts [get]
func (s *Server) handleCountPosts(w http.ResponseWriter, r *http.Request) {
	username, hashtag, ok := queryParams(w, r, true)
	if !ok {
		return
	}
	tf := timewindow.LastSundayMidnight
	if raw := r.URL.Query().Get("timeframe"); raw != "" {
		parsed, err := timewindow.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		tf = parsed
	}
	acct, ok := s.guard(w, username)
	if !ok {
		return
	}
	cutoff := timewindow.Resolve(tf, s.now())
	writeJSON(w, http.StatusOK, CountResponse{
		Result:   engine.CountPosts(acct, hashtag, cutoff),
		Username: username,
	})
}

// handleDailyActivity godoc
//
//	@Summary		Daily activity for a hashtag
//	@Description	Follower count plus story/post counts and total likes for the hashtag over the last 24 hours.
//	@Tags			Activity
//	@Produce		json
//	@Param			username	query		string	true	"Username to check"
//	@Param			hashtag		query		string	true	"Hashtag, including the # prefix"
//	@Success		200			{object}	ActivityResponse
//	@Failure		403			{object}	map[string]string	"Account is private"
//	@Failure		404			{object}	map[string]string	"Account does not exist"
//	@Router			/daily-activity [get]
func (s *Server) handleDailyActivity(w http.ResponseWriter, r *http.Request) {
	username, hashtag, ok := queryParams(w, r, true)
	if !ok {
		return
	}
	acct, ok := s.guard(w, username)
	if !ok {
		return
	}
	cutoff := timewindow.Resolve(timewindow.Last24Hours, s.now())
	activity := engine.DailyActivity(acct, hashtag, cutoff)
	writeJSON(w, http.StatusOK, ActivityResponse{
		Followers:          activity.Followers,
		StoriesWithHashtag: activity.StoriesWithHashtag,
		PostsWithHashtag:   activity.PostsWithHashtag,
		TotalLikes:         activity.TotalLikes,
		Username:           username,
	})
}

// handleTiktokDailyActivity godoc
//
//	@Summary		Daily TikTok activity for a hashtag
//	@Tags			Activity
//	@Produce		json
//	@Param			username	query		string	true	"Username to check"
//	@Param			hashtag		query		string	true	"Hashtag, including the # prefix"
//	@Success		200			{object}	TiktokActivityResponse
//	@Failure		403			{object}	map[string]string	"Account is private"
//	@Failure		404			{object}	map[string]string	"Account does not exist"
//	@Router			/api/v1/tiktok/daily-activity [get]
func (s *Server) handleTiktokDailyActivity(w http.ResponseWriter, r *http.Request) {
	username, hashtag, ok := queryParams(w, r, true)
	if !ok {
		return
	}
	acct, ok := s.guard(w, username)
	if !ok {
		return
	}
	cutoff := timewindow.Resolve(timewindow.Last24Hours, s.now())
	activity := engine.DailyActivity(acct, hashtag, cutoff)
	writeJSON(w, http.StatusOK, TiktokActivityResponse{
		Followers:        activity.Followers,
		PostsWithHashtag: activity.PostsWithHashtag,
		TotalLikes:       activity.TotalLikes,
		Username:         username,
	})
}

// handleLatestPost godoc
//
//	@Summary		Link of the target account's latest post
//	@Tags			Posts
//	@Produce		json
//	@Success		200	{object}	LinkResponse
//	@Failure		404	{object}	map[string]string	"Target account absent or has no posts"
//	@Router			/latest-post [get]
func (s *Server) handleLatestPost(w http.ResponseWriter, r *http.Request) {
	target, found := s.dir.Lookup(s.cfg.TargetAccount)
	if !found {
		writeError(w, http.StatusNotFound, errors.New("account does not exist"))
		return
	}
	link, err := engine.LatestPostLink(target)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, LinkResponse{Link: link})
}

// handleCheckComment godoc
//
//	@Summary		Check for a comment on the target's latest post
//	@Description	Reports whether the queried user commented on the latest post of the target account.
//	@Tags			Comments
//	@Produce		json
//	@Param			username	query		string	true	"Username to check"
//	@Success		200			{object}	BoolResponse
//	@Failure		403			{object}	map[string]string	"Account is private"
//	@Failure		404			{object}	map[string]string	"Account does not exist"
//	@Router			/check-comment [get]
func (s *Server) handleCheckComment(w http.ResponseWriter, r *http.Request) {
	username, _, ok := queryParams(w, r, false)
	if !ok {
		return
	}
	if _, ok := s.guard(w, username); !ok {
		return
	}
	target, found := s.dir.Lookup(s.cfg.TargetAccount)
	if !found {
		writeError(w, http.StatusNotFound, errors.New("account does not exist"))
		return
	}
	writeJSON(w, http.StatusOK, BoolResponse{
		Result:   engine.HasCommentFrom(target, username),
		Username: username,
	})
}

// handleCheckFollow godoc
//
//	@Summary		Check whether a user follows the target account
//	@Tags			Follows
//	@Produce		json
//	@Param			username	query		string	true	"Username to check"
//	@Success		200			{object}	BoolResponse
//	@Failure		403			{object}	map[string]string	"Account is private"
//	@Failure		404			{object}	map[string]string	"Account does not exist"
//	@Router			/check-follow [get]
func (s *Server) handleCheckFollow(w http.ResponseWriter, r *http.Request) {
	username, _, ok := queryParams(w, r, false)
	if !ok {
		return
	}
	acct, ok := s.guard(w, username)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, BoolResponse{
		Result:   engine.Follows(acct, s.cfg.TargetAccount),
		Username: username,
	})
}

func queryParams(w http.ResponseWriter, r *http.Request, needHashtag bool) (username, hashtag string, ok bool) {
	username = r.URL.Query().Get("username")
	hashtag = r.URL.Query().Get("hashtag")
	if username == "" {
		writeError(w, http.StatusBadRequest, errors.New("username is required"))
		return "", "", false
	}
	if needHashtag && hashtag == "" {
		writeError(w, http.StatusBadRequest, errors.New("hashtag is required"))
		return "", "", false
	}
	return username, hashtag, true
}
