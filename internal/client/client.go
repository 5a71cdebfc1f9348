// Package client provides a Go client for the mock social API.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError carries the status code and error detail of a failed call.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// Client is a mock social API client.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a client for the given server base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Activity mirrors the /daily-activity response.
type Activity struct {
	Followers          int    `json:"followers"`
	StoriesWithHashtag int    `json:"stories_with_hashtag"`
	PostsWithHashtag   int    `json:"posts_with_hashtag"`
	TotalLikes         int    `json:"total_likes"`
	Username           string `json:"username"`
}

// Status hits the liveness probe.
func (c *Client) Status() (string, error) {
	var status string
	if err := c.get("/", nil, &status); err != nil {
		return "", err
	}
	return status, nil
}

// CheckStory reports whether username has a story with the hashtag.
func (c *Client) CheckStory(username, hashtag string) (bool, error) {
	return c.getBool("/check-story", url.Values{"username": {username}, "hashtag": {hashtag}})
}

// CountStories counts username's stories with the hashtag since
// midnight in the reference timezone.
func (c *Client) CountStories(username, hashtag string) (int, error) {
	return c.getCount("/count-stories", url.Values{"username": {username}, "hashtag": {hashtag}})
}

// CountPosts counts username's posts with the hashtag since the given
// timeframe; an empty timeframe uses the server default.
func (c *Client) CountPosts(username, hashtag, timeframe string) (int, error) {
	query := url.Values{"username": {username}, "hashtag": {hashtag}}
	if timeframe != "" {
		query.Set("timeframe", timeframe)
	}
	return c.getCount("/count-posts", query)
}

// DailyActivity fetches the 24-hour aggregate for username and hashtag.
func (c *Client) DailyActivity(username, hashtag string) (Activity, error) {
	var activity Activity
	err := c.get("/daily-activity", url.Values{"username": {username}, "hashtag": {hashtag}}, &activity)
	return activity, err
}

// LatestPost returns the link of the target account's latest post.
func (c *Client) LatestPost() (string, error) {
	var result struct {
		Link string `json:"link"`
	}
	if err := c.get("/latest-post", nil, &result); err != nil {
		return "", err
	}
	return result.Link, nil
}

// CheckComment reports whether username commented on the target
// account's latest post.
func (c *Client) CheckComment(username string) (bool, error) {
	return c.getBool("/check-comment", url.Values{"username": {username}})
}

// CheckFollow reports whether username follows the target account.
func (c *Client) CheckFollow(username string) (bool, error) {
	return c.getBool("/check-follow", url.Values{"username": {username}})
}

func (c *Client) getBool(path string, query url.Values) (bool, error) {
	var result struct {
		Result bool `json:"result"`
	}
	if err := c.get(path, query, &result); err != nil {
		return false, err
	}
	return result.Result, nil
}

func (c *Client) getCount(path string, query url.Values) (int, error) {
	var result struct {
		Result int `json:"result"`
	}
	if err := c.get(path, query, &result); err != nil {
		return 0, err
	}
	return result.Result, nil
}

func (c *Client) get(path string, query url.Values, dest any) error {
	target := c.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	resp, err := c.HTTPClient.Get(target)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}
	return json.Unmarshal(body, dest)
}
