package httpapp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/upstar-club/mocksocial/internal/proxy"
)

func queryPath(path, username, hashtag string) string {
	q := url.Values{}
	if username != "" {
		q.Set("username", username)
	}
	if hashtag != "" {
		q.Set("hashtag", hashtag)
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func TestCheckStory(t *testing.T) {
	server := newTestServer(t)
	cases := []struct {
		name       string
		username   string
		hashtag    string
		wantStatus int
		wantResult bool
	}{
		{"hashtag present", "user1", "#vacation", http.StatusOK, true},
		{"hashtag absent", "user1", "#travel", http.StatusOK, false},
		{"no stories", "user3", "#vacation", http.StatusOK, false},
		{"private account", "user4", "#vacation", http.StatusForbidden, false},
		{"unknown account", "user5", "#vacation", http.StatusNotFound, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doGet(t, server, queryPath("/check-story", tc.username, tc.hashtag))
			if resp.Code != tc.wantStatus {
				t.Fatalf("status %d, want %d: %s", resp.Code, tc.wantStatus, resp.Body.String())
			}
			if tc.wantStatus != http.StatusOK {
				return
			}
			var payload BoolResponse
			if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if payload.Result != tc.wantResult || payload.Username != tc.username {
				t.Fatalf("got %+v", payload)
			}
		})
	}
}

func TestCheckStoryMissingParams(t *testing.T) {
	server := newTestServer(t)
	if resp := doGet(t, server, "/check-story?hashtag=%23vacation"); resp.Code != http.StatusBadRequest {
		t.Fatalf("missing username: %d", resp.Code)
	}
	if resp := doGet(t, server, "/check-story?username=user1"); resp.Code != http.StatusBadRequest {
		t.Fatalf("missing hashtag: %d", resp.Code)
	}
}

func TestCountStories(t *testing.T) {
	server := newTestServer(t)
	cases := []struct {
		name       string
		username   string
		hashtag    string
		wantStatus int
		wantCount  int
	}{
		{"two today", "user1", "#vacation", http.StatusOK, 2},
		{"no matching hashtag", "user2", "#vacation", http.StatusOK, 0},
		{"no stories", "user3", "#vacation", http.StatusOK, 0},
		{"private account", "user4", "#vacation", http.StatusForbidden, 0},
		{"unknown account", "user5", "#vacation", http.StatusNotFound, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doGet(t, server, queryPath("/count-stories", tc.username, tc.hashtag))
			if resp.Code != tc.wantStatus {
				t.Fatalf("status %d, want %d", resp.Code, tc.wantStatus)
			}
			if tc.wantStatus != http.StatusOK {
				return
			}
			var payload CountResponse
			if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if payload.Result != tc.wantCount {
				t.Fatalf("count %d, want %d", payload.Result, tc.wantCount)
			}
		})
	}
}

func TestCountPosts(t *testing.T) {
	server := newTestServer(t)

	// Default timeframe is last_sunday_midnight.
	resp := doGet(t, server, queryPath("/count-posts", "user1", "#vacation"))
	if resp.Code != http.StatusOK {
		t.Fatalf("status %d", resp.Code)
	}
	var payload CountResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Result != 2 {
		t.Fatalf("default timeframe: count %d, want 2", payload.Result)
	}

	resp = doGet(t, server, queryPath("/count-posts", "user1", "#vacation")+"&timeframe=today_midnight")
	_ = json.Unmarshal(resp.Body.Bytes(), &payload)
	if payload.Result != 1 {
		t.Fatalf("today_midnight: count %d, want 1", payload.Result)
	}

	resp = doGet(t, server, queryPath("/count-posts", "user1", "#vacation")+"&timeframe=fortnight")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("invalid timeframe: status %d, want 400", resp.Code)
	}
}

func TestCountPostsGuard(t *testing.T) {
	server := newTestServer(t)
	if resp := doGet(t, server, queryPath("/count-posts", "user4", "#vacation")); resp.Code != http.StatusForbidden {
		t.Fatalf("private: %d", resp.Code)
	}
	if resp := doGet(t, server, queryPath("/count-posts", "user5", "#vacation")); resp.Code != http.StatusNotFound {
		t.Fatalf("unknown: %d", resp.Code)
	}
}

func TestDailyActivity(t *testing.T) {
	server := newTestServer(t)
	cases := []struct {
		name     string
		username string
		hashtag  string
		want     ActivityResponse
	}{
		{"story and post", "user1", "#vacation", ActivityResponse{Followers: 150, StoriesWithHashtag: 2, PostsWithHashtag: 1, TotalLikes: 7, Username: "user1"}},
		{"post only", "user1", "#travel", ActivityResponse{Followers: 150, PostsWithHashtag: 1, TotalLikes: 10, Username: "user1"}},
		{"story only", "user6", "#vacation", ActivityResponse{Followers: 200, StoriesWithHashtag: 1, Username: "user6"}},
		{"nothing recent", "user2", "#vacation", ActivityResponse{Followers: 200, Username: "user2"}},
		{"empty account", "user3", "#vacation", ActivityResponse{Followers: 50, Username: "user3"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doGet(t, server, queryPath("/daily-activity", tc.username, tc.hashtag))
			if resp.Code != http.StatusOK {
				t.Fatalf("status %d: %s", resp.Code, resp.Body.String())
			}
			var payload ActivityResponse
			if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if payload != tc.want {
				t.Fatalf("got %+v, want %+v", payload, tc.want)
			}
		})
	}

	if resp := doGet(t, server, queryPath("/daily-activity", "user4", "#vacation")); resp.Code != http.StatusForbidden {
		t.Fatalf("private: %d", resp.Code)
	}
	if resp := doGet(t, server, queryPath("/daily-activity", "user5", "#vacation")); resp.Code != http.StatusNotFound {
		t.Fatalf("unknown: %d", resp.Code)
	}
}

func TestTiktokRoutes(t *testing.T) {
	server := newTestServer(t)

	resp := doGet(t, server, queryPath("/api/v1/tiktok/count-posts", "user1", "#vacation"))
	if resp.Code != http.StatusOK {
		t.Fatalf("count-posts status %d", resp.Code)
	}
	var count CountResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &count); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if count.Result != 2 {
		t.Fatalf("count %d, want 2", count.Result)
	}

	resp = doGet(t, server, queryPath("/api/v1/tiktok/daily-activity", "user1", "#vacation"))
	if resp.Code != http.StatusOK {
		t.Fatalf("daily-activity status %d", resp.Code)
	}
	var activity TiktokActivityResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &activity); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := TiktokActivityResponse{Followers: 150, PostsWithHashtag: 1, TotalLikes: 7, Username: "user1"}
	if activity != want {
		t.Fatalf("got %+v, want %+v", activity, want)
	}
	if body := resp.Body.String(); containsField(body, "stories_with_hashtag") {
		t.Fatal("tiktok response must not carry a story count")
	}
}

func containsField(body, field string) bool {
	var m map[string]any
	if err := json.Unmarshal([]byte(body), &m); err != nil {
		return false
	}
	_, ok := m[field]
	return ok
}

func TestLatestPostIdempotent(t *testing.T) {
	server := newTestServer(t)
	const want = "https://instagram.com/p/123456789"
	for i := 0; i < 3; i++ {
		resp := doGet(t, server, "/latest-post")
		if resp.Code != http.StatusOK {
			t.Fatalf("status %d", resp.Code)
		}
		var payload LinkResponse
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if payload.Link != want {
			t.Fatalf("call %d: got %q", i, payload.Link)
		}
	}
}

func TestLatestPostMissingTarget(t *testing.T) {
	server := newTestServer(t)
	server.cfg.TargetAccount = "ghost"
	if resp := doGet(t, server, "/latest-post"); resp.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", resp.Code)
	}
}

func TestCheckComment(t *testing.T) {
	server := newTestServer(t)
	cases := []struct {
		username   string
		wantStatus int
		wantResult bool
	}{
		{"user1", http.StatusOK, true},
		{"user2", http.StatusOK, false},
		{"user4", http.StatusForbidden, false},
		{"user5", http.StatusNotFound, false},
	}
	for _, tc := range cases {
		resp := doGet(t, server, queryPath("/check-comment", tc.username, ""))
		if resp.Code != tc.wantStatus {
			t.Fatalf("%s: status %d, want %d", tc.username, resp.Code, tc.wantStatus)
		}
		if tc.wantStatus != http.StatusOK {
			continue
		}
		var payload BoolResponse
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if payload.Result != tc.wantResult {
			t.Fatalf("%s: result %v, want %v", tc.username, payload.Result, tc.wantResult)
		}
	}
}

func TestCheckFollow(t *testing.T) {
	server := newTestServer(t)
	cases := []struct {
		username   string
		wantStatus int
		wantResult bool
	}{
		{"user1", http.StatusOK, true},
		{"user2", http.StatusOK, false},
		{"user6", http.StatusOK, true},
		{"user4", http.StatusForbidden, false},
		{"user5", http.StatusNotFound, false},
	}
	for _, tc := range cases {
		resp := doGet(t, server, queryPath("/check-follow", tc.username, ""))
		if resp.Code != tc.wantStatus {
			t.Fatalf("%s: status %d, want %d", tc.username, resp.Code, tc.wantStatus)
		}
		if tc.wantStatus != http.StatusOK {
			continue
		}
		var payload BoolResponse
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if payload.Result != tc.wantResult {
			t.Fatalf("%s: result %v, want %v", tc.username, payload.Result, tc.wantResult)
		}
	}
}

func TestBoolResponseRoundTrip(t *testing.T) {
	server := newTestServer(t)
	// Formatting an engine boolean and decoding the contract yields the
	// original value, both ways.
	for _, tc := range []struct {
		path string
		want bool
	}{
		{queryPath("/check-story", "user1", "#vacation"), true},
		{queryPath("/check-story", "user1", "#travel"), false},
	} {
		resp := doGet(t, server, tc.path)
		var payload BoolResponse
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if payload.Result != tc.want {
			t.Fatalf("%s: round trip lost the value", tc.path)
		}
	}
}

func TestProxyRoute(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"path":"` + r.URL.Path + `"}`))
	}))
	defer upstream.Close()

	server := newTestServer(t)
	server.proxy = proxy.New(upstream.URL, 5*time.Second)

	resp := doGet(t, server, "/upstar/missions/42?check=1")
	if resp.Code != http.StatusOK {
		t.Fatalf("status %d", resp.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["path"] != "/missions/42" {
		t.Fatalf("upstream saw %q", payload["path"])
	}
}
