package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/upstar-club/mocksocial/internal/client"
	"github.com/upstar-club/mocksocial/internal/config"
	"github.com/upstar-club/mocksocial/internal/directory"
	httpapp "github.com/upstar-club/mocksocial/internal/http"
	"github.com/upstar-club/mocksocial/internal/proxy"
)

func main() {
	if len(os.Args) < 2 {
		runServer()
		return
	}

	cmd := os.Args[1]

	// Handle --help and -h before defaulting to server
	if cmd == "-h" || cmd == "--help" || cmd == "help" {
		printUsage()
		return
	}

	if cmd == "-v" || cmd == "--version" || cmd == "version" {
		fmt.Println("mocksocial v1.0.0")
		return
	}

	if strings.HasPrefix(cmd, "-") {
		runServer()
		return
	}

	args := os.Args[2:]

	switch cmd {
	case "server", "serve":
		runServer()
	case "check-story":
		cmdCheckStory(args)
	case "count-stories":
		cmdCountStories(args)
	case "count-posts":
		cmdCountPosts(args)
	case "daily-activity", "activity":
		cmdDailyActivity(args)
	case "latest-post":
		cmdLatestPost(args)
	case "check-comment":
		cmdCheckComment(args)
	case "check-follow":
		cmdCheckFollow(args)
	case "status":
		cmdStatus(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`mocksocial - Canned social-media read API for mission verification

Usage: mocksocial <command> [options]

Query Commands:
  check-story         Check whether a user has a story with a hashtag
  count-stories       Count a user's stories with a hashtag since midnight
  count-posts         Count a user's posts with a hashtag in a timeframe
  daily-activity      Show a user's 24-hour activity for a hashtag
  latest-post         Print the link of the target account's latest post
  check-comment       Check whether a user commented on the target's latest post
  check-follow        Check whether a user follows the target account
  status              Ping the server liveness probe

Server:
  server              Start the mocksocial server (default if no command)

Examples:
  mocksocial check-story --username user1 --hashtag "#vacation"
  mocksocial count-posts --username user1 --hashtag "#vacation" --timeframe today_midnight
  mocksocial daily-activity --username user1 --hashtag "#vacation"
  mocksocial check-follow --username user1

Environment Variables (server):
  MOCKSOCIAL_ADDR           Listen address (default: :8080, PORT also honored)
  MOCKSOCIAL_FIXTURE        Account fixture path (default: embedded fixture)
  MOCKSOCIAL_TARGET         Target account for latest-post checks
  MOCKSOCIAL_ADMIN_SECRET   Admin API secret
  MOCKSOCIAL_PROXY_BASE     Upstream base URL for /upstar/ pass-through
  MOCKSOCIAL_PROXY_TIMEOUT  Upstream request timeout (default: 60s)`)
}

// ============================================================================
// SERVER
// ============================================================================

func runServer() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	dir, err := directory.Load(cfg.FixturePath)
	if err != nil {
		log.Fatalf("failed to load account fixture: %v", err)
	}

	fwd := proxy.New(cfg.ProxyBase, cfg.ProxyTimeout)

	server := httpapp.NewServer(dir, fwd, cfg)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("mocksocial listening on %s (%d accounts)", cfg.Addr, dir.Len())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctx)
}

// ============================================================================
// CLIENT COMMANDS
// ============================================================================

func serverURL() string {
	if url := os.Getenv("MOCKSOCIAL_URL"); url != "" {
		return url
	}
	return "http://localhost:8080"
}

func queryFlags(name string, needHashtag bool, args []string) (c *client.Client, username, hashtag string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	userFlag := fs.String("username", "", "Username to check (required)")
	var tagFlag *string
	if needHashtag {
		tagFlag = fs.String("hashtag", "", "Hashtag, including the # prefix (required)")
	}
	url := fs.String("url", serverURL(), "Server URL")
	fs.Parse(args)

	if *userFlag == "" {
		fmt.Fprintln(os.Stderr, "Error: --username is required")
		os.Exit(1)
	}
	if needHashtag {
		if *tagFlag == "" {
			fmt.Fprintln(os.Stderr, "Error: --hashtag is required")
			os.Exit(1)
		}
		hashtag = *tagFlag
	}
	return client.New(*url), *userFlag, hashtag
}

func cmdCheckStory(args []string) {
	c, username, hashtag := queryFlags("check-story", true, args)
	result, err := c.CheckStory(username, hashtag)
	if err != nil {
		fatal(err)
	}
	printBool(result, fmt.Sprintf("%s has a story with %s", username, hashtag))
}

func cmdCountStories(args []string) {
	c, username, hashtag := queryFlags("count-stories", true, args)
	count, err := c.CountStories(username, hashtag)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("%d stories with %s since midnight\n", count, hashtag)
}

func cmdCountPosts(args []string) {
	fs := flag.NewFlagSet("count-posts", flag.ExitOnError)
	username := fs.String("username", "", "Username to check (required)")
	hashtag := fs.String("hashtag", "", "Hashtag, including the # prefix (required)")
	timeframe := fs.String("timeframe", "", "today_midnight, last_sunday_midnight or last_24_hours")
	url := fs.String("url", serverURL(), "Server URL")
	fs.Parse(args)

	if *username == "" || *hashtag == "" {
		fmt.Fprintln(os.Stderr, "Error: --username and --hashtag are required")
		os.Exit(1)
	}

	c := client.New(*url)
	count, err := c.CountPosts(*username, *hashtag, *timeframe)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("%d posts with %s\n", count, *hashtag)
}

func cmdDailyActivity(args []string) {
	c, username, hashtag := queryFlags("daily-activity", true, args)
	activity, err := c.DailyActivity(username, hashtag)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Activity for %s on %s (last 24h):\n", username, hashtag)
	fmt.Printf("  Followers: %d\n", activity.Followers)
	fmt.Printf("  Stories:   %d\n", activity.StoriesWithHashtag)
	fmt.Printf("  Posts:     %d\n", activity.PostsWithHashtag)
	fmt.Printf("  Likes:     %d\n", activity.TotalLikes)
}

func cmdLatestPost(args []string) {
	fs := flag.NewFlagSet("latest-post", flag.ExitOnError)
	url := fs.String("url", serverURL(), "Server URL")
	fs.Parse(args)

	c := client.New(*url)
	link, err := c.LatestPost()
	if err != nil {
		fatal(err)
	}
	fmt.Println(link)
}

func cmdCheckComment(args []string) {
	c, username, _ := queryFlags("check-comment", false, args)
	result, err := c.CheckComment(username)
	if err != nil {
		fatal(err)
	}
	printBool(result, fmt.Sprintf("%s commented on the latest post", username))
}

func cmdCheckFollow(args []string) {
	c, username, _ := queryFlags("check-follow", false, args)
	result, err := c.CheckFollow(username)
	if err != nil {
		fatal(err)
	}
	printBool(result, fmt.Sprintf("%s follows the target account", username))
}

func cmdStatus(args []string) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	url := fs.String("url", serverURL(), "Server URL")
	fs.Parse(args)

	c := client.New(*url)
	status, err := c.Status()
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Server: %s\n", *url)
	fmt.Printf("Status: %s\n", status)
}

func printBool(result bool, description string) {
	if result {
		fmt.Printf("✓ %s\n", description)
	} else {
		fmt.Printf("✗ not true: %s\n", description)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
