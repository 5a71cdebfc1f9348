// Package httpapp provides the HTTP server for the mock social API.
//
//	@title						Mock Social API
//	@version					1.0
//	@description				Canned social-media read API for mission verification.
//	@description
//	@description				The service answers hashtag-activity queries (stories, posts,
//	@description				daily aggregates) and follow/comment checks from a fixed
//	@description				in-memory account directory. No real social network is
//	@description				contacted; responses depend only on the loaded fixture and
//	@description				the current time in the Europe/Paris reference timezone.
//	@description
//	@description				`/upstar/{path}` is an unrelated pass-through proxy to the
//	@description				upstream mission host.
//
//	@license.name				MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@tag.name					Status
//	@tag.description			Liveness and version information.
//
//	@tag.name					Stories
//	@tag.description			Story existence and counting queries.
//
//	@tag.name					Posts
//	@tag.description			Post counting and latest-post queries.
//
//	@tag.name					Activity
//	@tag.description			Aggregated engagement over a time window.
//
//	@tag.name					Comments
//	@tag.description			Comment checks against the target account's latest post.
//
//	@tag.name					Follows
//	@tag.description			Follow checks against the target account.
//
//	@tag.name					Admin
//	@tag.description			Fixture management. Requires the X-Admin-Secret header.
package httpapp
