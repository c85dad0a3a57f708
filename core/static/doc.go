// Package static serves files from a directory on the local filesystem with
// byte-range support.
//
// A Server maps the part of the request path below a route prefix onto its
// serving root, rejects anything that escapes the root, and answers with the
// whole file, a single range (206) or a multipart/byteranges body (206).
// Requests it cannot serve are declined: Serve returns an error matching
// ErrNotHandled and writes nothing, leaving the surrounding router free to
// fall through to another handler or render a 404.
//
// # Basic Usage
//
//	srv, err := static.New("./public",
//		static.WithExtensions("html", "htm"),
//		static.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//
//	// With the handler package; declined requests become 404 responses.
//	http.Handle("/assets/", handler.ToHTTP(static.Mount[*handler.RequestContext](srv, "/assets"), nil))
//
//	// Or as a plain http.Handler with a custom fallback.
//	http.Handle("/", srv.Handler(static.FixedPrefix("/"), notFoundPage))
//
// # Resolution
//
// For a request path "/assets/css/app.css" under prefix "/assets", the
// candidate is "<root>/css/app.css". The remainder is percent-decoded; if
// decoding fails the raw text is used. Paths ending in "/" get "index.html"
// appended when index serving is on (the default).
//
// When the candidate does not exist, each configured extension is tried in
// order ("<candidate>.html", "<candidate>.htm", ...). The first existing
// regular file wins.
//
// A candidate that is a directory is answered with a 301 redirect to the
// slash-terminated URL, query string included, unless redirects are
// disabled or the request already ends in "/".
//
// # Ranges
//
// Range headers are honoured for GET only. Invalid specs are dropped; if no
// valid spec remains the full file is sent with status 200. Multi-range
// bodies use a fresh random boundary per response.
//
// # Security
//
// Every candidate, including extension fallbacks, is made absolute and must
// lie at or below the absolute root. The comparison is on path components,
// so "/srv/www-evil" is not inside "/srv/www". Symbolic links are not
// resolved.
//
// # Configuration
//
// Config carries env tags for use with the config package:
//
//	var cfg static.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	srv, err := static.NewFromConfig(cfg, static.WithLogger(log))
package static
