// Package http provides the HTTP handlers of the file server.
//
// Every filesystem route maps one request onto one filesystem operation and
// answers with JSON. Operation failures always answer 500 with {"error": msg}.
//
// Endpoints:
//   - Service: / and /health
//   - Listing: /list and /list/:directory
//   - Files: /create-file/:fileName, /read-file/:fileName, /update-file/:fileName
//   - Directories: /create-dir/:directory
//   - Removal: /delete/:target
//   - Search: /search/:searchTerm
//
// Path parameters are unescaped after routing, so a%2Fb.txt addresses the
// file b.txt inside directory a.
//
// Example Usage:
//
//	handlers := http.NewHandlers(provider, http.NewHandlerMetrics(metrics), logger)
//	router.GET("/read-file/:fileName", handlers.ReadFile)
package http
