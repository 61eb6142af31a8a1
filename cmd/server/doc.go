// Package main is the entry point for the file server.
//
// The server maps HTTP routes onto filesystem operations below a root
// directory: listing, creating, reading, updating and deleting files and
// directories, plus recursive search by file name.
//
// Configuration:
//   - Defaults (port 3000, working directory as root)
//   - YAML file named by -config or CONFIG_FILE
//   - Environment variables (12-factor), override the file
//   - CLI flags, override everything
//
// Usage:
//
//	# Serve the current directory on :3000
//	./server
//
//	# Serve /srv/files on :8080 with colored debug logs
//	./server -port 8080 -root /srv/files -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
