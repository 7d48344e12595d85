// Package app holds the application layer: the comment retrieval pipeline
// that orchestrates storage lookups and sentiment scoring per request.
package app
