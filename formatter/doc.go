// Package formatter renders batch alignment summaries.
//
// This package is organized into:
// - json.go: JSON serialization of the batch summary
// - text.go: human-readable terminal report with colored statuses
package formatter
