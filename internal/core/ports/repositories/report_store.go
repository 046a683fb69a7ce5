package repositories

import "context"

// ReportStore archives exported report files.
type ReportStore interface {
	// SaveReport stores data under key and returns where it can be fetched from.
	SaveReport(ctx context.Context, key string, contentType string, data []byte) (string, error)
}
