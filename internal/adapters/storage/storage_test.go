package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_SaveReport(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root, "")
	require.NoError(t, err)

	loc, err := store.SaveReport(context.Background(), "reports/user-1/inv-1.xlsx", "application/octet-stream", []byte("data"))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "reports", "user-1", "inv-1.xlsx"), loc)
	got, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), got)
}

func TestLocalStore_KeyCannotEscapeRoot(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(filepath.Join(root, "inner"), "https://files.example.com/")
	require.NoError(t, err)

	loc, err := store.SaveReport(context.Background(), "../../etc/passwd", "text/plain", []byte("x"))

	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/etc/passwd", loc)
	_, err = os.Stat(filepath.Join(root, "inner", "etc", "passwd"))
	assert.NoError(t, err)
}

func TestLocalStore_CancelledContext(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.SaveReport(ctx, "a.xlsx", "", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestS3Store_Location(t *testing.T) {
	withURL := &S3Store{bucket: "invoices", publicURL: "https://pub.example.r2.dev"}
	assert.Equal(t, "https://pub.example.r2.dev/reports/a.xlsx", withURL.Location("/reports/a.xlsx"))

	bare := &S3Store{bucket: "invoices"}
	assert.Equal(t, "s3://invoices/reports/a.xlsx", bare.Location("reports/a.xlsx"))
}

func TestNewS3Store_StaticCredentials(t *testing.T) {
	store, err := NewS3Store(context.Background(), S3Options{
		Bucket:    "invoices",
		Region:    "auto",
		Endpoint:  "http://localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
	})
	require.NoError(t, err)
	assert.NotNil(t, store.client)
	assert.Equal(t, "invoices", store.bucket)
}
