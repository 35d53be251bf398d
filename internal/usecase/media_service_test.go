package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nkoroi/county-league/internal/domain/media"
	"github.com/nkoroi/county-league/internal/infrastructure/repository/memory"
	"github.com/nkoroi/county-league/internal/platform/blobstore"
	"github.com/nkoroi/county-league/internal/usecase"
)

func newMediaService(t *testing.T, maxBytes int64) (*usecase.MediaService, *memory.Store, string) {
	t.Helper()
	dir := t.TempDir()
	blobs, err := blobstore.New(dir, maxBytes)
	require.NoError(t, err)
	store := memory.NewStore()
	return usecase.NewMediaService(store.Media(), blobs), store, dir
}

func TestMediaUploadStoresFileAndRecord(t *testing.T) {
	ctx := context.Background()
	svc, store, dir := newMediaService(t, 1<<20)

	item, err := svc.Upload(ctx, usecase.UploadMediaInput{
		FileName: "derby report.pdf",
		Content:  strings.NewReader("not really a pdf"),
		Caption:  "Gusii FC v Shabana FC",
	})
	require.NoError(t, err)
	require.Equal(t, media.TypePDF, item.FileType)
	require.True(t, strings.HasPrefix(item.FileRef, "uploads/"))
	require.True(t, strings.HasSuffix(item.FileRef, "_derby_report.pdf"))

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(item.FileRef, "uploads/")))
	require.NoError(t, err)
	require.Equal(t, "not really a pdf", string(data))

	got, err := store.Media().GetByID(ctx, item.ID)
	require.NoError(t, err)
	require.Equal(t, item.FileRef, got.FileRef)
}

func TestMediaUploadRejectsDisallowedExtension(t *testing.T) {
	ctx := context.Background()
	svc, _, dir := newMediaService(t, 1<<20)

	// Video is outside the allow-list too, not just the obviously hostile.
	for _, name := range []string{"payload.exe", "derby highlights.mp4"} {
		_, err := svc.Upload(ctx, usecase.UploadMediaInput{
			FileName: name,
			Content:  strings.NewReader("nope"),
		})
		require.ErrorIs(t, err, usecase.ErrValidation, name)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "rejected upload must not leave a file behind")
}

func TestMediaUploadEnforcesSizeLimit(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newMediaService(t, 16)

	matchID := int64(7)
	_, err := svc.Upload(ctx, usecase.UploadMediaInput{
		FileName: "crest.png",
		Content:  strings.NewReader(strings.Repeat("x", 64)),
		MatchID:  &matchID,
	})
	require.ErrorIs(t, err, usecase.ErrValidation)

	items, err := store.Media().ListByMatch(ctx, matchID)
	require.NoError(t, err)
	require.Empty(t, items)
}
