package book

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

func TestStaleBooks(t *testing.T) {
	ctx := context.Background()
	staleAfter := 30 * 24 * time.Hour

	t.Run("从未售出和久未售出的图书都算呆滞", func(t *testing.T) {
		bookRepo := newFakeBookRepo()

		neverSold := mustBook(t, bookRepo, "《从未售出》", 5, 1000)

		recentlySold := mustBook(t, bookRepo, "《刚售出》", 5, 1000)
		require.NoError(t, recentlySold.Sell(1, time.Now().Add(-time.Hour)))
		require.NoError(t, bookRepo.Update(ctx, recentlySold))

		longAgoSold := mustBook(t, bookRepo, "《久未售出》", 5, 1000)
		require.NoError(t, longAgoSold.Sell(1, time.Now().Add(-60*24*time.Hour)))
		require.NoError(t, bookRepo.Update(ctx, longAgoSold))

		uc := NewStaleBooksUseCase(bookRepo, staleAfter)
		stale, err := uc.Execute(ctx, "")
		require.NoError(t, err)

		ids := make([]uint, len(stale))
		for i, b := range stale {
			ids[i] = b.ID
		}
		assert.Contains(t, ids, neverSold.ID)
		assert.Contains(t, ids, longAgoSold.ID)
		assert.NotContains(t, ids, recentlySold.ID)
	})

	t.Run("非法排序键被拒绝", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		uc := NewStaleBooksUseCase(bookRepo, staleAfter)

		_, err := uc.Execute(ctx, "UNKNOWN")
		require.Error(t, err)
		assert.Equal(t, apperrors.KindInvalidArgument, apperrors.KindOf(err))
	})
}
