package highlight

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truepedia.io/truepedia/ent"
	"truepedia.io/truepedia/internal/testutil"
)

func TestServiceSaveValidation(t *testing.T) {
	t.Parallel()

	svc := NewService(nil)

	_, _, err := svc.Save(context.Background(), "Title", "en", "", "")
	assert.ErrorIs(t, err, ErrEmptyFragment)

	_, _, err = svc.Save(context.Background(), "Title", "en", "   ", "")
	assert.ErrorIs(t, err, ErrEmptyFragment)

	_, _, err = svc.Save(context.Background(), "Title", "en", strings.Repeat("a", MaxFragmentLen+1), "")
	assert.ErrorIs(t, err, ErrFragmentTooLong)
}

func TestServiceSaveAndList(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "highlight_save_list")
	svc := NewService(client)
	ctx := context.Background()

	first, created, err := svc.Save(ctx, "Albert Einstein", "en", "theory of relativity", "Career")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "Albert Einstein_en", first.ArticleKey)
	assert.Equal(t, "theory of relativity", first.Fragment)
	assert.Equal(t, "Career", first.Section)

	// Saving the same fragment again is idempotent.
	again, created, err := svc.Save(ctx, "Albert Einstein", "en", "theory of relativity", "Career")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	_, _, err = svc.Save(ctx, "Albert Einstein", "en", "Nobel Prize", "")
	require.NoError(t, err)

	rows, err := svc.List(ctx, "Albert Einstein", "en")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "theory of relativity", rows[0].Fragment, "list is ordered by creation time")

	// Other articles are unaffected.
	other, err := svc.List(ctx, "Marie Curie", "en")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestServiceSaveNormalizesTitleWhitespace(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "highlight_normalize")
	svc := NewService(client)
	ctx := context.Background()

	first, _, err := svc.Save(ctx, "Albert Einstein", "en", "patent office", "")
	require.NoError(t, err)

	dup, created, err := svc.Save(ctx, "  Albert   Einstein ", "en", "patent office", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, dup.ID)
}

func TestServiceFragments(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "highlight_fragments")
	svc := NewService(client)
	ctx := context.Background()

	for _, frag := range []string{"alpha", "beta"} {
		_, _, err := svc.Save(ctx, "Article", "en", frag, "")
		require.NoError(t, err)
	}

	frags, err := svc.Fragments(ctx, "Article", "en")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, frags)
}

func TestServiceDelete(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "highlight_delete")
	svc := NewService(client)
	ctx := context.Background()

	h, _, err := svc.Save(ctx, "Article", "en", "to be removed", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, h.ID))

	err = svc.Delete(ctx, h.ID)
	assert.True(t, ent.IsNotFound(err))

	rows, err := svc.List(ctx, "Article", "en")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
