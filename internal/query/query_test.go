package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadhub-dev/threadhub/internal/errors"
)

func values(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Set(pairs[i], pairs[i+1])
	}
	return v
}

func TestParseFilter(t *testing.T) {
	t.Run("absent inputs impose no constraint", func(t *testing.T) {
		f := ParseFilter(values())
		assert.Nil(t, f.UserId)
		assert.Nil(t, f.CategoryId)
	})

	t.Run("both constraints form a conjunction", func(t *testing.T) {
		f := ParseFilter(values("user_id", "5", "category_id", "2"))
		require.NotNil(t, f.UserId)
		require.NotNil(t, f.CategoryId)
		assert.EqualValues(t, 5, *f.UserId)
		assert.EqualValues(t, 2, *f.CategoryId)
	})

	t.Run("malformed values are treated as absent", func(t *testing.T) {
		f := ParseFilter(values("user_id", "abc", "category_id", "-3"))
		assert.Nil(t, f.UserId)
		assert.Nil(t, f.CategoryId)
	})
}

func TestParseSort(t *testing.T) {
	t.Run("defaults to id ascending", func(t *testing.T) {
		s, err := ParseSort(values())
		require.NoError(t, err)
		assert.Equal(t, Sort{Field: SortById, Desc: false}, s)
	})

	t.Run("allow-listed field with desc order", func(t *testing.T) {
		s, err := ParseSort(values("sort_by", "created_at", "order", "desc"))
		require.NoError(t, err)
		assert.Equal(t, Sort{Field: SortByCreatedAt, Desc: true}, s)
	})

	t.Run("unknown order falls back to asc", func(t *testing.T) {
		s, err := ParseSort(values("sort_by", "title", "order", "sideways"))
		require.NoError(t, err)
		assert.False(t, s.Desc)
	})

	t.Run("unknown sort field is rejected and named", func(t *testing.T) {
		_, err := ParseSort(values("sort_by", "karma"))
		require.Error(t, err)
		assert.Equal(t, errors.Validation, errors.KindOf(err))
		assert.Contains(t, err.Error(), "karma")
	})
}

func TestParsePagination(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p, err := ParsePagination(values(), 10, 100)
		require.NoError(t, err)
		assert.Equal(t, Pagination{Page: 1, PerPage: 10}, p)
		assert.Equal(t, 0, p.Offset())
	})

	t.Run("explicit values and offset", func(t *testing.T) {
		p, err := ParsePagination(values("page", "3", "per_page", "25"), 10, 100)
		require.NoError(t, err)
		assert.Equal(t, Pagination{Page: 3, PerPage: 25}, p)
		assert.Equal(t, 50, p.Offset())
	})

	t.Run("per_page is clamped to the maximum", func(t *testing.T) {
		p, err := ParsePagination(values("per_page", "5000"), 10, 100)
		require.NoError(t, err)
		assert.Equal(t, 100, p.PerPage)
	})

	for _, bad := range []string{"0", "-1", "ten", "1.5"} {
		t.Run("rejects page "+bad, func(t *testing.T) {
			_, err := ParsePagination(values("page", bad), 10, 100)
			require.Error(t, err)
			assert.Equal(t, errors.Validation, errors.KindOf(err))
		})
		t.Run("rejects per_page "+bad, func(t *testing.T) {
			_, err := ParsePagination(values("per_page", bad), 10, 100)
			require.Error(t, err)
			assert.Equal(t, errors.Validation, errors.KindOf(err))
		})
	}
}

func TestParseList(t *testing.T) {
	q, err := ParseList(values("user_id", "5", "sort_by", "title", "order", "desc", "page", "2"), 10, 100)
	require.NoError(t, err)
	require.NotNil(t, q.Filter.UserId)
	assert.EqualValues(t, 5, *q.Filter.UserId)
	assert.Equal(t, Sort{Field: SortByTitle, Desc: true}, q.Sort)
	assert.Equal(t, Pagination{Page: 2, PerPage: 10}, q.Pagination)
	assert.Equal(t, Relations{User: true, Category: true, Replies: false}, q.Relations)
}

func TestParseListWithReplies(t *testing.T) {
	q, err := ParseList(values("with_replies", "true"), 10, 100)
	require.NoError(t, err)
	assert.True(t, q.Relations.Replies)

	q, err = ParseList(values("with_replies", "nope"), 10, 100)
	require.NoError(t, err)
	assert.False(t, q.Relations.Replies)
}

func TestParseListPropagatesSortError(t *testing.T) {
	_, err := ParseList(values("sort_by", "owner"), 10, 100)
	require.Error(t, err)
	assert.Equal(t, errors.Validation, errors.KindOf(err))
}
