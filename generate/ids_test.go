package generate

import (
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/xutil/xuerrors"
)

func TestUUID(t *testing.T) {
	id, err := uuid.Parse(UUID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
	assert.Equal(t, uuid.RFC4122, id.Variant())
}

func TestUUIDs(t *testing.T) {
	ids, err := UUIDs(50)
	require.NoError(t, err)
	require.Len(t, ids, 50)

	seen := make(map[string]bool, len(ids))
	for _, s := range ids {
		assert.False(t, seen[s], "duplicate %s", s)
		seen[s] = true
	}
}

func TestBulkCountBounds(t *testing.T) {
	for _, n := range []int{0, -1, MaxBulk + 1} {
		_, err := UUIDs(n)
		assert.ErrorIs(t, err, xuerrors.ErrInvalidInput, "uuid count %d", n)
		_, err = ULIDs(n)
		assert.ErrorIs(t, err, xuerrors.ErrInvalidInput, "ulid count %d", n)
	}

	ids, err := ULIDs(MaxBulk)
	require.NoError(t, err)
	assert.Len(t, ids, MaxBulk)
}

func TestULIDsSorted(t *testing.T) {
	ids, err := ULIDs(200)
	require.NoError(t, err)
	assert.True(t, sort.StringsAreSorted(ids))
	for _, id := range ids {
		assert.Len(t, id, 26)
	}
}

func TestULIDTime(t *testing.T) {
	before := time.Now().UTC().Truncate(time.Millisecond)
	ts, err := ULIDTime(ULID())
	require.NoError(t, err)
	assert.False(t, ts.Before(before))
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
	assert.Equal(t, time.UTC, ts.Location())

	ts, err = ULIDTime("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.NoError(t, err)
	assert.Equal(t, int64(1469922850259), ts.UnixMilli())
}

func TestULIDTimeInvalid(t *testing.T) {
	for _, s := range []string{"", "not-a-ulid", "01ARZ3NDEKTSV4RRFFQ69G5FAU!"} {
		_, err := ULIDTime(s)
		assert.ErrorIs(t, err, xuerrors.ErrInvalidInput, s)
	}
}
