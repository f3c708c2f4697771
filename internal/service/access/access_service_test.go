package access

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lucas-Aron/Retail/internal/dto"
	"github.com/Lucas-Aron/Retail/internal/store"
	"github.com/Lucas-Aron/Retail/internal/testutil"
)

func TestAccessService_ListMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	ids, clk := testutil.NewAllocator()
	svc := NewAccessService(testutil.NewStore(t), ids)

	var logged []string
	for _, name := range []string{"Budi", "Sari", "Andi"} {
		entry, err := svc.Log(ctx, dto.LogAccessDto{Employee: name})
		require.NoError(t, err)
		assert.Regexp(t, `^EMP-\d{14}$`, entry.ID)
		logged = append(logged, entry.ID)
		clk.Advance(time.Minute)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{logged[2], logged[1], logged[0]}, []string{list[0].ID, list[1].ID, list[2].ID})
	assert.Equal(t, "Andi", list[0].Employee)
	assert.True(t, list[0].AccessedAt.After(list[1].AccessedAt))
	assert.True(t, list[1].AccessedAt.After(list[2].AccessedAt))
}

// Order follows the access time, not the insertion order.
func TestAccessService_ExplicitTimes(t *testing.T) {
	ctx := context.Background()
	ids, clk := testutil.NewAllocator()
	svc := NewAccessService(testutil.NewStore(t), ids)

	t1 := testutil.BaseTime.Add(-3 * time.Hour)
	t2 := testutil.BaseTime.Add(-2 * time.Hour)
	t3 := testutil.BaseTime.Add(-1 * time.Hour)

	for _, at := range []time.Time{t2, t3, t1} {
		at := at
		_, err := svc.Log(ctx, dto.LogAccessDto{Employee: "Budi", AccessedAt: &at})
		require.NoError(t, err)
		clk.Advance(time.Second)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, list[0].AccessedAt.Equal(t3))
	assert.True(t, list[1].AccessedAt.Equal(t2))
	assert.True(t, list[2].AccessedAt.Equal(t1))
}

func TestAccessService_DefaultsToNow(t *testing.T) {
	ctx := context.Background()
	ids, _ := testutil.NewAllocator()
	svc := NewAccessService(testutil.NewStore(t), ids)

	entry, err := svc.Log(ctx, dto.LogAccessDto{Employee: "  Sari "})
	require.NoError(t, err)
	assert.Equal(t, "Sari", entry.Employee)
	assert.True(t, entry.AccessedAt.Equal(testutil.BaseTime))
	assert.Equal(t, "EMP-20240517093000", entry.ID)
}

func TestAccessService_EmptyLogAndMissingName(t *testing.T) {
	ctx := context.Background()
	ids, _ := testutil.NewAllocator()
	st := testutil.NewStore(t)
	svc := NewAccessService(st, ids)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Log(ctx, dto.LogAccessDto{Employee: ""})
	assert.ErrorIs(t, err, store.ErrConstraint)

	require.NoError(t, st.Close())
	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, store.ErrStoreClosed)
}
