package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/decom-ledger/internal/domain"
	"github.com/pkordes/decom-ledger/internal/repo"
)

// drillFixture returns an unsaved by-time record with sensible defaults.
// Callers can override individual fields after calling this function.
func drillFixture() domain.Equipment {
	return domain.NewByTime("Drill", "12-345", "2020/01/01", "2021/01/01", "2022/01/01")
}

func pressFixture() domain.Equipment {
	return domain.NewByReason("Press", "99-000", "2019/05/05", "2020/05/05", "2021/05/05", "worn out")
}

// testRecordStore runs the behaviour every RecordStore must share.
// newStore must return an empty store. Identifier assertions are relative
// because a Postgres sequence does not restart between tests.
func testRecordStore(t *testing.T, newStore func(t *testing.T) repo.RecordStore) {
	ctx := context.Background()

	t.Run("save assigns increasing ids", func(t *testing.T) {
		s := newStore(t)

		first, err := s.Save(ctx, drillFixture())
		require.NoError(t, err)
		second, err := s.Save(ctx, pressFixture())
		require.NoError(t, err)

		assert.NotZero(t, first.ID)
		assert.Equal(t, first.ID+1, second.ID)
	})

	t.Run("get round trips every field", func(t *testing.T) {
		s := newStore(t)

		saved, err := s.Save(ctx, pressFixture())
		require.NoError(t, err)

		got, err := s.Get(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, saved, got)

		want := pressFixture()
		want.ID = saved.ID
		assert.Equal(t, want, got)
	})

	t.Run("get absent id", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Get(ctx, 4242)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("save with id overwrites in place", func(t *testing.T) {
		s := newStore(t)

		saved, err := s.Save(ctx, drillFixture())
		require.NoError(t, err)

		changed := domain.NewByTime("Hammer Drill", "12-346", "2020/02/02", "2021/02/02", "2022/02/02")
		changed.ID = saved.ID
		updated, err := s.Save(ctx, changed)
		require.NoError(t, err)
		assert.Equal(t, changed, updated)

		all, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Hammer Drill", all[0].Name)
	})

	t.Run("save with unknown id", func(t *testing.T) {
		s := newStore(t)

		ghost := drillFixture()
		ghost.ID = 4242
		_, err := s.Save(ctx, ghost)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		all, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("delete removes exactly one record", func(t *testing.T) {
		s := newStore(t)

		drill, err := s.Save(ctx, drillFixture())
		require.NoError(t, err)
		press, err := s.Save(ctx, pressFixture())
		require.NoError(t, err)

		ok, err := s.Delete(ctx, drill.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.Delete(ctx, drill.ID)
		require.NoError(t, err)
		assert.False(t, ok, "second delete of the same id")

		all, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, press.ID, all[0].ID)
	})

	t.Run("delete never assigned id", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Save(ctx, drillFixture())
		require.NoError(t, err)

		ok, err := s.Delete(ctx, 4242)
		require.NoError(t, err)
		assert.False(t, ok)

		all, err := s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		s := newStore(t)

		first, err := s.Save(ctx, drillFixture())
		require.NoError(t, err)
		second, err := s.Save(ctx, pressFixture())
		require.NoError(t, err)

		_, err = s.Delete(ctx, second.ID)
		require.NoError(t, err)

		third, err := s.Save(ctx, drillFixture())
		require.NoError(t, err)
		assert.Greater(t, third.ID, second.ID)
		assert.NotEqual(t, first.ID, third.ID)
	})
}
