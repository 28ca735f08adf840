package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Claudio-Lins/amigo-tvde-backend/types"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCache_GetSet(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	cache := NewReportCache(client)

	report := &types.ShiftReport{
		ShiftID:       "shift-1",
		Distance:      150,
		GrossEarnings: 120.50,
	}
	payload, err := json.Marshal(report)
	require.NoError(t, err)

	key := "report:user-123:shift:shift-1"

	t.Run("miss then fill", func(t *testing.T) {
		mock.ExpectGet(key).RedisNil()

		var dest types.ShiftReport
		hit, err := cache.Get(ctx, "user-123", "shift", "shift-1", &dest)
		require.NoError(t, err)
		assert.False(t, hit)

		mock.ExpectSet(key, payload, defaultReportTTL).SetVal("OK")
		cache.Set(ctx, "user-123", "shift", "shift-1", report)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hit decodes the cached report", func(t *testing.T) {
		mock.ExpectGet(key).SetVal(string(payload))

		var dest types.ShiftReport
		hit, err := cache.Get(ctx, "user-123", "shift", "shift-1", &dest)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, report.GrossEarnings, dest.GrossEarnings)
	})

	t.Run("redis failure degrades to a miss", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(assert.AnError)

		var dest types.ShiftReport
		hit, err := cache.Get(ctx, "user-123", "shift", "shift-1", &dest)
		require.NoError(t, err)
		assert.False(t, hit)
	})
}

func TestReportCache_InvalidateUser(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	cache := NewReportCache(client)

	keys := []string{
		"report:user-123:shift:shift-1",
		"report:user-123:period:period-1",
	}

	mock.ExpectScan(0, "report:user-123:*", 100).SetVal(keys, 0)
	mock.ExpectDel(keys...).SetVal(int64(len(keys)))

	cache.InvalidateUser(ctx, "user-123")
	assert.NoError(t, mock.ExpectationsWereMet())
}
