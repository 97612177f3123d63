package sensitiverequest

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChallenge() Challenge {
	issued := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return Challenge{
		GroupID:    "6f1c2a1e-0000-4000-8000-000000000001",
		EmployeeID: "emp-42",
		Code:       "123456",
		IssuedAt:   issued,
		ExpiresAt:  issued.Add(300 * time.Second),
	}
}

func TestChallengeStore_Issue(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewChallengeStore(rdb)
	c := testChallenge()
	data, _ := json.Marshal(c)

	mock.ExpectSet("otp:challenge:emp-42", data, ChallengeRetention).SetVal("OK")

	require.NoError(t, store.Issue(context.Background(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChallengeStore_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewChallengeStore(rdb)
		c := testChallenge()
		data, _ := json.Marshal(c)
		mock.ExpectGet("otp:challenge:emp-42").SetVal(string(data))

		got, err := store.Get(context.Background(), "emp-42")

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, c.GroupID, got.GroupID)
		assert.Equal(t, c.Code, got.Code)
		assert.True(t, c.ExpiresAt.Equal(got.ExpiresAt))
	})

	t.Run("missing is not an error", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewChallengeStore(rdb)
		mock.ExpectGet("otp:challenge:emp-42").RedisNil()

		got, err := store.Get(context.Background(), "emp-42")

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("redis error", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewChallengeStore(rdb)
		mock.ExpectGet("otp:challenge:emp-42").SetErr(errors.New("conn reset"))

		_, err := store.Get(context.Background(), "emp-42")

		assert.Error(t, err)
	})
}

func TestChallengeStore_Consume(t *testing.T) {
	c := testChallenge()

	t.Run("matching challenge is deleted", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewChallengeStore(rdb)
		mock.ExpectEvalSha(consumeScript.Hash(), []string{"otp:challenge:emp-42"}, c.GroupID, c.Code).SetVal(int64(1))

		ok, err := store.Consume(context.Background(), c)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already consumed", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewChallengeStore(rdb)
		mock.ExpectEvalSha(consumeScript.Hash(), []string{"otp:challenge:emp-42"}, c.GroupID, c.Code).SetVal(int64(0))

		ok, err := store.Consume(context.Background(), c)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestChallengeStore_Discard(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewChallengeStore(rdb)
	mock.ExpectDel("otp:challenge:emp-42").SetVal(1)

	require.NoError(t, store.Discard(context.Background(), "emp-42"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
