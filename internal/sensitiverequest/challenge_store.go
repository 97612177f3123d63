package sensitiverequest

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	challengeKeyPrefix = "otp:challenge:"
	// ChallengeRetention bounds how long an unverified challenge is kept.
	// Expiry itself is checked against ExpiresAt at verification time.
	ChallengeRetention = 10 * time.Minute
)

func challengeKey(employeeID string) string {
	return challengeKeyPrefix + employeeID
}

// Challenge is the single active OTP of an employee.
type Challenge struct {
	GroupID    string    `json:"group_id"`
	EmployeeID string    `json:"employee_id"`
	Code       string    `json:"code"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// consumeScript deletes the challenge only if it still belongs to the
// same group with the same code.
var consumeScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
	return 0
end
local c = cjson.decode(raw)
if c.group_id == ARGV[1] and c.code == ARGV[2] then
	redis.call('DEL', KEYS[1])
	return 1
end
return 0
`)

//go:generate mockgen -source=challenge_store.go -destination=mock/challenge_store_mock.go -package=mock
type ChallengeStore interface {
	// Issue replaces any previous challenge of the employee.
	Issue(ctx context.Context, c Challenge) error
	// Get returns nil when the employee has no challenge.
	Get(ctx context.Context, employeeID string) (*Challenge, error)
	Consume(ctx context.Context, c Challenge) (bool, error)
	Discard(ctx context.Context, employeeID string) error
}

type redisChallengeStore struct {
	rdb       *redis.Client
	retention time.Duration
}

func NewChallengeStore(rdb *redis.Client, retention ...time.Duration) ChallengeStore {
	r := ChallengeRetention
	if len(retention) > 0 && retention[0] > 0 {
		r = retention[0]
	}
	return &redisChallengeStore{rdb: rdb, retention: r}
}

func (s *redisChallengeStore) Issue(ctx context.Context, c Challenge) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, challengeKey(c.EmployeeID), data, s.retention).Err()
}

func (s *redisChallengeStore) Get(ctx context.Context, employeeID string) (*Challenge, error) {
	raw, err := s.rdb.Get(ctx, challengeKey(employeeID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var c Challenge
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *redisChallengeStore) Consume(ctx context.Context, c Challenge) (bool, error) {
	n, err := consumeScript.Run(ctx, s.rdb, []string{challengeKey(c.EmployeeID)}, c.GroupID, c.Code).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *redisChallengeStore) Discard(ctx context.Context, employeeID string) error {
	return s.rdb.Del(ctx, challengeKey(employeeID)).Err()
}
