package redisClient

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis"
)

// matchSetTTL bounds staleness of the per-user match sets; the database
// stays the source of truth.
const matchSetTTL = 30 * 24 * time.Hour

type RedisClient struct {
	Client *redis.Client
}

func NewRedis(client *redis.Client) *RedisClient {
	return &RedisClient{Client: client}
}

func (r *RedisClient) Ping() error {
	return r.Client.Ping().Err()
}

// MatchRef is one entry of a user's match set: the match row id plus the
// counterpart user.
type MatchRef struct {
	MatchID uint
	UserID  uint
}

func (m MatchRef) encode() string {
	return strconv.FormatUint(uint64(m.MatchID), 10) + ":" + strconv.FormatUint(uint64(m.UserID), 10)
}

func decodeMatchRef(s string) (MatchRef, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return MatchRef{}, fmt.Errorf("malformed match ref %q", s)
	}
	matchID, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return MatchRef{}, err
	}
	userID, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return MatchRef{}, err
	}
	return MatchRef{MatchID: uint(matchID), UserID: uint(userID)}, nil
}

func matchSetKey(userID uint) string {
	return "user:" + strconv.FormatUint(uint64(userID), 10) + ":match:profiles"
}

// GetMatchRefs returns the cached match set for userID. found is false
// on a cache miss.
func (r *RedisClient) GetMatchRefs(userID uint) (refs []MatchRef, found bool, err error) {
	key := matchSetKey(userID)

	exists, err := r.Client.Exists(key).Result()
	if err != nil {
		return nil, false, err
	}
	if exists == 0 {
		return nil, false, nil
	}

	members, err := r.Client.SMembers(key).Result()
	if err != nil {
		return nil, false, err
	}
	for _, m := range members {
		ref, err := decodeMatchRef(m)
		if err != nil {
			return nil, false, err
		}
		refs = append(refs, ref)
	}
	return refs, true, nil
}

// SetMatchRefs replaces the cached match set for userID.
func (r *RedisClient) SetMatchRefs(userID uint, refs []MatchRef) error {
	key := matchSetKey(userID)

	if err := r.Client.Del(key).Err(); err != nil {
		return err
	}
	for _, ref := range refs {
		if err := r.Client.SAdd(key, ref.encode()).Err(); err != nil {
			return err
		}
	}
	return r.Client.Expire(key, matchSetTTL).Err()
}

// AppendMatchRef adds one match to an existing cached set. A missing set
// is left missing so the next read repopulates from the database.
func (r *RedisClient) AppendMatchRef(userID uint, ref MatchRef) error {
	key := matchSetKey(userID)

	exists, err := r.Client.Exists(key).Result()
	if err != nil || exists == 0 {
		return err
	}
	if err := r.Client.SAdd(key, ref.encode()).Err(); err != nil {
		return err
	}
	return r.Client.Expire(key, matchSetTTL).Err()
}
