package note

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// cache failures are logged and otherwise ignored, the database stays the source of truth.
//
// Every eviction bumps the note's version key. A read samples the version before going to the
// database and only writes the row back while the version is unchanged, so a row read before
// a concurrent save or delete is never cached after that write evicted it.

var errStaleRead = errors.New("note changed since it was read")

func (s *Store) fromCache(ctx context.Context, id uint64) (Note, bool) {
	if s.cache == nil {
		return Note{}, false
	}
	key := fmt.Sprintf(noteKey, id)

	tcCtx, tcCancel := context.WithTimeout(ctx, s.cfg.CacheOperationTimeout)
	defer tcCancel()
	get, err := s.cache.Get(tcCtx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Errorw("failure to get note from cache", "id", id, "ERROR", err)
		}
		return Note{}, false
	}

	var n Note
	if err := json.Unmarshal([]byte(get), &n); err != nil {
		s.log.Errorw("error parsing cached note", "key", key, "ERROR", err)
		return Note{}, false
	}
	return n, true
}

// cacheVersion returns the current version of the note, false when the cache can't be written
func (s *Store) cacheVersion(ctx context.Context, id uint64) (string, bool) {
	if s.cache == nil {
		return "", false
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, s.cfg.CacheOperationTimeout)
	defer tcCancel()
	v, err := s.cache.Get(tcCtx, fmt.Sprintf(versionKey, id)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		s.log.Errorw("failure to get note version from cache", "id", id, "ERROR", err)
		return "", false
	}
	return v, true
}

// toCache stores n if its version is still the one sampled before the database read
func (s *Store) toCache(ctx context.Context, n Note, version string) {
	if s.cache == nil {
		return
	}
	key := fmt.Sprintf(noteKey, n.ID)
	vKey := fmt.Sprintf(versionKey, n.ID)

	data, err := json.Marshal(n)
	if err != nil {
		s.log.Errorw("error parsing note to cache", "key", key, "ERROR", err)
		return
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, s.cfg.CacheOperationTimeout)
	defer tcCancel()
	err = s.cache.Watch(tcCtx, func(tx *redis.Tx) error {
		current, err := tx.Get(tcCtx, vKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleRead
		}
		_, err = tx.TxPipelined(tcCtx, func(pipe redis.Pipeliner) error {
			pipe.Set(tcCtx, key, string(data), s.cfg.CacheTTL)
			return nil
		})
		return err
	}, vKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleRead), errors.Is(err, redis.TxFailedErr):
		s.log.Debugw("note not cached, changed while reading", "id", n.ID)
	default:
		s.log.Errorw("failure to set note into cache", "id", n.ID, "ERROR", err)
	}
}

func (s *Store) evict(ctx context.Context, id uint64) {
	if s.cache == nil {
		return
	}
	vKey := fmt.Sprintf(versionKey, id)

	tcCtx, tcCancel := context.WithTimeout(ctx, s.cfg.CacheOperationTimeout)
	defer tcCancel()
	_, err := s.cache.TxPipelined(tcCtx, func(pipe redis.Pipeliner) error {
		pipe.Incr(tcCtx, vKey)
		// a version key outlives any note cached under it
		if s.cfg.CacheTTL > 0 {
			pipe.Expire(tcCtx, vKey, 2*s.cfg.CacheTTL)
		}
		pipe.Del(tcCtx, fmt.Sprintf(noteKey, id))
		return nil
	})
	if err != nil {
		s.log.Errorw("failure to evict note from cache", "id", id, "ERROR", err)
	}
}
