package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

const (
	keyPrefix    = "seat-booking:availability:"
	genPrefix    = "seat-booking:availability-gen:"
	genAllKey    = "seat-booking:availability-gen-all"
	genTTL       = 7 * 24 * time.Hour
	scanCount    = 100
	storedMarker = int64(1)
)

// setIfUnchanged пишет снимок, только если поколения даты и инвентаря не сдвинулись
const setIfUnchanged = `
local date = tonumber(redis.call('GET', KEYS[2]) or '0')
local all = tonumber(redis.call('GET', KEYS[3]) or '0')
if date ~= tonumber(ARGV[1]) or all ~= tonumber(ARGV[2]) then
  return 0
end
redis.call('SET', KEYS[1], ARGV[3], 'PX', ARGV[4])
return 1
`

var (
	ErrCacheRead  = errors.New("availability.cache: failed to read snapshot")
	ErrCacheWrite = errors.New("availability.cache: failed to write snapshot")
)

// Snapshot доступность мест на дату
type Snapshot struct {
	Total int           `json:"total"`
	Seats []domain.Seat `json:"seats"`
}

// Version поколения даты и инвентаря на момент чтения из БД
type Version struct {
	Date int64
	All  int64
}

// Cache кэш снимков доступности в Redis, ключ на дату
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewCache(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Key ключ снимка для даты
func Key(date time.Time) string {
	return keyPrefix + date.Format(domain.DateFormat)
}

func genKey(date time.Time) string {
	return genPrefix + date.Format(domain.DateFormat)
}

// Version читает текущие поколения; снимать до чтения из БД
func (c *Cache) Version(ctx context.Context, date time.Time) (Version, error) {
	vals, err := c.client.MGet(ctx, genKey(date), genAllKey).Result()
	if err != nil {
		return Version{}, fmt.Errorf("%w: version: %v", ErrCacheRead, err)
	}
	dateGen, err := parseGen(vals[0])
	if err != nil {
		return Version{}, err
	}
	allGen, err := parseGen(vals[1])
	if err != nil {
		return Version{}, err
	}
	return Version{Date: dateGen, All: allGen}, nil
}

func parseGen(v interface{}) (int64, error) {
	if v == nil {
		return 0, nil
	}
	str, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("%w: unexpected generation %T", ErrCacheRead, v)
	}
	n, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: generation %q: %v", ErrCacheRead, str, err)
	}
	return n, nil
}

// Get возвращает снимок; ok=false при промахе
func (c *Cache) Get(ctx context.Context, date time.Time) (*Snapshot, bool, error) {
	data, err := c.client.Get(ctx, Key(date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCacheRead, err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, false, fmt.Errorf("%w: decode: %v", ErrCacheRead, err)
	}
	return &snapshot, true, nil
}

// Set сохраняет снимок с TTL, если с момента version ничего не инвалидировали.
// stored=false значит снимок устарел и не записан
func (c *Cache) Set(ctx context.Context, date time.Time, version Version, snapshot *Snapshot) (bool, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return false, fmt.Errorf("%w: encode: %v", ErrCacheWrite, err)
	}
	res, err := c.client.Eval(ctx, setIfUnchanged,
		[]string{Key(date), genKey(date), genAllKey},
		version.Date, version.All, data, c.ttl.Milliseconds(),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}
	return res == storedMarker, nil
}

// Invalidate сдвигает поколение даты и удаляет её снимок
func (c *Cache) Invalidate(ctx context.Context, date time.Time) error {
	if err := c.client.Incr(ctx, genKey(date)).Err(); err != nil {
		return fmt.Errorf("%w: bump generation: %v", ErrCacheWrite, err)
	}
	if err := c.client.Expire(ctx, genKey(date), genTTL).Err(); err != nil {
		return fmt.Errorf("%w: expire generation: %v", ErrCacheWrite, err)
	}
	if err := c.client.Del(ctx, Key(date)).Err(); err != nil {
		return fmt.Errorf("%w: invalidate: %v", ErrCacheWrite, err)
	}
	return nil
}

// InvalidateAll удаляет снимки всех дат (после изменения инвентаря мест)
func (c *Cache) InvalidateAll(ctx context.Context) error {
	if err := c.client.Incr(ctx, genAllKey).Err(); err != nil {
		return fmt.Errorf("%w: bump generation: %v", ErrCacheWrite, err)
	}

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, keyPrefix+"*", scanCount).Result()
		if err != nil {
			return fmt.Errorf("%w: scan: %v", ErrCacheWrite, err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("%w: invalidate all: %v", ErrCacheWrite, err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Noop кэш-заглушка, когда Redis выключен
type Noop struct{}

func (Noop) Version(context.Context, time.Time) (Version, error)              { return Version{}, nil }
func (Noop) Get(context.Context, time.Time) (*Snapshot, bool, error)          { return nil, false, nil }
func (Noop) Set(context.Context, time.Time, Version, *Snapshot) (bool, error) { return false, nil }
func (Noop) Invalidate(context.Context, time.Time) error                      { return nil }
func (Noop) InvalidateAll(context.Context) error                              { return nil }
