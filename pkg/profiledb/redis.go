package profiledb

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"

	"github.com/macshift-net/macshift/pkg/ios"
)

// keyPrefix namespaces knowledge-base keys in a shared Redis instance.
const keyPrefix = "macshift:profile:"

// RedisStore keeps the knowledge base in Redis, one hash per hardware
// address under keyPrefix. Useful when several operators share one
// knowledge base during a migration window.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisStore creates a store against the given Redis address.
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ctx:    context.Background(),
	}
}

// Connect tests the connection.
func (s *RedisStore) Connect() error {
	return s.client.Ping(s.ctx).Err()
}

// Close closes the connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Save writes every record as a hash. Existing records for the same
// hardware address are overwritten field by field.
func (s *RedisStore) Save(db DB) error {
	pipe := s.client.Pipeline()
	for mac, rec := range db {
		pipe.HSet(s.ctx, keyPrefix+mac, recordFields(rec))
	}
	_, err := pipe.Exec(s.ctx)
	return err
}

// Load reads every record under the key prefix.
func (s *RedisStore) Load() (DB, error) {
	keys, err := s.client.Keys(s.ctx, keyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}
	db := make(DB, len(keys))
	for _, key := range keys {
		vals, err := s.client.HGetAll(s.ctx, key).Result()
		if err != nil {
			return nil, err
		}
		db[key[len(keyPrefix):]] = recordFromFields(vals)
	}
	return db, nil
}

// Get looks up one record by hardware address.
func (s *RedisStore) Get(mac string) (Record, bool, error) {
	vals, err := s.client.HGetAll(s.ctx, keyPrefix+ios.NormalizeMAC(mac)).Result()
	if err != nil {
		return Record{}, false, err
	}
	if len(vals) == 0 {
		return Record{}, false, nil
	}
	return recordFromFields(vals), true, nil
}

var _ Store = (*RedisStore)(nil)

func recordFields(rec Record) map[string]interface{} {
	fields := map[string]interface{}{
		"switch":      rec.Switch,
		"interface":   rec.Interface,
		"description": rec.Description,
		"mode":        rec.Mode,
		"portfast":    strconv.FormatBool(rec.PortFast),
		"poe":         string(rec.PoE),
		"shutdown":    strconv.FormatBool(rec.Shutdown),
	}
	if rec.AccessVLAN != nil {
		fields["access_vlan"] = strconv.Itoa(*rec.AccessVLAN)
	}
	if rec.VoiceVLAN != nil {
		fields["voice_vlan"] = strconv.Itoa(*rec.VoiceVLAN)
	}
	return fields
}

func recordFromFields(vals map[string]string) Record {
	rec := Record{
		Switch:    vals["switch"],
		Interface: vals["interface"],
		InterfaceProfile: ios.InterfaceProfile{
			Description: vals["description"],
			Mode:        vals["mode"],
			PoE:         ios.PowerInline(vals["poe"]),
			PortFast:    vals["portfast"] == "true",
			Shutdown:    vals["shutdown"] == "true",
		},
	}
	if v, ok := vals["access_vlan"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			rec.AccessVLAN = &n
		}
	}
	if v, ok := vals["voice_vlan"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			rec.VoiceVLAN = &n
		}
	}
	return rec
}

// String renders a record for CLI display.
func (r Record) String() string {
	access := "-"
	if r.AccessVLAN != nil {
		access = strconv.Itoa(*r.AccessVLAN)
	}
	voice := "-"
	if r.VoiceVLAN != nil {
		voice = strconv.Itoa(*r.VoiceVLAN)
	}
	return fmt.Sprintf("switch=%s interface=%s mode=%s access_vlan=%s voice_vlan=%s portfast=%t poe=%s shutdown=%t",
		r.Switch, r.Interface, r.Mode, access, voice, r.PortFast, r.PoE, r.Shutdown)
}
