package tiltify

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// DefaultNATSBucket is the KV bucket used when NATSKVConfig.Bucket is empty.
const DefaultNATSBucket = "tiltify_route_types"

// NATSKVConfig configures the NATS JetStream KV route-type cache.
type NATSKVConfig struct {
	// URL of the NATS server, nats.DefaultURL when empty. Ignored when Conn is set.
	URL string `mapstructure:"url" yaml:"url"`

	// Bucket is the KV bucket name.
	Bucket string `mapstructure:"bucket" yaml:"bucket"`

	// Replicas of the bucket, 1 when zero.
	Replicas int `mapstructure:"replicas" yaml:"replicas"`

	// Conn reuses an existing connection. The cache does not close it.
	Conn *nats.Conn `mapstructure:"-" yaml:"-"`
}

// NATSKVRouteTypeCache shares route types between processes through a
// JetStream key-value bucket. First writer wins, like the memory cache.
type NATSKVRouteTypeCache struct {
	conn     *nats.Conn
	ownsConn bool
	kv       jetstream.KeyValue
}

// NewNATSKVRouteTypeCache connects to NATS and creates or binds the bucket.
func NewNATSKVRouteTypeCache(ctx context.Context, config *NATSKVConfig) (*NATSKVRouteTypeCache, error) {
	if config == nil {
		return nil, ErrNATSConfigRequired
	}

	cache := &NATSKVRouteTypeCache{conn: config.Conn}

	if cache.conn == nil {
		url := config.URL
		if url == "" {
			url = nats.DefaultURL
		}

		conn, err := nats.Connect(url, nats.Name("tiltify-client"))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}

		cache.conn = conn
		cache.ownsConn = true
	}

	js, err := jetstream.New(cache.conn)
	if err != nil {
		_ = cache.Close()

		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	bucket := config.Bucket
	if bucket == "" {
		bucket = DefaultNATSBucket
	}

	replicas := config.Replicas
	if replicas == 0 {
		replicas = 1
	}

	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "Tiltify campaign route types",
		Replicas:    replicas,
	})
	if err != nil {
		_ = cache.Close()

		return nil, fmt.Errorf("failed to create KV bucket %s: %w", bucket, err)
	}

	cache.kv = kv

	return cache, nil
}

// Lookup returns the recorded type of campaignID.
func (c *NATSKVRouteTypeCache) Lookup(ctx context.Context, campaignID string) (RouteType, error) {
	entry, err := c.kv.Get(ctx, routeTypeKey(campaignID))
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return RouteTypeUnknown, nil
	}

	if err != nil {
		return RouteTypeUnknown, fmt.Errorf("failed to get route type: %w", err)
	}

	routeType := RouteType(entry.Value())
	if !routeType.Valid() {
		return RouteTypeUnknown, fmt.Errorf("%w: %q", ErrInvalidRouteType, string(entry.Value()))
	}

	return routeType, nil
}

// Record stores routeType unless campaignID already has an entry.
func (c *NATSKVRouteTypeCache) Record(ctx context.Context, campaignID string, routeType RouteType) error {
	if !routeType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRouteType, string(routeType))
	}

	_, err := c.kv.Create(ctx, routeTypeKey(campaignID), []byte(routeType))
	if err != nil && !errors.Is(err, jetstream.ErrKeyExists) {
		return fmt.Errorf("failed to record route type: %w", err)
	}

	return nil
}

// Close closes the connection if the cache opened it.
func (c *NATSKVRouteTypeCache) Close() error {
	if c.ownsConn && c.conn != nil {
		c.conn.Close()
	}

	return nil
}

// routeTypeKey maps a campaign id to a KV key. The unpadded URL-safe base64
// alphabet is a subset of the KV key alphabet, so distinct ids never share a key.
func routeTypeKey(campaignID string) string {
	return "campaign." + base64.RawURLEncoding.EncodeToString([]byte(campaignID))
}
