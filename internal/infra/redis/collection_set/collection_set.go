package infra_redis_collection_set

import (
	"context"

	"github.com/go-redis/redis"
)

// Driver keeps one Redis set per user holding the names of collections
// created before any movie was added to them.
type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Add(ctx context.Context, email, name string) error {
	if name == "" {
		return nil
	}

	if err := d.client.SAdd(d.userKey(email), name).Err(); err != nil {
		return err
	}
	return nil
}

func (d *Driver) Remove(ctx context.Context, email, name string) error {
	if err := d.client.SRem(d.userKey(email), name).Err(); err != nil {
		return err
	}
	return nil
}

func (d *Driver) Members(ctx context.Context, email string) ([]string, error) {
	names, err := d.client.SMembers(d.userKey(email)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	return names, nil
}

func (d *Driver) userKey(email string) string {
	if d.key != "" {
		return d.key + ":" + email
	}
	return email
}
