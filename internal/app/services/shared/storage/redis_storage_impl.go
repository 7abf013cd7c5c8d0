package storage

import (
	"context"
	"errors"
	"medirisk-service/internal/app/contracts"
	"medirisk-service/internal/pkg/constvars"
	"medirisk-service/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
)

type redisStorage struct {
	client *redis.Client
	key    string
}

func NewRedisStorage(client *redis.Client, key string) contracts.DocumentStorage {
	return &redisStorage{
		client: client,
		key:    key,
	}
}

func (r *redisStorage) Driver() string {
	return constvars.StoreDriverRedis
}

func (r *redisStorage) Location() string {
	return r.key
}

func (r *redisStorage) Read(ctx context.Context) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, exceptions.ErrStoreReadDocument(err, r.Driver())
	}
	return data, true, nil
}

func (r *redisStorage) Write(ctx context.Context, data []byte) error {
	err := r.client.Set(ctx, r.key, data, 0).Err()
	if err != nil {
		return exceptions.ErrStoreWriteDocument(err, r.Driver())
	}
	return nil
}
