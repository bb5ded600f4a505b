package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"resume-import-go/internal/config"
	"resume-import-go/internal/constants"
	"resume-import-go/internal/logger"
)

// ErrNotFound key不存在，对redis.Nil的抽象
var ErrNotFound = redis.Nil

// Redis 提供键值存储功能，目前主要承担文件MD5去重
type Redis struct {
	Client *redis.Client
	config *config.RedisConfig
}

// NewRedisAdapter 创建Redis客户端
func NewRedisAdapter(cfg *config.RedisConfig) (*Redis, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis配置不能为空")
	}
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis地址不能为空")
	}

	opt := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,

		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	}
	if cfg.DialTimeoutSeconds > 0 {
		opt.DialTimeout = time.Duration(cfg.DialTimeoutSeconds) * time.Second
	}
	if cfg.ReadTimeoutSeconds > 0 {
		opt.ReadTimeout = time.Duration(cfg.ReadTimeoutSeconds) * time.Second
	}
	if cfg.WriteTimeoutSeconds > 0 {
		opt.WriteTimeout = time.Duration(cfg.WriteTimeoutSeconds) * time.Second
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("连接Redis失败: %w", err)
	}

	// 启用OpenTelemetry追踪钩子
	if err := redisotel.InstrumentTracing(client); err != nil {
		logger.Warn().Err(err).Msg("启用Redis追踪钩子失败")
	}

	return &Redis{Client: client, config: cfg}, nil
}

// Close 关闭连接
func (r *Redis) Close() error {
	return r.Client.Close()
}

// GetMD5ExpireDuration 返回配置的MD5记录过期时间
func (r *Redis) GetMD5ExpireDuration() time.Duration {
	days := r.config.MD5RecordExpireDays
	if days <= 0 {
		days = 30
	}
	return time.Duration(days) * 24 * time.Hour
}

// CheckFileMD5Exists 检查文件MD5是否已在去重集合中
func (r *Redis) CheckFileMD5Exists(ctx context.Context, md5Hex string) (bool, error) {
	exists, err := r.Client.SIsMember(ctx, constants.KeyFileMD5Set, md5Hex).Result()
	if err != nil {
		return false, fmt.Errorf("查询MD5去重集合失败: %w", err)
	}
	return exists, nil
}

// RecordFileMD5 记录文件MD5与对应的记录UUID
// 集合与映射同管道写入，过期时间只在首次设置
func (r *Redis) RecordFileMD5(ctx context.Context, md5Hex, recordUUID string) error {
	mappingKey := fmt.Sprintf(constants.KeyFileMD5ToRecordUUID, md5Hex)
	expire := r.GetMD5ExpireDuration()

	pipe := r.Client.Pipeline()
	pipe.SAdd(ctx, constants.KeyFileMD5Set, md5Hex)
	pipe.ExpireNX(ctx, constants.KeyFileMD5Set, expire)
	pipe.Set(ctx, mappingKey, recordUUID, expire)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("记录文件MD5失败: %w", err)
	}
	return nil
}

// GetRecordUUIDByMD5 按MD5查已导入的记录UUID，未命中返回ErrNotFound
func (r *Redis) GetRecordUUIDByMD5(ctx context.Context, md5Hex string) (string, error) {
	key := fmt.Sprintf(constants.KeyFileMD5ToRecordUUID, md5Hex)
	uuid, err := r.Client.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}
	return uuid, nil
}
