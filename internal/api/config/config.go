package config

import "time"

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"database"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Media  MediaConfig  `mapstructure:"media"`
	MinIO  MinIOConfig  `mapstructure:"minio"`
	Kafka  KafkaConfig  `mapstructure:"kafka"`
	Seed   SeedConfig   `mapstructure:"seed"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout"`
}

// DBConfig 数据库配置
type DBConfig struct {
	Driver      string `mapstructure:"driver"`
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// RedisConfig Addr 为空时不启用缓存
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MediaConfig 媒体上传配置
type MediaConfig struct {
	Driver           string `mapstructure:"driver"`
	UploadDir        string `mapstructure:"upload_dir"`
	MaxFileSizeBytes int64  `mapstructure:"max_file_size_bytes"`
	CleanupCron      string `mapstructure:"cleanup_cron"`
	OrphanTTLHours   int    `mapstructure:"orphan_ttl_hours"`
}

// OrphanTTL 未挂载图片的保留时长
func (c MediaConfig) OrphanTTL() time.Duration {
	return time.Duration(c.OrphanTTLHours) * time.Hour
}

// MinIOConfig MinIO配置，media.driver = minio 时使用
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// KafkaConfig Brokers 为空时不发布事件
type KafkaConfig struct {
	Brokers []string   `mapstructure:"brokers"`
	Topic   string     `mapstructure:"topic"`
	Sasl    SaslConfig `mapstructure:"sasl"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// SeedConfig 启动时写入演示数据
type SeedConfig struct {
	Enabled   bool `mapstructure:"enabled"`
	DemoUsers int  `mapstructure:"demo_users"`
}
