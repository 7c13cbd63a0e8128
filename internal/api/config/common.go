package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvPrefix     = "MICROBLOG"
	EnvConfigPath = "MICROBLOG_CONFIG"
)

// LoadConfig 从文件与环境变量加载配置
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path := os.Getenv(EnvConfigPath); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.DB.DSN == "" {
		return nil, errors.New("database.dsn is required")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5)

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.max_open", 50)
	v.SetDefault("database.max_lifetime", 30)
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("media.driver", "local")
	v.SetDefault("media.upload_dir", "./static/tweets_images")
	v.SetDefault("media.max_file_size_bytes", 1048576)
	v.SetDefault("media.cleanup_cron", "@hourly")
	v.SetDefault("media.orphan_ttl_hours", 24)

	v.SetDefault("minio.endpoint", "")
	v.SetDefault("minio.access_key", "")
	v.SetDefault("minio.secret_key", "")
	v.SetDefault("minio.bucket", "tweets-images")
	v.SetDefault("minio.use_ssl", false)

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "microblog-events")
	v.SetDefault("kafka.sasl.enable", false)
	v.SetDefault("kafka.sasl.username", "")
	v.SetDefault("kafka.sasl.password", "")

	v.SetDefault("seed.enabled", true)
	v.SetDefault("seed.demo_users", 5)
}
