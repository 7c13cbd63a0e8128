package database

import (
	"Microblog/internal/api/config"
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

// CreateTempDB 为单个测试创建独立的 SQLite 库并完成建表，测试结束后关闭连接
func CreateTempDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "microblog.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	db, err := NewGormDB(&config.DBConfig{
		Driver:  DriverSQLite,
		DSN:     dsn,
		MaxIdle: 1,
		MaxOpen: 1,
	})
	if err != nil {
		t.Fatalf("cannot open temp db: %v", err)
	}
	if err = Migrate(db); err != nil {
		t.Fatalf("cannot migrate temp db: %v", err)
	}

	t.Cleanup(func() {
		if conn, err := db.DB(); err == nil {
			_ = conn.Close()
		}
	})
	return db
}
