package infra

import (
	"fmt"
	"log"

	"gin-ratings/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// gormConfig は一意制約・外部キー違反を gorm のエラーに変換する
func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

// PostgresDSN は dbName に接続するための DSN を組み立てる
func PostgresDSN(cfg *Config, dbName string) string {
	// 本番環境ではsslmode=require、それ以外はsslmode=disable
	sslmode := "disable"
	if cfg.Env == "prod" {
		sslmode = "require"
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		dbName,
		cfg.DBPort,
		sslmode,
	)
}

func SetupDB(cfg *Config) *gorm.DB {
	// DB_NAMEが設定されている場合はPostgreSQLを使用
	if cfg.DBName != "" {
		db, err := gorm.Open(postgres.Open(PostgresDSN(cfg, cfg.DBName)), gormConfig())
		if err != nil {
			panic(fmt.Sprintf("Failed to connect to database: %v", err))
		}
		log.Printf("Setup postgres database: %s", cfg.DBName)
		return db
	}

	// デフォルトはSQLiteのインメモリ（接続ごとにDBが分かれないよう共有キャッシュを使う）
	db, err := OpenSQLite("file:ratings?mode=memory&cache=shared&_foreign_keys=1")
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}
	log.Println("Setup sqlite database (in-memory)")
	return db
}

// OpenSQLite は単一コネクションの SQLite を開く
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// SetupSessionDB はサーバーサイドセッション用のSQLiteデータベース接続を設定
func SetupSessionDB(cfg *Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.SessionDBPath), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to session database")
	}
	log.Printf("Setup session SQLite database: %s", cfg.SessionDBPath)
	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Role{}, &models.User{}, &models.Review{})
}
