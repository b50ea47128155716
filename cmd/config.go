package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jansampark/fieldwatch/repository"
	"github.com/jansampark/fieldwatch/router"
	"github.com/jansampark/fieldwatch/service/presence"
	"github.com/jansampark/fieldwatch/service/sweeper"
	"github.com/jansampark/fieldwatch/service/ws"
	"github.com/jansampark/fieldwatch/utils/gormzap"
	"github.com/jansampark/fieldwatch/utils/jwt"
)

// Config 設定
type Config struct {
	// DevMode 開発モードかどうか (default: false)
	DevMode bool `mapstructure:"dev" yaml:"dev"`
	// Pprof pprofを有効にするかどうか (default: false)
	Pprof bool `mapstructure:"pprof" yaml:"pprof"`

	// Port サーバーポート番号 (default: 3000)
	Port int `mapstructure:"port" yaml:"port"`
	// ShutdownTimeout シャットダウンの猶予時間(秒) (default: 10)
	ShutdownTimeout int `mapstructure:"shutdownTimeout" yaml:"shutdownTimeout"`
	// AllowOrigins CORSで許可するオリジン (default: ["*"])
	AllowOrigins []string `mapstructure:"allowOrigins" yaml:"allowOrigins"`

	// AccessLog HTTPアクセスログ設定
	AccessLog struct {
		// Enabled 有効かどうか (default: true)
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	} `mapstructure:"accessLog" yaml:"accessLog"`

	// Database データベース接続設定
	Database struct {
		// Type データベースタイプ (default: mysql)
		// 	mysql: MySQL / MariaDB
		// 	postgres: PostgreSQL
		// 	sqlite: SQLite (単一ノード用)
		Type string `mapstructure:"type" yaml:"type"`
		// Host ホスト名 (default: 127.0.0.1)
		Host string `mapstructure:"host" yaml:"host"`
		// Port ポート番号 (default: 3306)
		Port int `mapstructure:"port" yaml:"port"`
		// Username ユーザー名 (default: root)
		Username string `mapstructure:"username" yaml:"username"`
		// Password パスワード (default: password)
		Password string `mapstructure:"password" yaml:"password"`
		// Database データベース名 (default: fieldwatch)
		Database string `mapstructure:"database" yaml:"database"`
		// File SQLiteのデータベースファイル (default: fieldwatch.db)
		File string `mapstructure:"file" yaml:"file"`
		// Connection コネクション設定
		Connection struct {
			// MaxOpen 最大オープン接続数. 0は無制限 (default: 0)
			MaxOpen int `mapstructure:"maxOpen" yaml:"maxOpen"`
			// MaxIdle 最大アイドル接続数 (default: 2)
			MaxIdle int `mapstructure:"maxIdle" yaml:"maxIdle"`
			// LifeTime 待機接続維持時間(秒). 0は無制限 (default: 0)
			LifeTime int `mapstructure:"lifetime" yaml:"lifetime"`
		} `mapstructure:"connection" yaml:"connection"`
	} `mapstructure:"database" yaml:"database"`

	// JWT アクセストークン設定
	JWT struct {
		// Secret HS256署名鍵
		Secret string `mapstructure:"secret" yaml:"secret"`
		// Expire 有効時間(秒). 0は無期限 (default: 86400)
		Expire int `mapstructure:"expire" yaml:"expire"`
	} `mapstructure:"jwt" yaml:"jwt"`

	// Presence 最新位置ストア設定
	Presence struct {
		// OnlineThreshold 最終報告からオンラインとみなす時間(秒) (default: 120)
		OnlineThreshold int `mapstructure:"onlineThreshold" yaml:"onlineThreshold"`
	} `mapstructure:"presence" yaml:"presence"`

	// Sweeper 古い位置情報の掃除設定
	Sweeper struct {
		// Enabled 定期実行を行うかどうか (default: true)
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
		// Interval 実行間隔(秒) (default: 3600)
		Interval int `mapstructure:"interval" yaml:"interval"`
		// Backoff 失敗時の再実行までの待機時間(秒) (default: 300)
		Backoff int `mapstructure:"backoff" yaml:"backoff"`
		// Retention 位置情報を保持する時間(秒) (default: 86400)
		Retention int `mapstructure:"retention" yaml:"retention"`
	} `mapstructure:"sweeper" yaml:"sweeper"`

	// WS WebSocket設定
	WS struct {
		// SendTimeout 送信タイムアウト(ミリ秒) (default: 1000)
		SendTimeout int `mapstructure:"sendTimeout" yaml:"sendTimeout"`
	} `mapstructure:"ws" yaml:"ws"`

	// Init 初期化設定
	Init struct {
		// SuperAdmin 初回起動時に作成するsuper_adminのユーザー名 (default: admin)
		SuperAdmin string `mapstructure:"superAdmin" yaml:"superAdmin"`
	} `mapstructure:"init" yaml:"init"`
}

// Configのデフォルト値設定
func init() {
	viper.SetDefault("dev", false)
	viper.SetDefault("pprof", false)
	viper.SetDefault("port", 3000)
	viper.SetDefault("shutdownTimeout", 10)
	viper.SetDefault("allowOrigins", []string{"*"})
	viper.SetDefault("accessLog.enabled", true)
	viper.SetDefault("database.type", "mysql")
	viper.SetDefault("database.host", "127.0.0.1")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "fieldwatch")
	viper.SetDefault("database.file", "fieldwatch.db")
	viper.SetDefault("database.connection.maxOpen", 0)
	viper.SetDefault("database.connection.maxIdle", 2)
	viper.SetDefault("database.connection.lifetime", 0)
	viper.SetDefault("jwt.secret", "")
	viper.SetDefault("jwt.expire", 60*60*24)
	viper.SetDefault("presence.onlineThreshold", int(presence.DefaultOnlineThreshold/time.Second))
	viper.SetDefault("sweeper.enabled", true)
	viper.SetDefault("sweeper.interval", int(sweeper.DefaultInterval/time.Second))
	viper.SetDefault("sweeper.backoff", int(sweeper.DefaultBackoff/time.Second))
	viper.SetDefault("sweeper.retention", int(presence.DefaultRetention/time.Second))
	viper.SetDefault("ws.sendTimeout", int(ws.DefaultSendTimeout/time.Millisecond))
	viper.SetDefault("init.superAdmin", "admin")
}

func (c Config) getDatabase(logger *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch c.Database.Type {
	case "postgres":
		dialector = postgres.Open(fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			c.Database.Host,
			c.Database.Port,
			c.Database.Username,
			c.Database.Password,
			c.Database.Database,
		))
	case "sqlite":
		dialector = sqlite.Open(fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", c.Database.File))
	case "mysql", "":
		dialector = mysql.Open(fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
			c.Database.Username,
			c.Database.Password,
			c.Database.Host,
			c.Database.Port,
			c.Database.Database,
		))
	default:
		return nil, fmt.Errorf("unknown database type: %s", c.Database.Type)
	}

	engine, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormzap.New(logger.Named("gorm")),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	db, err := engine.DB()
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(c.Database.Connection.MaxOpen)
	db.SetMaxIdleConns(c.Database.Connection.MaxIdle)
	db.SetConnMaxLifetime(time.Duration(c.Database.Connection.LifeTime) * time.Second)
	if c.Database.Type == "sqlite" {
		// SQLiteは書き込みを直列化する
		db.SetMaxOpenConns(1)
	}
	return engine, nil
}

func (c Config) getSigner() (*jwt.Signer, error) {
	return jwt.NewSigner(c.JWT.Secret, time.Duration(c.JWT.Expire)*time.Second)
}

func provideRouterConfig(c *Config) *router.Config {
	return &router.Config{
		Development:   c.DevMode,
		Version:       Version,
		Revision:      Revision,
		AccessLogging: c.AccessLog.Enabled,
		AllowOrigins:  c.AllowOrigins,
	}
}

func provideOnlineThreshold(c *Config) time.Duration {
	return time.Duration(c.Presence.OnlineThreshold) * time.Second
}

func provideStreamerConfig(c *Config) ws.Config {
	return ws.Config{
		SendTimeout: time.Duration(c.WS.SendTimeout) * time.Millisecond,
	}
}

func provideSweeperConfig(c *Config) sweeper.Config {
	return sweeper.Config{
		Interval:  time.Duration(c.Sweeper.Interval) * time.Second,
		Backoff:   time.Duration(c.Sweeper.Backoff) * time.Second,
		Retention: time.Duration(c.Sweeper.Retention) * time.Second,
	}
}

func provideSigner(c *Config) (*jwt.Signer, error) {
	return c.getSigner()
}

func provideUserRepository(repo repository.Repository) repository.UserRepository {
	return repo
}

func provideLocationRepository(repo repository.Repository) repository.LocationRepository {
	return repo
}
