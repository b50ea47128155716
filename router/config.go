package router

import (
	v1 "github.com/jansampark/fieldwatch/router/v1"
)

// Config APIサーバー設定
type Config struct {
	// Development 開発モードかどうか
	Development bool
	// Version サーバーバージョン
	Version string
	// Revision サーバーリビジョン
	Revision string
	// AccessLogging アクセスログを記録するかどうか
	AccessLogging bool
	// AllowOrigins CORSで許可するオリジン
	AllowOrigins []string
}

func provideV1Config(c *Config) v1.Config {
	return v1.Config{
		Version:  c.Version,
		Revision: c.Revision,
	}
}
