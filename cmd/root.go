package cmd

import (
	"errors"
	"io/fs"
	"log"
	"net/http"
	_ "net/http/pprof" // pprof init
	"strings"

	"github.com/blendle/zapdriver"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Version  string
	Revision string
)

var (
	// configFile 設定ファイルyamlのパス
	configFile string
	// c 設定
	c Config
)

// rootコマンドはダミー。コマンドとしては使用しない
var rootCommand = &cobra.Command{
	Use: "fieldwatch",
	// 全コマンド共通の前処理
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// enable pprof http handler
		if c.Pprof {
			go func() { _ = http.ListenAndServe("0.0.0.0:6060", nil) }()
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCommand.AddCommand(
		serveCommand(),
		migrateCommand(),
		confCommand(),
		versionCommand(),
		healthcheckCommand(),
		tokenCommand(),
	)

	flags := rootCommand.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file path")

	flags.Bool("dev", false, "development mode")
	bindPFlag(flags, "dev")
	flags.Bool("pprof", false, "expose pprof http interface")
	bindPFlag(flags, "pprof")
}

func initConfig() {
	// .envがあれば環境変数として読み込む
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("failed to load .env file: %v", err)
	}

	if len(configFile) > 0 {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("FIELDWATCH")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			log.Fatalf("failed to read config file: %v", err)
		}
	}
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatal(err)
	}
}

func Execute() error {
	return rootCommand.Execute()
}

func getLogger() (logger *zap.Logger) {
	if c.DevMode {
		return getCLILogger()
	}
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding:         "json",
		EncoderConfig:    zapdriver.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, _ = cfg.Build(zapdriver.WrapCore(zapdriver.ServiceName("fieldwatch")))
	return
}

func getCLILogger() (logger *zap.Logger) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if c.DevMode {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg := zap.Config{
		Level:       level,
		Development: c.DevMode,
		Encoding:    "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			CallerKey:      "C",
			MessageKey:     "M",
			StacktraceKey:  "S",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, _ = cfg.Build()
	return
}

func bindPFlag(flags *pflag.FlagSet, key string) {
	if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
		panic(err)
	}
}
