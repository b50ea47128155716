package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/leandro-lugaresi/hub"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jansampark/fieldwatch/repository"
	"github.com/jansampark/fieldwatch/repository/gorm"
	"github.com/jansampark/fieldwatch/service"
	"github.com/jansampark/fieldwatch/service/rbac/role"
	"github.com/jansampark/fieldwatch/service/ws"
	"github.com/jansampark/fieldwatch/utils/random"
)

// serveCommand サーバー起動コマンド
func serveCommand() *cobra.Command {
	cmd := cobra.Command{
		Use:   "serve",
		Short: "Serve fieldwatch API",
		Run: func(cmd *cobra.Command, args []string) {
			// Logger
			logger := getLogger()
			defer logger.Sync()

			logger.Info(fmt.Sprintf("fieldwatch %s (revision %s)", Version, Revision))

			// Message Hub
			hub := hub.New()

			// Database
			logger.Info("connecting database...")
			engine, err := c.getDatabase(logger)
			if err != nil {
				logger.Fatal("failed to connect database", zap.Error(err))
			}
			db, err := engine.DB()
			if err != nil {
				logger.Fatal("failed to get *sql.DB", zap.Error(err))
			}
			defer db.Close()
			logger.Info("database connection was established")

			// Repository
			logger.Info("setting up repository...")
			repo, init, err := gorm.NewGormRepository(engine, hub, logger, true)
			if err != nil {
				logger.Fatal("failed to initialize repository", zap.Error(err))
			}
			logger.Info("repository was set up")

			// JWT署名鍵
			if len(c.JWT.Secret) == 0 {
				c.JWT.Secret = random.SecureAlphaNumeric(64)
				logger.Warn("jwt.secret is not set. a temporary secret is used, and issued tokens will be invalidated on restart")
			}

			// サーバー作成
			server, err := newServer(hub, repo, logger, &c)
			if err != nil {
				logger.Fatal("failed to create server", zap.Error(err))
			}

			// 初期化
			if init {
				logger.Info("data initializing...")

				// 管理者ユーザーの作成
				u, err := repo.CreateUser(context.Background(), repository.CreateUserArgs{
					Name:     c.Init.SuperAdmin,
					FullName: c.Init.SuperAdmin,
					Role:     role.SuperAdmin,
				})
				if err == nil {
					logger.Info("super admin user was created", zap.Int64("uid", u.GetID()), zap.String("name", u.Name))
				} else {
					logger.Fatal("failed to init super admin user", zap.Error(err))
				}

				logger.Info("data initialization finished")
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() {
				if err := server.Start(ctx, fmt.Sprintf(":%d", c.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped unexpectedly", zap.Error(err))
					stop()
				}
			}()

			logger.Info("fieldwatch started")
			<-ctx.Done()
			logger.Info("fieldwatch shutting down...")

			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(c.ShutdownTimeout)*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				logger.Warn("abnormal shutdown", zap.Error(err))
			}
			logger.Info("fieldwatch shutdown")
		},
	}

	return &cmd
}

type Server struct {
	L      *zap.Logger
	SS     *service.Services
	Router *echo.Echo
	Hub    *hub.Hub
	Repo   repository.Repository
	C      *Config
}

func (s *Server) Start(ctx context.Context, address string) error {
	if s.C.Sweeper.Enabled {
		if err := s.SS.Sweeper.Start(ctx); err != nil {
			return err
		}
	}
	return s.Router.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		err := s.Router.Shutdown(ctx)
		s.L.Info("Router shutdown")
		return err
	})
	eg.Go(func() error {
		err := s.SS.WS.Close()
		s.L.Info("WebSocket shutdown")
		if errors.Is(err, ws.ErrAlreadyClosed) {
			return nil
		}
		return err
	})
	eg.Go(func() error {
		err := s.SS.Sweeper.Shutdown(ctx)
		s.L.Info("Sweeper shutdown")
		return err
	})
	err := eg.Wait()
	s.Hub.Close()
	return err
}
