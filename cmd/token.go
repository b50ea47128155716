package cmd

import (
	"context"
	"fmt"

	"github.com/leandro-lugaresi/hub"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jansampark/fieldwatch/repository/gorm"
)

// tokenCommand アクセストークン発行コマンド
//
// ユーザーの認証は外部のユーザーストアの責務なので、運用・開発用途のみを想定する
func tokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token <username>",
		Short: "Issue an access token for the user",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			logger := getCLILogger()
			defer logger.Sync()

			engine, err := c.getDatabase(logger)
			if err != nil {
				logger.Fatal("failed to connect database", zap.Error(err))
			}
			db, err := engine.DB()
			if err != nil {
				logger.Fatal("failed to get *sql.DB", zap.Error(err))
			}
			defer db.Close()

			repo, _, err := gorm.NewGormRepository(engine, hub.New(), logger, false)
			if err != nil {
				logger.Fatal("failed to initialize repository", zap.Error(err))
			}
			user, err := repo.GetUserByName(context.Background(), args[0])
			if err != nil {
				logger.Fatal("failed to get user", zap.Error(err), zap.String("name", args[0]))
			}
			if !user.IsActive {
				logger.Fatal("the user is deactivated", zap.String("name", user.Name))
			}

			signer, err := c.getSigner()
			if err != nil {
				logger.Fatal("failed to setup signer", zap.Error(err))
			}
			token, err := signer.Sign(user.Name)
			if err != nil {
				logger.Fatal("failed to sign token", zap.Error(err))
			}
			fmt.Println(token)
		},
	}
}
