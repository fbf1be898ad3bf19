package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	internalApp "github.com/chroniclenote/chronicle-note-service/internal/app"
	"github.com/chroniclenote/chronicle-note-service/internal/dao"
	"github.com/chroniclenote/chronicle-note-service/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type cleanupFlags struct {
	config string // Configuration file path // 配置文件路径
	db     string // SQLite database path override // SQLite 数据库路径覆盖
}

func init() {
	cleanupEnv := new(cleanupFlags)

	var cleanupCommand = &cobra.Command{
		Use:   "cleanup [-c config_file] [--db sqlite_file]",
		Short: "Revoke all expired share links and exit. // 吊销全部已过期的分享链接并退出。",
		Run: func(cmd *cobra.Command, args []string) {
			dbConfig := &dao.DatabaseConfig{
				Type: "sqlite",
			}

			// Resolve the database location: --db flag, NOTES_DB env, then config file
			// 解析数据库位置：--db 参数、NOTES_DB 环境变量，最后是配置文件
			switch {
			case len(cleanupEnv.db) > 0:
				dbConfig.Path = cleanupEnv.db
			case len(os.Getenv("NOTES_DB")) > 0:
				dbConfig.Path = os.Getenv("NOTES_DB")
			default:
				if len(cleanupEnv.config) <= 0 {
					cleanupEnv.config = "config/config.yaml"
				}
				appConfig, _, err := internalApp.LoadConfig(cleanupEnv.config)
				if err != nil {
					bootstrapLogger.Error("cleanup: failed to load config", zap.Error(err))
					os.Exit(1)
				}
				dbConfig.Type = appConfig.Database.Type
				dbConfig.Path = appConfig.Database.Path
				dbConfig.UserName = appConfig.Database.UserName
				dbConfig.Password = appConfig.Database.Password
				dbConfig.Host = appConfig.Database.Host
				dbConfig.Name = appConfig.Database.Name
				dbConfig.TablePrefix = appConfig.Database.TablePrefix
				dbConfig.Charset = appConfig.Database.Charset
				dbConfig.ParseTime = appConfig.Database.ParseTime
			}

			db, err := dao.NewDBEngine(dbConfig)
			if err != nil {
				bootstrapLogger.Error("cleanup: failed to open database", zap.Error(err))
				os.Exit(1)
			}

			d := dao.New(db)
			shareService := service.NewShareService(
				dao.NewPublicLinkRepository(d),
				dao.NewNoteRepository(d),
				bootstrapLogger,
				&service.ServiceConfig{},
			)

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			revoked, err := shareService.Sweep(ctx, time.Now())
			if err != nil {
				bootstrapLogger.Error("cleanup: sweep failed", zap.Error(err))
				os.Exit(1)
			}

			if len(revoked) == 0 {
				fmt.Println("no expired share links found")
				return
			}
			for _, id := range revoked {
				fmt.Printf("revoked share link %d\n", id)
			}
			fmt.Printf("revoked %d expired share link(s)\n", len(revoked))
		},
	}

	rootCmd.AddCommand(cleanupCommand)
	fs := cleanupCommand.Flags()
	fs.StringVarP(&cleanupEnv.config, "config", "c", "", "config file")
	fs.StringVar(&cleanupEnv.db, "db", "", "sqlite database file (overrides config)")
}
