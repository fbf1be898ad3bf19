package cmd

import (
	"fmt"
	"os"

	"github.com/chroniclenote/chronicle-note-service/internal/dao"
	"github.com/chroniclenote/chronicle-note-service/internal/model"
	"github.com/chroniclenote/chronicle-note-service/pkg/convert"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type migrateFlags struct {
	source string // Source SQLite database file // 源 SQLite 数据库文件
	dest   string // Destination SQLite database file // 目标 SQLite 数据库文件
}

// migrateOpen opens a sqlite database and ensures the schema exists
// migrateOpen 打开 sqlite 数据库并确保 schema 存在
func migrateOpen(path string) (*gorm.DB, error) {
	db, err := dao.NewDBEngine(&dao.DatabaseConfig{Type: "sqlite", Path: path})
	if err != nil {
		return nil, err
	}
	if err := model.AutoMigrateAll(db); err != nil {
		return nil, err
	}
	return db, nil
}

func init() {
	migrateEnv := new(migrateFlags)

	var migrateCommand = &cobra.Command{
		Use:   "migrate --source old.sqlite3 --dest new.sqlite3",
		Short: "Import users and notes from a backup database. // 从备份数据库导入用户与笔记。",
		Run: func(cmd *cobra.Command, args []string) {
			if len(migrateEnv.source) <= 0 || len(migrateEnv.dest) <= 0 {
				bootstrapLogger.Error("migrate: both --source and --dest are required")
				_ = cmd.Help()
				os.Exit(1)
			}

			srcDb, err := migrateOpen(migrateEnv.source)
			if err != nil {
				bootstrapLogger.Error("migrate: failed to open source database", zap.Error(err))
				os.Exit(1)
			}
			destDb, err := migrateOpen(migrateEnv.dest)
			if err != nil {
				bootstrapLogger.Error("migrate: failed to open destination database", zap.Error(err))
				os.Exit(1)
			}

			var users []model.User
			if err := srcDb.Table(model.TableNameUser).Find(&users).Error; err != nil {
				bootstrapLogger.Error("migrate: failed to read users", zap.Error(err))
				os.Exit(1)
			}

			// Copy users, skipping username collisions; remember the UID mapping
			// 复制用户，跳过用户名冲突，并记录 UID 映射关系
			uidMap := make(map[int64]int64, len(users))
			var userCount int
			for _, u := range users {
				var existing model.User
				err := destDb.Table(model.TableNameUser).Where("username = ?", u.Username).First(&existing).Error
				if err == nil {
					uidMap[u.UID] = existing.UID
					bootstrapLogger.Warn("migrate: username already exists, skipping", zap.String("username", u.Username))
					continue
				}
				if err != gorm.ErrRecordNotFound {
					bootstrapLogger.Error("migrate: failed to check username", zap.Error(err))
					os.Exit(1)
				}

				nu := model.User{}
				convert.StructAssign(&u, &nu)
				nu.UID = 0
				if err := destDb.Table(model.TableNameUser).Create(&nu).Error; err != nil {
					bootstrapLogger.Error("migrate: failed to create user", zap.Error(err))
					os.Exit(1)
				}
				uidMap[u.UID] = nu.UID
				userCount++
			}

			var notes []model.Note
			if err := srcDb.Table(model.TableNameNote).Find(&notes).Error; err != nil {
				bootstrapLogger.Error("migrate: failed to read notes", zap.Error(err))
				os.Exit(1)
			}

			// Copy notes, remapping owners; old backups may predate the metadata columns
			// 复制笔记并重新映射归属用户；旧备份可能没有元数据列
			var noteCount int
			for _, n := range notes {
				newUID, ok := uidMap[n.UID]
				if !ok {
					bootstrapLogger.Warn("migrate: note owner not found, skipping", zap.Int64("note_id", n.ID))
					continue
				}

				nn := model.Note{}
				convert.StructAssign(&n, &nn)
				nn.ID = 0
				nn.UID = newUID
				if err := destDb.Table(model.TableNameNote).Create(&nn).Error; err != nil {
					bootstrapLogger.Error("migrate: failed to create note", zap.Error(err))
					os.Exit(1)
				}
				noteCount++
			}

			fmt.Printf("migrated %d user(s) and %d note(s)\n", userCount, noteCount)
		},
	}

	rootCmd.AddCommand(migrateCommand)
	fs := migrateCommand.Flags()
	fs.StringVar(&migrateEnv.source, "source", "", "source sqlite database file")
	fs.StringVar(&migrateEnv.dest, "dest", "", "destination sqlite database file")
}
