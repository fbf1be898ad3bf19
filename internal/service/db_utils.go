// Package service 实现业务逻辑层
package service

import (
	"errors"

	"gorm.io/gorm"
)

// isRecordNotFound 判断是否为记录不存在错误
func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
