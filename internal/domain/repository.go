// Package domain 定义领域模型和接口
package domain

import "context"

// UserRepository 用户仓储接口
type UserRepository interface {
	// GetByUID 根据UID获取用户
	GetByUID(ctx context.Context, uid int64) (*User, error)

	// GetByUsername 根据用户名获取用户
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Create 创建用户
	Create(ctx context.Context, user *User) (*User, error)
}

// NoteRepository 笔记仓储接口，全部按属主过滤
type NoteRepository interface {
	// GetByID 根据ID获取笔记
	GetByID(ctx context.Context, id, uid int64) (*Note, error)

	// GetAnyByID 不限属主获取笔记，仅供公开解析与间接属主判定使用
	GetAnyByID(ctx context.Context, id int64) (*Note, error)

	// Create 创建笔记
	Create(ctx context.Context, note *Note, uid int64) (*Note, error)

	// Update 更新笔记
	Update(ctx context.Context, note *Note, uid int64) (*Note, error)

	// DeleteWithLinks 在一个事务内物理删除笔记及其全部分享链接
	DeleteWithLinks(ctx context.Context, id, uid int64) error

	// List 按条件分页获取笔记列表
	List(ctx context.Context, uid int64, filter *NoteFilter, page, pageSize int) ([]*Note, error)

	// ListAll 获取属主全部笔记，按创建时间倒序
	ListAll(ctx context.Context, uid int64) ([]*Note, error)

	// ListCount 按条件获取笔记数量
	ListCount(ctx context.Context, uid int64, filter *NoteFilter) (int64, error)
}

// PublicLinkRepository 公开链接仓储接口
type PublicLinkRepository interface {
	// GetByID 根据ID获取链接
	GetByID(ctx context.Context, id int64) (*PublicLink, error)

	// GetByToken 根据令牌获取链接
	GetByToken(ctx context.Context, token string) (*PublicLink, error)

	// GetByNoteID 获取笔记的现有链接（最早创建的一条）
	GetByNoteID(ctx context.Context, noteID int64) (*PublicLink, error)

	// Create 创建链接
	Create(ctx context.Context, link *PublicLink) (*PublicLink, error)

	// UpdateExpiry 刷新过期时间并清除吊销标记
	UpdateExpiry(ctx context.Context, id int64, expiresAt string) error

	// UpdateRevoked 更新吊销标记
	UpdateRevoked(ctx context.Context, id int64, revoked bool) error

	// ListByOwner 获取属主全部链接及笔记标题，按创建时间倒序
	ListByOwner(ctx context.Context, uid int64) ([]*OwnedLink, error)

	// ListExpiring 获取未吊销且设置了过期时间的链接
	ListExpiring(ctx context.Context) ([]*PublicLink, error)

	// RevokeAll 在单个事务内批量吊销
	RevokeAll(ctx context.Context, ids []int64) error
}
