package service

import (
	"context"
	"testing"

	"github.com/chroniclenote/chronicle-note-service/internal/domain"
	"github.com/chroniclenote/chronicle-note-service/internal/dto"
	"github.com/chroniclenote/chronicle-note-service/pkg/app"
	"github.com/chroniclenote/chronicle-note-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// memUserRepo 内存用户仓储
type memUserRepo struct {
	domain.UserRepository
	users  map[int64]*domain.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func (m *memUserRepo) GetByUID(ctx context.Context, uid int64) (*domain.User, error) {
	u, ok := m.users[uid]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	cp := *user
	cp.UID = m.nextID
	m.nextID++
	m.users[cp.UID] = &cp
	out := cp
	return &out, nil
}

func newTestUserService(repo domain.UserRepository, registerEnabled bool) UserService {
	tm := app.NewTokenManager(app.TokenConfig{
		SecretKey: "test-secret",
		Issuer:    "test",
		Expiry:    0,
	})
	return NewUserService(repo, tm, zap.NewNop(), &ServiceConfig{
		User: UserServiceConfig{RegisterIsEnable: registerEnabled},
	})
}

func TestUserRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	repo := newMemUserRepo()
	svc := newTestUserService(repo, true)

	registered, err := svc.Register(ctx, &dto.UserCreateRequest{
		Username:        "herodotus",
		Password:        "halicarnassus",
		ConfirmPassword: "halicarnassus",
	}, "127.0.0.1")
	assert.Nil(t, err)
	assert.Equal(t, "herodotus", registered.Username)
	assert.NotEmpty(t, registered.Token)

	// 密码以 bcrypt 哈希存储，绝不落明文
	stored := repo.users[registered.UID]
	assert.NotEqual(t, "halicarnassus", stored.Password)
	assert.NotEmpty(t, stored.Password)

	logged, err := svc.Login(ctx, &dto.UserLoginRequest{
		Username: "herodotus",
		Password: "halicarnassus",
	}, "127.0.0.1")
	assert.Nil(t, err)
	assert.Equal(t, registered.UID, logged.UID)
	assert.NotEmpty(t, logged.Token)
}

// 用户名不存在与密码错误返回同一错误
func TestUserLoginFailedIndistinguishable(t *testing.T) {
	ctx := context.Background()
	repo := newMemUserRepo()
	svc := newTestUserService(repo, true)

	_, err := svc.Register(ctx, &dto.UserCreateRequest{
		Username:        "thucydides",
		Password:        "peloponnese",
		ConfirmPassword: "peloponnese",
	}, "")
	assert.Nil(t, err)

	_, err = svc.Login(ctx, &dto.UserLoginRequest{Username: "thucydides", Password: "wrong"}, "")
	assert.Equal(t, code.ErrorUserLoginFailed, err)

	_, err = svc.Login(ctx, &dto.UserLoginRequest{Username: "nobody", Password: "wrong"}, "")
	assert.Equal(t, code.ErrorUserLoginFailed, err)
}

func TestUserRegisterConflict(t *testing.T) {
	ctx := context.Background()
	repo := newMemUserRepo()
	svc := newTestUserService(repo, true)

	req := &dto.UserCreateRequest{
		Username:        "polybius",
		Password:        "megalopolis",
		ConfirmPassword: "megalopolis",
	}
	_, err := svc.Register(ctx, req, "")
	assert.Nil(t, err)

	_, err = svc.Register(ctx, req, "")
	assert.Equal(t, code.ErrorUserAlreadyExists, err)
}

func TestUserRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService(newMemUserRepo(), true)

	// 密码确认不一致
	_, err := svc.Register(ctx, &dto.UserCreateRequest{
		Username:        "livy",
		Password:        "one",
		ConfirmPassword: "two",
	}, "")
	assert.Equal(t, code.ErrorPasswordNotValid, err)

	// 非法用户名
	_, err = svc.Register(ctx, &dto.UserCreateRequest{
		Username:        "bad name!",
		Password:        "pw",
		ConfirmPassword: "pw",
	}, "")
	assert.Equal(t, code.ErrorInvalidParams, err)
}

func TestUserRegisterDisabled(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService(newMemUserRepo(), false)

	_, err := svc.Register(ctx, &dto.UserCreateRequest{
		Username:        "tacitus",
		Password:        "annales",
		ConfirmPassword: "annales",
	}, "")
	assert.Equal(t, code.ErrorUserRegisterIsDisable, err)
}

func TestUserGetInfo(t *testing.T) {
	ctx := context.Background()
	repo := newMemUserRepo()
	svc := newTestUserService(repo, true)

	registered, err := svc.Register(ctx, &dto.UserCreateRequest{
		Username:        "suetonius",
		Password:        "caesares",
		ConfirmPassword: "caesares",
	}, "")
	assert.Nil(t, err)

	info, err := svc.GetInfo(ctx, registered.UID)
	assert.Nil(t, err)
	assert.Equal(t, "suetonius", info.Username)
	// GetInfo 不签发令牌
	assert.Empty(t, info.Token)

	_, err = svc.GetInfo(ctx, 99)
	assert.Equal(t, code.ErrorUserNotFound, err)
}
