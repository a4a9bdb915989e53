package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo 内存仓储（单元测试用）
type fakeRepo struct {
	users map[string]*User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*User)}
}

func (f *fakeRepo) Create(_ context.Context, u *User) error {
	if _, ok := f.users[u.Username]; ok {
		return ErrUsernameTaken
	}
	u.ID = uint(len(f.users) + 1)
	f.users[u.Username] = u
	return nil
}

func (f *fakeRepo) FindByUsername(_ context.Context, username string) (*User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func TestService_RegisterAndAuthenticate(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	u, err := svc.Register(ctx, "ivanov", "password123")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, u.Role, "注册入口只能创建USER角色")
	assert.NotEqual(t, "password123", u.Password, "密码必须以哈希形式存储")

	got, err := svc.Authenticate(ctx, "ivanov", "password123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestService_DuplicateUsername(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "ivanov", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "ivanov", "password456")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestService_BadCredentials(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "ivanov", "password123")
	require.NoError(t, err)

	// 密码错误与用户不存在返回同一错误，防止用户名枚举
	_, err = svc.Authenticate(ctx, "ivanov", "wrongpass1")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "password123")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestService_WeakPassword(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	for _, password := range []string{"short1", "allletters", "12345678", "waytoolongpassword1234"} {
		_, err := svc.Register(ctx, "ivanov", password)
		assert.ErrorIs(t, err, ErrWeakPassword, "password=%s", password)
	}
}
