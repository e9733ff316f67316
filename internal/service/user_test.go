package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/casernelab/firequiz/internal/core"
	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/domain/model"
	"github.com/casernelab/firequiz/internal/mocks"
)

func adminSession() domainauth.Session {
	return domainauth.Session{ID: "sess-admin", UserID: "admin-1", Role: domainauth.RoleAdmin}
}

func encadrantSession() domainauth.Session {
	return domainauth.Session{ID: "sess-enc", UserID: "enc-1", Role: domainauth.RoleEncadrant}
}

func playerSession() domainauth.Session {
	return domainauth.Session{ID: "sess-player", UserID: "player-1", Role: domainauth.RolePlayer}
}

func newUserService(t *testing.T) (*mocks.MockUserRepository, *UserService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mocks.NewMockUserRepository(ctrl)
	return repo, NewUserService(UserServiceOptions{Users: repo})
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	t.Parallel()
	repo, svc := newUserService(t)
	ctx := context.Background()

	req := &model.CreateUserRequest{
		Username: "newenc",
		Email:    "newenc@example.com",
		Role:     domainauth.RoleEncadrant,
	}
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got *model.CreateUserRequest) (*model.User, error) {
			assert.NotEmpty(t, got.PasswordHash)
			assert.NotEqual(t, "secret1", got.PasswordHash)
			return &model.User{ID: "u-1", Username: got.Username, Role: got.Role}, nil
		})

	u, err := svc.Create(ctx, adminSession(), req, "secret1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
}

func TestUserService_Create_Forbidden(t *testing.T) {
	t.Parallel()
	_, svc := newUserService(t)

	for _, actor := range []domainauth.Session{encadrantSession(), playerSession()} {
		_, err := svc.Create(context.Background(), actor, &model.CreateUserRequest{}, "secret1")
		assert.ErrorIs(t, err, core.ErrForbidden)
	}
}

func TestUserService_Create_ShortPassword(t *testing.T) {
	t.Parallel()
	_, svc := newUserService(t)

	_, err := svc.Create(context.Background(), adminSession(), &model.CreateUserRequest{}, "abc")
	assert.Error(t, err)
}

func TestUserService_GetByID_SelfAccess(t *testing.T) {
	t.Parallel()
	repo, svc := newUserService(t)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, "player-1").Return(&model.User{ID: "player-1"}, nil)
	u, err := svc.GetByID(ctx, playerSession(), "player-1")
	require.NoError(t, err)
	assert.Equal(t, "player-1", u.ID)

	_, err = svc.GetByID(ctx, playerSession(), "someone-else")
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestUserService_List_AdminOnly(t *testing.T) {
	t.Parallel()
	repo, svc := newUserService(t)
	ctx := context.Background()

	repo.EXPECT().List(ctx, gomock.Any()).Return([]*model.User{{ID: "u-1"}}, nil)
	list, err := svc.List(ctx, adminSession(), model.UsersListOptions{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.List(ctx, encadrantSession(), model.UsersListOptions{})
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestUserService_Update_SelfDemotionBlocked(t *testing.T) {
	t.Parallel()
	_, svc := newUserService(t)

	player := domainauth.RolePlayer
	_, err := svc.Update(context.Background(), adminSession(), "admin-1",
		model.UpdateUserRequest{Role: &player})
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestUserService_Delete(t *testing.T) {
	t.Parallel()
	repo, svc := newUserService(t)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, "u-2").Return(true, nil)
	ok, err := svc.Delete(ctx, adminSession(), "u-2")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.Delete(ctx, adminSession(), "admin-1")
	assert.ErrorIs(t, err, core.ErrForbidden, "self-deletion refused")

	_, err = svc.Delete(ctx, playerSession(), "u-2")
	assert.ErrorIs(t, err, core.ErrForbidden)
}
