package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MB-Montecillo/EMS-Webdev2/internal/domain"
	"github.com/MB-Montecillo/EMS-Webdev2/internal/service/ports/mocks"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  domain.RoleAttendee,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleAttendee, user.Role)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	svc := NewUserService(mocks.NewMockUserRepo(t))

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  "admin",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:  "Alice",
		Email: "taken@example.com",
		Role:  domain.RoleOrganizer,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Update_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	current := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleAttendee}
	pic := "https://cdn.example.com/alice.png"

	repo.EXPECT().GetByID(mock.Anything, "u1").Return(current, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.Update(context.Background(), "u1", domain.UpdateUserInput{
		Name:           "Alice B",
		Email:          "alice.b@example.com",
		Role:           domain.RoleOrganizer,
		ProfilePicture: &pic,
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice B", updated.Name)
	assert.Equal(t, domain.RoleOrganizer, updated.Role)
	require.NotNil(t, updated.ProfilePicture)
	assert.Equal(t, pic, *updated.ProfilePicture)
}

func TestUserService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.UpdateUserInput{
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  domain.RoleAttendee,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Delete_HasBookings(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Delete(mock.Anything, "u1").Return(domain.ErrUserHasBookings)

	err := svc.Delete(context.Background(), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserHasBookings)
}

func TestUserService_List(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().List(mock.Anything).Return([]*domain.User{{ID: "u1"}, {ID: "u2"}}, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
