package services

import (
	"context"
	"testing"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"
	"github.com/mikosha12/Hulu-beand-mern-b/dto"
	apperrors "github.com/mikosha12/Hulu-beand-mern-b/errors"
	"github.com/mikosha12/Hulu-beand-mern-b/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Deactivate(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserService(UserServiceOptions{Users: store.Users})
	ctx := context.Background()
	u := seedUser(t, store, "guest@hulu.test", constants.RoleUser)

	require.NoError(t, svc.Deactivate(ctx, u.ID))
	me, err := svc.Me(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, me.IsActive)

	err = svc.Deactivate(ctx, u.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))

	err = svc.Deactivate(ctx, "missing")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDBNotFound))
}

func TestUserService_ListAndDelete(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserService(UserServiceOptions{Users: store.Users})
	ctx := context.Background()
	seedUser(t, store, "a@hulu.test", constants.RoleAdmin)
	u := seedUser(t, store, "b@hulu.test", constants.RoleUser)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	require.NoError(t, svc.Delete(ctx, u.ID))
	_, err = svc.Get(ctx, u.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDBNotFound))
	assert.True(t, apperrors.HasCode(svc.Delete(ctx, u.ID), apperrors.ErrCodeDBNotFound))
}

func TestUserService_UpdateProfile(t *testing.T) {
	store := newTestStore(t)
	up := &fakeUploader{}
	svc := NewUserService(UserServiceOptions{Users: store.Users, Uploader: up})
	ctx := context.Background()
	u := seedUser(t, store, "guest@hulu.test", constants.RoleUser)
	seedUser(t, store, "taken@hulu.test", constants.RoleUser)
	session := ownerSession(u.ID)

	first, phone := "Almaz", "+251911000000"
	pic := image("me.jpg")
	updated, err := svc.UpdateProfile(ctx, session, dto.ProfilePatch{FirstName: &first, PhoneNumber: &phone}, &pic)
	require.NoError(t, err)
	assert.Equal(t, "Almaz", updated.FirstName)
	assert.Equal(t, "https://img.test/avatars/me.jpg", updated.ProfilePicture)

	stored, err := store.Users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "+251911000000", stored.PhoneNumber)
	assert.Equal(t, "https://img.test/avatars/me.jpg", stored.ProfilePicture)
	assert.Equal(t, constants.RoleUser, stored.Role)

	t.Run("upload failure changes nothing", func(t *testing.T) {
		up.failOn = "bad.jpg"
		other := "Changed"
		bad := image("bad.jpg")
		_, err := svc.UpdateProfile(ctx, session, dto.ProfilePatch{FirstName: &other}, &bad)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUpstream))

		stored, err := store.Users.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "Almaz", stored.FirstName)
	})

	t.Run("oversized picture", func(t *testing.T) {
		big := image("big.jpg")
		big.Size = constants.MaxImageBytes + 1
		_, err := svc.UpdateProfile(ctx, session, dto.ProfilePatch{}, &big)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))
	})

	t.Run("invalid email", func(t *testing.T) {
		email := "not-an-email"
		_, err := svc.UpdateProfile(ctx, session, dto.ProfilePatch{Email: &email}, nil)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))
	})

	t.Run("email already used", func(t *testing.T) {
		email := "Taken@hulu.test"
		_, err := svc.UpdateProfile(ctx, session, dto.ProfilePatch{Email: &email}, nil)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUserExists))
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, models.Session{}, dto.ProfilePatch{}, nil)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUnauthorized))
	})
}

func TestUserService_UpdateByEmail(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserService(UserServiceOptions{Users: store.Users})
	ctx := context.Background()
	u := seedUser(t, store, "guest@hulu.test", constants.RoleUser)

	role, last := constants.RoleAdmin, "Tesfaye"
	updated, err := svc.UpdateByEmail(ctx, "GUEST@hulu.test", dto.AdminUserPatch{
		ProfilePatch: dto.ProfilePatch{LastName: &last},
		Role:         &role,
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID, updated.ID)
	assert.Equal(t, constants.RoleAdmin, updated.Role)
	assert.Equal(t, "Tesfaye", updated.LastName)
	assert.True(t, updated.IsActive)

	admins, err := store.Users.ListAdmins(ctx)
	require.NoError(t, err)
	assert.Len(t, admins, 1)

	_, err = svc.UpdateByEmail(ctx, "nobody@hulu.test", dto.AdminUserPatch{})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDBNotFound))

	bad := 7
	_, err = svc.UpdateByEmail(ctx, "guest@hulu.test", dto.AdminUserPatch{Role: &bad})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))
}
