package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skill-swap/backend/internal/models"
	appErr "github.com/skill-swap/backend/pkg/errors"
)

func TestPlatformMessage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	msg, err := f.admin.PlatformMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", msg)

	first, err := f.admin.SetPlatformMessage(ctx, "maintenance tonight")
	require.NoError(t, err)
	second, err := f.admin.SetPlatformMessage(ctx, "")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	// identical timestamps fall back to insertion order
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.db.Model(&models.PlatformMessage{}).Where("1 = 1").Update("created_at", ts).Error)

	msg, err = f.admin.PlatformMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", msg)

	_, err = f.admin.SetPlatformMessage(ctx, "welcome")
	require.NoError(t, err)
	msg, err = f.admin.PlatformMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "welcome", msg)

	var n int64
	require.NoError(t, f.db.Model(&models.PlatformMessage{}).Count(&n).Error)
	assert.EqualValues(t, 3, n)
}

func TestAdminBanHidesFromDirectory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.register(t, "mia", func(in *RegisterInput) { in.SkillsOffered = []string{"Yoga"} })

	require.NoError(t, f.admin.SetBanned(ctx, u.ID, true))
	public, err := f.users.ListPublicUsers(ctx, "yoga")
	require.NoError(t, err)
	assert.Empty(t, public)

	all, err := f.admin.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsBanned)

	require.NoError(t, f.admin.SetBanned(ctx, u.ID, false))
	public, err = f.users.ListPublicUsers(ctx, "yoga")
	require.NoError(t, err)
	assert.Len(t, public, 1)

	assert.True(t, appErr.IsCode(f.admin.SetBanned(ctx, "missing", true), appErr.CodeNotFound))
}

func TestAdminListsEverything(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.register(t, "a")
	b := f.register(t, "b", func(in *RegisterInput) { in.IsPublic = boolPtr(false) })
	f.swap(t, a, b)
	f.swap(t, b, a)

	users, err := f.admin.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	swaps, err := f.admin.ListSwapRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, swaps, 2)
}

func TestIsAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin, _, err := f.users.EnsureAdmin(ctx, "Admin User", "Adminpass")
	require.NoError(t, err)
	u := f.register(t, "nia")

	ok, err := f.admin.IsAdmin(ctx, admin.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.admin.IsAdmin(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.admin.IsAdmin(ctx, "missing")
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}
