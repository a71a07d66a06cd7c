package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/skill-swap/backend/internal/models"
	appErr "github.com/skill-swap/backend/pkg/errors"
)

func TestRegisterDefaults(t *testing.T) {
	f := newFixture(t)
	u := f.register(t, "ana")

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, models.DefaultTheme, u.Theme)
	assert.True(t, u.IsPublic)
	assert.False(t, u.IsAdmin)
	assert.Zero(t, u.AverageRating)
	assert.Zero(t, u.RatingCount)
	assert.NotEqual(t, "pw-ana", u.PasswordHash)

	got, err := f.users.GetProfile(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StringList{}, got.SkillsOffered)
	assert.Equal(t, models.StringList{}, got.SkillsWanted)
	assert.Equal(t, models.StringList{}, got.Availability)
}

func TestRegisterListsRoundTripInOrder(t *testing.T) {
	f := newFixture(t)
	u := f.register(t, "ben", func(in *RegisterInput) {
		in.SkillsOffered = []string{"Rust", "Go", "C, C++"}
		in.SkillsWanted = []string{"Pottery"}
		in.Availability = []string{"Weekends", "Mon evening"}
		in.IsPublic = boolPtr(false)
	})

	got, err := f.users.GetProfile(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"Rust", "Go", "C, C++"}, got.SkillsOffered)
	assert.Equal(t, models.StringList{"Pottery"}, got.SkillsWanted)
	assert.Equal(t, models.StringList{"Weekends", "Mon evening"}, got.Availability)
	assert.False(t, got.IsPublic)
}

func TestRegisterRequiresNameAndPassword(t *testing.T) {
	f := newFixture(t)
	for _, in := range []*RegisterInput{
		{Name: "", Password: "x"},
		{Name: "   ", Password: "x"},
		{Name: "x", Password: ""},
	} {
		_, err := f.users.Register(context.Background(), in)
		assert.True(t, appErr.IsCode(err, appErr.CodeInvalid), "input %+v", in)
	}
}

func TestRegisterDuplicateNameConflicts(t *testing.T) {
	f := newFixture(t)
	first := f.register(t, "cleo", func(in *RegisterInput) { in.Location = "Lisbon" })

	_, err := f.users.Register(context.Background(), &RegisterInput{Name: "cleo", Password: "other", Location: "Porto"})
	require.True(t, appErr.IsCode(err, appErr.CodeConflict))

	got, err := f.users.GetProfile(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", got.Location)

	_, err = f.users.Authenticate(context.Background(), "cleo", "pw-cleo")
	assert.NoError(t, err)
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	u := f.register(t, "dan")

	got, err := f.users.Authenticate(context.Background(), "dan", "pw-dan")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	for _, pw := range []string{"pw-da", "PW-DAN", "pw-dan "} {
		_, err = f.users.Authenticate(context.Background(), "dan", pw)
		assert.True(t, appErr.IsCode(err, appErr.CodeUnauthorized), pw)
	}

	_, err = f.users.Authenticate(context.Background(), "nobody", "pw-dan")
	assert.True(t, appErr.IsCode(err, appErr.CodeUnauthorized))

	_, err = f.users.Authenticate(context.Background(), "dan", "")
	assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
}

func TestGetProfileUnknown(t *testing.T) {
	f := newFixture(t)
	_, err := f.users.GetProfile(context.Background(), "missing")
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}

func TestUpdateProfileKeepsUnsuppliedFields(t *testing.T) {
	f := newFixture(t)
	u := f.register(t, "eve", func(in *RegisterInput) {
		in.Location = "Oslo"
		in.SkillsOffered = []string{"Knitting"}
	})

	got, err := f.users.UpdateProfile(context.Background(), u.ID, &UpdateProfileInput{
		Bio:          strPtr("hello"),
		SkillsWanted: listPtr("Baking", " ", "Chess"),
	})
	require.NoError(t, err)
	assert.Equal(t, "eve", got.Name)
	assert.Equal(t, "Oslo", got.Location)
	assert.Equal(t, "hello", got.Bio)
	assert.Equal(t, models.StringList{"Knitting"}, got.SkillsOffered)
	assert.Equal(t, models.StringList{"Baking", " ", "Chess"}, got.SkillsWanted)
	assert.True(t, got.IsPublic)

	got, err = f.users.UpdateProfile(context.Background(), u.ID, &UpdateProfileInput{
		IsPublic: boolPtr(false),
		Theme:    strPtr("teal"),
	})
	require.NoError(t, err)
	assert.False(t, got.IsPublic)
	assert.Equal(t, "teal", got.Theme)
	assert.Equal(t, "hello", got.Bio)
}

func TestRegisterKeepsListItemsVerbatim(t *testing.T) {
	f := newFixture(t)
	u := f.register(t, "gus", func(in *RegisterInput) {
		in.SkillsOffered = []string{" Go ", "", "Rust"}
		in.Availability = []string{""}
	})

	got, err := f.users.GetProfile(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StringList{" Go ", "", "Rust"}, got.SkillsOffered)
	assert.Equal(t, models.StringList{""}, got.Availability)
	assert.Equal(t, models.StringList{}, got.SkillsWanted)
}

func TestUpdateProfileLeavesRatingAndBanColumnsAlone(t *testing.T) {
	f := newFixture(t)
	u := f.register(t, "hal")

	// Land a rating and a ban between the profile read and its write.
	landed := false
	require.NoError(t, f.db.Callback().Query().After("gorm:query").Register("test:concurrent_writes", func(d *gorm.DB) {
		if landed || d.Statement.Table != "users" {
			return
		}
		landed = true
		err := d.Session(&gorm.Session{NewDB: true}).
			Exec("UPDATE users SET average_rating = ?, rating_count = ?, is_banned = ? WHERE id = ?", 5, 1, true, u.ID).Error
		require.NoError(t, err)
	}))

	got, err := f.users.UpdateProfile(context.Background(), u.ID, &UpdateProfileInput{Bio: strPtr("hi")})
	require.NoError(t, err)
	require.True(t, landed)
	assert.Equal(t, "hi", got.Bio)
	assert.Equal(t, 1, got.RatingCount)
	assert.InDelta(t, 5.0, got.AverageRating, 1e-9)
	assert.True(t, got.IsBanned)

	var stored models.User
	require.NoError(t, f.db.First(&stored, "id = ?", u.ID).Error)
	assert.Equal(t, 1, stored.RatingCount)
	assert.InDelta(t, 5.0, stored.AverageRating, 1e-9)
	assert.True(t, stored.IsBanned)
	assert.Equal(t, "hi", stored.Bio)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	f := newFixture(t)
	_, err := f.users.UpdateProfile(context.Background(), "missing", &UpdateProfileInput{Bio: strPtr("x")})
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}

func TestUpdateProfileRenameConflicts(t *testing.T) {
	f := newFixture(t)
	f.register(t, "fay")
	u := f.register(t, "gus")

	_, err := f.users.UpdateProfile(context.Background(), u.ID, &UpdateProfileInput{Name: strPtr("fay")})
	assert.True(t, appErr.IsCode(err, appErr.CodeConflict))

	_, err = f.users.UpdateProfile(context.Background(), u.ID, &UpdateProfileInput{Name: strPtr(" ")})
	assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))

	// renaming to the current name is a no-op, not a conflict
	got, err := f.users.UpdateProfile(context.Background(), u.ID, &UpdateProfileInput{Name: strPtr("gus")})
	require.NoError(t, err)
	assert.Equal(t, "gus", got.Name)
}

func TestUpdateProfilePhotoUpload(t *testing.T) {
	f := newFixture(t)
	u := f.register(t, "hal")

	f.photos.On("Save", mock.Anything, mock.MatchedBy(func(name string) bool {
		return strings.HasSuffix(name, ".jpg") && len(name) > len(".jpg")
	}), mock.Anything, "image/jpeg").Return("/uploads/generated.jpg", nil).Once()

	got, err := f.users.UpdateProfile(context.Background(), u.ID, &UpdateProfileInput{
		Photo:    &PhotoUpload{Filename: "Me.JPG", ContentType: "image/jpeg", Body: strings.NewReader("jpeg")},
		PhotoURL: strPtr("https://ignored.example/p.png"),
	})
	require.NoError(t, err)
	require.NotNil(t, got.ProfilePhoto)
	assert.Equal(t, "/uploads/generated.jpg", *got.ProfilePhoto)
	f.photos.AssertExpectations(t)
}

func TestUpdateProfileRejectsDisallowedPhoto(t *testing.T) {
	f := newFixture(t)
	u := f.register(t, "ivy")
	_, err := f.users.UpdateProfile(context.Background(), u.ID, &UpdateProfileInput{PhotoURL: strPtr("https://cdn.example/ivy.png")})
	require.NoError(t, err)

	_, err = f.users.UpdateProfile(context.Background(), u.ID, &UpdateProfileInput{
		Bio:   strPtr("changed"),
		Photo: &PhotoUpload{Filename: "script.exe", Body: strings.NewReader("MZ")},
	})
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))
	f.photos.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	got, err := f.users.GetProfile(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Bio)
	require.NotNil(t, got.ProfilePhoto)
	assert.Equal(t, "https://cdn.example/ivy.png", *got.ProfilePhoto)
}

func TestUpdateProfilePhotoURL(t *testing.T) {
	f := newFixture(t)
	u := f.register(t, "jo")

	got, err := f.users.UpdateProfile(context.Background(), u.ID, &UpdateProfileInput{PhotoURL: strPtr("https://cdn.example/jo.gif")})
	require.NoError(t, err)
	require.NotNil(t, got.ProfilePhoto)
	assert.Equal(t, "https://cdn.example/jo.gif", *got.ProfilePhoto)

	got, err = f.users.UpdateProfile(context.Background(), u.ID, &UpdateProfileInput{PhotoURL: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, got.ProfilePhoto)
}

func TestAllowedPhoto(t *testing.T) {
	for name, want := range map[string]bool{
		"a.png": true, "a.JPG": true, "a.jpeg": true, "a.Gif": true,
		"a.bmp": false, "png": false, "a.png.exe": false, "": false,
	} {
		assert.Equal(t, want, AllowedPhoto(name), name)
	}
}

func TestListPublicUsersSearch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "PyDev", func(in *RegisterInput) { in.SkillsOffered = []string{"Python"} })
	f.register(t, "alice", func(in *RegisterInput) { in.Location = "Pythonville" })
	f.register(t, "bob", func(in *RegisterInput) { in.SkillsWanted = []string{"python scripting"} })
	f.register(t, "carol", func(in *RegisterInput) {
		in.SkillsOffered = []string{"Python"}
		in.IsPublic = boolPtr(false)
	})
	dave := f.register(t, "dave", func(in *RegisterInput) { in.SkillsOffered = []string{"PYTHON"} })
	f.register(t, "erin", func(in *RegisterInput) { in.SkillsOffered = []string{"Go"} })
	require.NoError(t, f.users.SetBanned(ctx, dave.ID, true))

	got, err := f.users.ListPublicUsers(ctx, "python")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"PyDev", "alice", "bob"}, names(got))

	got, err = f.users.ListPublicUsers(ctx, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"PyDev", "alice", "bob", "erin"}, names(got))
}

func TestListPublicUsersTreatsWildcardsLiterally(t *testing.T) {
	f := newFixture(t)
	f.register(t, "kai", func(in *RegisterInput) { in.SkillsOffered = []string{"100% effort"} })
	f.register(t, "lea", func(in *RegisterInput) { in.SkillsOffered = []string{"Chess"} })

	got, err := f.users.ListPublicUsers(context.Background(), "%")
	require.NoError(t, err)
	assert.Equal(t, []string{"kai"}, names(got))

	got, err = f.users.ListPublicUsers(context.Background(), "_")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSetBannedUnknownUser(t *testing.T) {
	f := newFixture(t)
	err := f.users.SetBanned(context.Background(), "missing", true)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin, created, err := f.users.EnsureAdmin(ctx, "Admin User", "Adminpass")
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, "Platform Administrator", admin.Bio)

	again, created, err := f.users.EnsureAdmin(ctx, "Admin User", "different")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, admin.ID, again.ID)

	_, err = f.users.Authenticate(ctx, "Admin User", "Adminpass")
	assert.NoError(t, err)
}

func names(users []models.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Name)
	}
	return out
}
