package repository

import (
	"context"
	"strings"

	"github.com/skill-swap/backend/internal/models"
	appErr "github.com/skill-swap/backend/pkg/errors"
	"gorm.io/gorm"
)

type UserRepository interface {
	BaseRepository[models.User]
	GetByName(ctx context.Context, name string, dest *models.User) error
	ListPublic(ctx context.Context, searchTerm string) ([]models.User, error)
	ListAll(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, u *models.User) error
	SetBanned(ctx context.Context, userID string, banned bool) error
	ApplyRating(ctx context.Context, userID string, rating int) (bool, error)
}

type userRepository struct {
	BaseRepository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository[models.User](db, "user"), db: db}
}

func (r *userRepository) GetByName(ctx context.Context, name string, dest *models.User) error {
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(dest).Error; err != nil {
		return translate(err, "user", "get")
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListPublic returns visible, non-banned users. A non-empty searchTerm is matched
// case-insensitively as a substring of name, skills or location.
func (r *userRepository) ListPublic(ctx context.Context, searchTerm string) ([]models.User, error) {
	q := r.db.WithContext(ctx).Where("is_public = ? AND is_banned = ?", true, false)
	if searchTerm != "" {
		p := "%" + likeEscaper.Replace(strings.ToLower(searchTerm)) + "%"
		q = q.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(skills_offered) LIKE ? ESCAPE '\' OR LOWER(skills_wanted) LIKE ? ESCAPE '\' OR LOWER(location) LIKE ? ESCAPE '\')`, p, p, p, p)
	}
	var out []models.User
	if err := q.Order("created_at DESC").Order("id ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list public users failed")
	}
	return out, nil
}

func (r *userRepository) ListAll(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list users failed")
	}
	return out, nil
}

// profileColumns are the fields a member may edit; rating, ban and admin
// columns are only written by their own single-column statements.
var profileColumns = []string{
	"name", "location", "bio", "theme",
	"skills_offered", "skills_wanted", "availability",
	"is_public", "profile_photo",
}

func (r *userRepository) UpdateProfile(ctx context.Context, u *models.User) error {
	res := r.db.WithContext(ctx).Model(u).Select(profileColumns).Updates(u)
	if res.Error != nil {
		return translate(res.Error, "user", "update")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "user not found")
	}
	return nil
}

func (r *userRepository) SetBanned(ctx context.Context, userID string, banned bool) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("is_banned", banned)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "update ban flag failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "user not found")
	}
	return nil
}

// ApplyRating folds one rating into the running average in a single statement.
// It reports false when no such user exists.
func (r *userRepository) ApplyRating(ctx context.Context, userID string, rating int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"average_rating": gorm.Expr("(average_rating * rating_count + ?) / (rating_count + 1)", rating),
		"rating_count":   gorm.Expr("rating_count + 1"),
	})
	if res.Error != nil {
		return false, appErr.Wrap(res.Error, appErr.CodeInternal, "update rating failed")
	}
	return res.RowsAffected > 0, nil
}
