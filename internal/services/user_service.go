package services

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/skill-swap/backend/internal/models"
	"github.com/skill-swap/backend/internal/repository"
	"github.com/skill-swap/backend/internal/storage"
	appErr "github.com/skill-swap/backend/pkg/errors"
	"github.com/skill-swap/backend/pkg/logger"
	"github.com/skill-swap/backend/pkg/utils"
	"go.uber.org/zap"
)

// UserService is the user directory: registration, credentials, profiles and search.
type UserService interface {
	Register(ctx context.Context, input *RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, name, password string) (*models.User, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*models.User, error)
	ListPublicUsers(ctx context.Context, searchTerm string) ([]models.User, error)
	ListAllUsers(ctx context.Context) ([]models.User, error)
	SetBanned(ctx context.Context, userID string, banned bool) error
	EnsureAdmin(ctx context.Context, name, password string) (*models.User, bool, error)
}

type RegisterInput struct {
	Name          string
	Password      string
	Location      string
	SkillsOffered []string
	SkillsWanted  []string
	Availability  []string
	// IsPublic defaults to true when nil.
	IsPublic *bool
}

// UpdateProfileInput carries only the fields the caller supplied; nil keeps the stored value.
type UpdateProfileInput struct {
	Name          *string
	Location      *string
	Bio           *string
	Theme         *string
	SkillsOffered *[]string
	SkillsWanted  *[]string
	Availability  *[]string
	IsPublic      *bool
	// PhotoURL replaces the photo reference when no Photo is uploaded; "" clears it.
	PhotoURL *string
	Photo    *PhotoUpload
}

type PhotoUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

var allowedPhotoExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// AllowedPhoto reports whether filename carries an accepted image extension.
func AllowedPhoto(filename string) bool {
	return allowedPhotoExtensions[strings.ToLower(filepath.Ext(filename))]
}

type userService struct {
	store  *repository.Store
	photos storage.Storage
}

func NewUserService(store *repository.Store, photos storage.Storage) UserService {
	return &userService{store: store, photos: photos}
}

// Ensure interfaces are satisfied at compile time
var _ UserService = (*userService)(nil)

func (s *userService) Register(ctx context.Context, input *RegisterInput) (*models.User, error) {
	if strings.TrimSpace(input.Name) == "" || input.Password == "" {
		return nil, appErr.New(appErr.CodeInvalid, "Username and password are required")
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}
	u := &models.User{
		Name:          input.Name,
		PasswordHash:  hash,
		Location:      input.Location,
		SkillsOffered: toList(input.SkillsOffered),
		SkillsWanted:  toList(input.SkillsWanted),
		Availability:  toList(input.Availability),
		IsPublic:      isPublic,
		Theme:         models.DefaultTheme,
	}

	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := ensureNameFree(ctx, tx, u.Name, ""); err != nil {
			return err
		}
		return tx.Users.Create(ctx, u)
	})
	if err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, appErr.New(appErr.CodeConflict, "Username already exists")
		}
		return nil, err
	}

	logger.L().Info("user registered", zap.String("user_id", u.ID), zap.String("name", u.Name))
	return u, nil
}

func (s *userService) Authenticate(ctx context.Context, name, password string) (*models.User, error) {
	if name == "" || password == "" {
		return nil, appErr.New(appErr.CodeInvalid, "Username and password are required")
	}
	var u models.User
	if err := s.store.Users.GetByName(ctx, name, &u); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeUnauthorized, "Invalid username or password")
		}
		return nil, err
	}
	if !utils.CheckPassword(u.PasswordHash, password) {
		return nil, appErr.New(appErr.CodeUnauthorized, "Invalid username or password")
	}
	return &u, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	var u models.User
	if err := s.store.Users.GetByID(ctx, userID, &u); err != nil {
		return nil, userNotFound(err)
	}
	return &u, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*models.User, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, appErr.New(appErr.CodeInvalid, "Username cannot be empty")
	}

	var u models.User
	var storedPhoto string
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Users.GetByID(ctx, userID, &u); err != nil {
			return userNotFound(err)
		}

		if input.Photo != nil && !AllowedPhoto(input.Photo.Filename) {
			return appErr.New(appErr.CodeInvalid, "Invalid file type for profile photo")
		}
		if input.Name != nil && *input.Name != u.Name {
			if err := ensureNameFree(ctx, tx, *input.Name, u.ID); err != nil {
				return err
			}
		}

		applyProfileFields(&u, input)

		switch {
		case input.Photo != nil:
			name := uuid.NewString() + strings.ToLower(filepath.Ext(input.Photo.Filename))
			ref, err := s.photos.Save(ctx, name, input.Photo.Body, input.Photo.ContentType)
			if err != nil {
				return appErr.Wrap(err, appErr.CodeInternal, "store profile photo failed")
			}
			storedPhoto = name
			u.ProfilePhoto = &ref
		case input.PhotoURL != nil:
			if *input.PhotoURL == "" {
				u.ProfilePhoto = nil
			} else {
				ref := *input.PhotoURL
				u.ProfilePhoto = &ref
			}
		}

		if err := tx.Users.UpdateProfile(ctx, &u); err != nil {
			return err
		}
		return tx.Users.GetByID(ctx, u.ID, &u)
	})
	if err != nil {
		if storedPhoto != "" {
			if derr := s.photos.Delete(context.WithoutCancel(ctx), storedPhoto); derr != nil {
				logger.L().Warn("orphaned profile photo", zap.String("object", storedPhoto), zap.Error(derr))
			}
		}
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, appErr.New(appErr.CodeConflict, "Username already exists")
		}
		return nil, err
	}

	logger.L().Info("profile updated", zap.String("user_id", u.ID), zap.Bool("photo_uploaded", storedPhoto != ""))
	return &u, nil
}

func (s *userService) ListPublicUsers(ctx context.Context, searchTerm string) ([]models.User, error) {
	return s.store.Users.ListPublic(ctx, strings.TrimSpace(searchTerm))
}

func (s *userService) ListAllUsers(ctx context.Context) ([]models.User, error) {
	return s.store.Users.ListAll(ctx)
}

func (s *userService) SetBanned(ctx context.Context, userID string, banned bool) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		return tx.Users.SetBanned(ctx, userID, banned)
	})
	if err != nil {
		return userNotFound(err)
	}
	logger.L().Info("user ban flag changed", zap.String("user_id", userID), zap.Bool("banned", banned))
	return nil
}

// EnsureAdmin creates the platform administrator unless a user with that name
// already exists. The boolean reports whether a row was created.
func (s *userService) EnsureAdmin(ctx context.Context, name, password string) (*models.User, bool, error) {
	var existing models.User
	err := s.store.Users.GetByName(ctx, name, &existing)
	if err == nil {
		return &existing, false, nil
	}
	if !appErr.IsCode(err, appErr.CodeNotFound) {
		return nil, false, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, false, appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
	}
	admin := &models.User{
		Name:          name,
		PasswordHash:  hash,
		SkillsOffered: models.StringList{},
		SkillsWanted:  models.StringList{},
		Availability:  models.StringList{},
		IsPublic:      true,
		IsAdmin:       true,
		Bio:           "Platform Administrator",
		Theme:         models.DefaultTheme,
	}
	if err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		return tx.Users.Create(ctx, admin)
	}); err != nil {
		return nil, false, err
	}
	logger.L().Info("default admin user created", zap.String("user_id", admin.ID), zap.String("name", name))
	return admin, true, nil
}

func ensureNameFree(ctx context.Context, tx *repository.Store, name, selfID string) error {
	var other models.User
	err := tx.Users.GetByName(ctx, name, &other)
	switch {
	case err == nil && other.ID != selfID:
		return appErr.New(appErr.CodeConflict, "Username already exists")
	case err == nil, appErr.IsCode(err, appErr.CodeNotFound):
		return nil
	default:
		return err
	}
}

func applyProfileFields(u *models.User, in *UpdateProfileInput) {
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Location != nil {
		u.Location = *in.Location
	}
	if in.Bio != nil {
		u.Bio = *in.Bio
	}
	if in.Theme != nil {
		u.Theme = *in.Theme
	}
	if in.SkillsOffered != nil {
		u.SkillsOffered = toList(*in.SkillsOffered)
	}
	if in.SkillsWanted != nil {
		u.SkillsWanted = toList(*in.SkillsWanted)
	}
	if in.Availability != nil {
		u.Availability = toList(*in.Availability)
	}
	if in.IsPublic != nil {
		u.IsPublic = *in.IsPublic
	}
}

// toList keeps items verbatim and in order; nil becomes an empty list.
func toList(in []string) models.StringList {
	if in == nil {
		return models.StringList{}
	}
	return models.StringList(append([]string(nil), in...))
}

func userNotFound(err error) error {
	if appErr.IsCode(err, appErr.CodeNotFound) {
		return appErr.New(appErr.CodeNotFound, "User not found")
	}
	return err
}
