package userRepo

import (
	"context"

	"github.com/campusmatch/backend/internal/entity"
	"gorm.io/gorm"
)

type IUserRepo interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByID(ctx context.Context, id uint) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetCandidates(ctx context.Context, viewerID uint) ([]entity.User, error)
	UpdateProfile(ctx context.Context, req entity.UpdateProfileRequest) error
	SetProfileImage(ctx context.Context, userID uint, url string) error
}

type UserRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IUserRepo {
	return &UserRepo{
		db: db,
	}
}

func (r *UserRepo) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	result := r.db.WithContext(ctx).Create(user)
	return user, result.Error
}

func (r *UserRepo) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&user)
	return &user, result.Error
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&user)
	return &user, result.Error
}

// GetCandidates returns every user except the viewer, filtered by the
// viewer's stated preference. A missing viewer row browses as
// "Everyone". Already-liked and already-matched users are not excluded.
func (r *UserRepo) GetCandidates(ctx context.Context, viewerID uint) ([]entity.User, error) {
	preference := entity.PreferenceEveryone

	var viewer entity.User
	err := r.db.WithContext(ctx).Select("preference").Where("id = ?", viewerID).First(&viewer).Error
	if err == nil && viewer.Preference != "" {
		preference = viewer.Preference
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Omit("password").
		Where("id != ?", viewerID)

	switch preference {
	case entity.PreferenceMen:
		query = query.Where("gender = ?", "Man")
	case entity.PreferenceWomen:
		query = query.Where("gender = ?", "Woman")
	}

	var candidates []entity.User
	result := query.Order("id").Find(&candidates)
	return candidates, result.Error
}

func (r *UserRepo) UpdateProfile(ctx context.Context, req entity.UpdateProfileRequest) error {
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", req.UserID).
		Updates(map[string]interface{}{
			"full_name": req.FullName,
			"college":   req.College,
			"age":       req.Age,
			"bio":       req.Bio,
			"interests": entity.JoinInterests(req.Interests),
		}).Error
}

func (r *UserRepo) SetProfileImage(ctx context.Context, userID uint, url string) error {
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", userID).
		Update("profile_image_url", url).Error
}
