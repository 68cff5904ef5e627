package authUseCase

import (
	"context"
	"mime/multipart"

	"github.com/campusmatch/backend/internal/datastore/media"
	"github.com/campusmatch/backend/internal/entity"
	userRepo "github.com/campusmatch/backend/internal/repository/user"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type IAuthUseCase interface {
	SignupUser(ctx context.Context, req entity.SignupRequest, photo *multipart.FileHeader) (*entity.User, error)
	SignIn(ctx context.Context, email, password string) (*entity.User, error)
}

type authUseCase struct {
	userRepo userRepo.IUserRepo
	media    *media.Store
}

func New(userRepo userRepo.IUserRepo, media *media.Store) IAuthUseCase {
	return &authUseCase{
		userRepo: userRepo,
		media:    media,
	}
}

func (a *authUseCase) SignupUser(ctx context.Context, req entity.SignupRequest, photo *multipart.FileHeader) (*entity.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		FullName:   req.FullName,
		College:    req.College,
		Email:      req.Email,
		Password:   string(hashedPassword),
		Bio:        req.Bio,
		Gender:     req.Gender,
		Preference: req.Preference,
		Age:        req.Age,
		Interests:  req.Interests,
	}

	created, err := a.userRepo.CreateUser(ctx, &user)
	if err != nil {
		return nil, err
	}

	// The account exists even when the photo cannot be stored.
	if photo != nil && a.media != nil {
		url, err := a.media.SavePhoto(created.ID, photo)
		if err != nil {
			logrus.WithError(err).WithField("user_id", created.ID).Warn("profile photo not saved")
			return created, nil
		}
		if err := a.userRepo.SetProfileImage(ctx, created.ID, url); err != nil {
			return nil, err
		}
		created.ProfileImageURL = url
	}

	return created, nil
}

func (a *authUseCase) SignIn(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := a.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, err
	}

	return user, nil
}
