package profile

import (
	"context"

	"github.com/campusmatch/backend/internal/entity"
	userRepo "github.com/campusmatch/backend/internal/repository/user"
)

type IProfileUseCase interface {
	GetProfile(ctx context.Context, id uint) (*entity.User, error)
	UpdateProfile(ctx context.Context, req entity.UpdateProfileRequest) error
	ListCandidates(ctx context.Context, viewerID uint) ([]entity.User, error)
}

type profileUseCase struct {
	userRepo userRepo.IUserRepo
}

func NewProfileUseCase(userRepo userRepo.IUserRepo) IProfileUseCase {
	return &profileUseCase{
		userRepo: userRepo,
	}
}

func (p *profileUseCase) GetProfile(ctx context.Context, id uint) (*entity.User, error) {
	return p.userRepo.GetUserByID(ctx, id)
}

func (p *profileUseCase) UpdateProfile(ctx context.Context, req entity.UpdateProfileRequest) error {
	return p.userRepo.UpdateProfile(ctx, req)
}

func (p *profileUseCase) ListCandidates(ctx context.Context, viewerID uint) ([]entity.User, error) {
	return p.userRepo.GetCandidates(ctx, viewerID)
}
