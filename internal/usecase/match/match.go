package match

import (
	"context"

	"github.com/campusmatch/backend/internal/entity"
	matchRepo "github.com/campusmatch/backend/internal/repository/match"
)

type IMatchUseCase interface {
	LikeProfile(ctx context.Context, likerID, likedID uint) (matched bool, err error)
	GetMatches(ctx context.Context, userID uint) ([]entity.MatchProfile, error)
}

type matchUseCase struct {
	matchRepo matchRepo.IMatchRepo
}

func NewMatchUseCase(matchRepo matchRepo.IMatchRepo) IMatchUseCase {
	return &matchUseCase{
		matchRepo: matchRepo,
	}
}

func (m *matchUseCase) LikeProfile(ctx context.Context, likerID, likedID uint) (bool, error) {
	return m.matchRepo.CreateLike(ctx, likerID, likedID)
}

func (m *matchUseCase) GetMatches(ctx context.Context, userID uint) ([]entity.MatchProfile, error) {
	return m.matchRepo.GetMatches(ctx, userID)
}
