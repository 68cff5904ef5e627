package matchRepo

import (
	"context"
	"sort"

	"github.com/campusmatch/backend/internal/entity"
	"github.com/sirupsen/logrus"

	redisClient "github.com/campusmatch/backend/internal/datastore/redis"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IMatchRepo interface {
	// CreateLike records the directed like edge and reports whether a
	// match is now in effect for the pair.
	CreateLike(ctx context.Context, likerID, likedID uint) (matched bool, err error)

	// GetMatches lists the viewer's matches with the counterpart's name.
	GetMatches(ctx context.Context, userID uint) ([]entity.MatchProfile, error)

	// GetMatchByID loads a single match row.
	GetMatchByID(ctx context.Context, matchID uint) (*entity.Match, error)
}

type MatchRepo struct {
	db  *gorm.DB
	rdb *redisClient.RedisClient
}

func NewMatchRepo(db *gorm.DB, rdb *redisClient.RedisClient) IMatchRepo {
	return &MatchRepo{
		db:  db,
		rdb: rdb,
	}
}

// CreateLike runs the like-then-check-then-match sequence in one
// transaction. Uniqueness constraints are the sole correctness
// mechanism: a duplicate like or an already-existing match row means
// "already satisfied", never an error.
func (m *MatchRepo) CreateLike(ctx context.Context, likerID, likedID uint) (bool, error) {
	var (
		matched bool
		match   entity.Match
	)

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		like := entity.Like{LikerID: likerID, LikedID: likedID}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "liker_id"}, {Name: "liked_id"}},
			DoNothing: true,
		}).Create(&like)
		if res.Error != nil {
			return res.Error
		}

		var reciprocal int64
		if err := tx.Model(&entity.Like{}).
			Where("liker_id = ? AND liked_id = ?", likedID, likerID).
			Count(&reciprocal).Error; err != nil {
			return err
		}
		if reciprocal == 0 {
			return nil
		}

		user1, user2 := entity.CanonicalPair(likerID, likedID)
		match = entity.Match{User1ID: user1, User2ID: user2}
		res = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user1_id"}, {Name: "user2_id"}},
			DoNothing: true,
		}).Create(&match)
		if res.Error != nil {
			return res.Error
		}

		// Conflict means the pair was matched earlier; load the row id
		// so the cache entry stays complete.
		if match.ID == 0 {
			if err := tx.Where("user1_id = ? AND user2_id = ?", user1, user2).
				First(&match).Error; err != nil {
				return err
			}
		}

		matched = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if matched {
		m.appendMatchCache(likerID, redisClient.MatchRef{MatchID: match.ID, UserID: likedID})
		m.appendMatchCache(likedID, redisClient.MatchRef{MatchID: match.ID, UserID: likerID})
	}

	return matched, nil
}

func (m *MatchRepo) GetMatches(ctx context.Context, userID uint) ([]entity.MatchProfile, error) {
	if m.rdb != nil {
		refs, found, err := m.rdb.GetMatchRefs(userID)
		if err != nil {
			logrus.WithError(err).Warn("match cache read failed, falling back to database")
		} else if found {
			return m.profilesFromRefs(ctx, refs)
		}
	}

	var profiles []entity.MatchProfile
	err := m.db.WithContext(ctx).
		Table("matches m").
		Select("m.id AS match_id, u.id AS user_id, u.full_name").
		Joins("JOIN users u ON (u.id = m.user2_id AND m.user1_id = ?) OR (u.id = m.user1_id AND m.user2_id = ?)", userID, userID).
		Order("m.id").
		Scan(&profiles).Error
	if err != nil {
		return nil, err
	}

	if m.rdb != nil {
		refs := make([]redisClient.MatchRef, 0, len(profiles))
		for _, p := range profiles {
			refs = append(refs, redisClient.MatchRef{MatchID: p.MatchID, UserID: p.UserID})
		}
		if err := m.rdb.SetMatchRefs(userID, refs); err != nil {
			logrus.WithError(err).Warn("match cache fill failed")
		}
	}

	return profiles, nil
}

func (m *MatchRepo) GetMatchByID(ctx context.Context, matchID uint) (*entity.Match, error) {
	var match entity.Match
	result := m.db.WithContext(ctx).Where("id = ?", matchID).First(&match)
	return &match, result.Error
}

// profilesFromRefs resolves cached refs to listing rows with one name
// lookup.
func (m *MatchRepo) profilesFromRefs(ctx context.Context, refs []redisClient.MatchRef) ([]entity.MatchProfile, error) {
	if len(refs) == 0 {
		return []entity.MatchProfile{}, nil
	}

	ids := make([]uint, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.UserID)
	}

	var users []entity.User
	if err := m.db.WithContext(ctx).
		Select("id", "full_name").
		Where("id IN ?", ids).
		Find(&users).Error; err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName
	}

	profiles := make([]entity.MatchProfile, 0, len(refs))
	for _, ref := range refs {
		profiles = append(profiles, entity.MatchProfile{
			MatchID:  ref.MatchID,
			UserID:   ref.UserID,
			FullName: names[ref.UserID],
		})
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].MatchID < profiles[j].MatchID })

	return profiles, nil
}

func (m *MatchRepo) appendMatchCache(userID uint, ref redisClient.MatchRef) {
	if m.rdb == nil {
		return
	}
	if err := m.rdb.AppendMatchRef(userID, ref); err != nil {
		logrus.WithError(err).Warn("match cache append failed")
	}
}
