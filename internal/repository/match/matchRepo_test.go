package matchRepo_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	redisClient "github.com/campusmatch/backend/internal/datastore/redis"
	"github.com/campusmatch/backend/internal/entity"
	matchRepo "github.com/campusmatch/backend/internal/repository/match"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := database.AutoMigrate(&entity.User{}, &entity.Like{}, &entity.Match{}, &entity.Message{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func setupTestRedis(t *testing.T) *redisClient.RedisClient {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	return redisClient.NewRedis(client)
}

func seedUsers(t *testing.T, db *gorm.DB, names ...string) []entity.User {
	t.Helper()
	users := make([]entity.User, 0, len(names))
	for i, name := range names {
		u := entity.User{
			FullName: name,
			Email:    names[i] + "@example.com",
			Password: "x",
		}
		require.NoError(t, db.Create(&u).Error)
		users = append(users, u)
	}
	return users
}

func TestCreateLikeReportsMatchOnlyWhenReciprocal(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := matchRepo.NewMatchRepo(db, nil)
	users := seedUsers(t, db, "alice", "bob")

	matched, err := repo.CreateLike(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)
	assert.False(t, matched)

	matched, err = repo.CreateLike(ctx, users[1].ID, users[0].ID)
	require.NoError(t, err)
	assert.True(t, matched)

	var count int64
	require.NoError(t, db.Model(&entity.Match{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateLikeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := matchRepo.NewMatchRepo(db, nil)
	users := seedUsers(t, db, "alice", "bob")

	_, err := repo.CreateLike(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)
	_, err = repo.CreateLike(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)

	var likes int64
	require.NoError(t, db.Model(&entity.Like{}).Count(&likes).Error)
	assert.Equal(t, int64(1), likes)
}

func TestCreateLikeCanonicalOrder(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := matchRepo.NewMatchRepo(db, nil)
	users := seedUsers(t, db, "alice", "bob", "carol", "dave")

	// alice->bob then bob->alice
	_, err := repo.CreateLike(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)
	_, err = repo.CreateLike(ctx, users[1].ID, users[0].ID)
	require.NoError(t, err)

	// dave->carol then carol->dave, reversed arrival order
	_, err = repo.CreateLike(ctx, users[3].ID, users[2].ID)
	require.NoError(t, err)
	_, err = repo.CreateLike(ctx, users[2].ID, users[3].ID)
	require.NoError(t, err)

	var matches []entity.Match
	require.NoError(t, db.Order("id").Find(&matches).Error)
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Less(t, m.User1ID, m.User2ID)
	}
}

func TestCreateLikeRepeatedAfterMatchStillReportsMatch(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := matchRepo.NewMatchRepo(db, nil)
	users := seedUsers(t, db, "alice", "bob")

	_, err := repo.CreateLike(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)
	_, err = repo.CreateLike(ctx, users[1].ID, users[0].ID)
	require.NoError(t, err)

	// both directions exist; the duplicate like and the duplicate match
	// insert are absorbed
	matched, err := repo.CreateLike(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)
	assert.True(t, matched)

	var matches int64
	require.NoError(t, db.Model(&entity.Match{}).Count(&matches).Error)
	assert.Equal(t, int64(1), matches)
}

func TestGetMatchesListsCounterpart(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := matchRepo.NewMatchRepo(db, nil)
	users := seedUsers(t, db, "alice", "bob")

	_, err := repo.CreateLike(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)
	_, err = repo.CreateLike(ctx, users[1].ID, users[0].ID)
	require.NoError(t, err)

	forAlice, err := repo.GetMatches(ctx, users[0].ID)
	require.NoError(t, err)
	require.Len(t, forAlice, 1)
	assert.Equal(t, users[1].ID, forAlice[0].UserID)
	assert.Equal(t, "bob", forAlice[0].FullName)

	forBob, err := repo.GetMatches(ctx, users[1].ID)
	require.NoError(t, err)
	require.Len(t, forBob, 1)
	assert.Equal(t, users[0].ID, forBob[0].UserID)
	assert.Equal(t, forAlice[0].MatchID, forBob[0].MatchID)
}

func TestGetMatchesUsesCacheAfterFill(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	rdb := setupTestRedis(t)
	repo := matchRepo.NewMatchRepo(db, rdb)
	users := seedUsers(t, db, "alice", "bob", "carol")

	_, err := repo.CreateLike(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)
	_, err = repo.CreateLike(ctx, users[1].ID, users[0].ID)
	require.NoError(t, err)

	// fills alice's cache
	first, err := repo.GetMatches(ctx, users[0].ID)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// new match appends to the cached set
	_, err = repo.CreateLike(ctx, users[0].ID, users[2].ID)
	require.NoError(t, err)
	matched, err := repo.CreateLike(ctx, users[2].ID, users[0].ID)
	require.NoError(t, err)
	require.True(t, matched)

	second, err := repo.GetMatches(ctx, users[0].ID)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, users[1].ID, second[0].UserID)
	assert.Equal(t, users[2].ID, second[1].UserID)
}
