package entity

// Like is a directed edge: liker expressed interest in liked.
// The pair is unique per direction; rows are never mutated or deleted.
type Like struct {
	ID      uint `gorm:"primaryKey;column:id"`
	LikerID uint `gorm:"column:liker_id;not null;uniqueIndex:idx_likes_pair"`
	LikedID uint `gorm:"column:liked_id;not null;uniqueIndex:idx_likes_pair"`
}

func (Like) TableName() string {
	return "likes"
}

// Match is an undirected pair stored in canonical order (User1ID < User2ID)
// so the unique index is symmetric.
type Match struct {
	ID      uint `gorm:"primaryKey;column:id"`
	User1ID uint `gorm:"column:user1_id;not null;uniqueIndex:idx_matches_pair"`
	User2ID uint `gorm:"column:user2_id;not null;uniqueIndex:idx_matches_pair"`
}

func (Match) TableName() string {
	return "matches"
}

// CanonicalPair orders two user ids for match storage, lower id first.
func CanonicalPair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}

// Other returns the counterpart of userID in the match.
func (m Match) Other(userID uint) uint {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}

// MatchProfile is a row of the matches listing: the match id plus the
// counterpart user shown in the conversation list.
type MatchProfile struct {
	MatchID  uint   `gorm:"column:match_id" json:"match_id"`
	UserID   uint   `gorm:"column:user_id" json:"user_id"`
	FullName string `gorm:"column:full_name" json:"fullName"`
}
