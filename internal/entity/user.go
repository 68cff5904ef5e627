package entity

import "strings"

// Preference values a user can state for browsing.
const (
	PreferenceMen      = "Men"
	PreferenceWomen    = "Women"
	PreferenceEveryone = "Everyone"
)

type User struct {
	ID              uint   `gorm:"primaryKey;column:id" json:"id"`
	FullName        string `gorm:"column:full_name;not null" json:"fullName"`
	College         string `gorm:"column:college" json:"college"`
	Email           string `gorm:"column:email;unique;not null" json:"email"`
	Password        string `gorm:"column:password;not null" json:"-"`
	Bio             string `gorm:"column:bio" json:"bio"`
	Gender          string `gorm:"column:gender" json:"gender"`
	Preference      string `gorm:"column:preference" json:"preference"`
	Age             int    `gorm:"column:age" json:"age"`
	Interests       string `gorm:"column:interests" json:"interests"`
	ProfileImageURL string `gorm:"column:profile_image_url" json:"profile_image_url"`
}

func (User) TableName() string {
	return "users"
}

// InterestList splits the stored comma-joined interests string.
// No escaping: an interest that itself contains a comma comes back split.
func (u User) InterestList() []string {
	if u.Interests == "" {
		return nil
	}
	return strings.Split(u.Interests, ",")
}

func JoinInterests(interests []string) string {
	return strings.Join(interests, ",")
}
