package model

type User struct {
	ID     uint64 `gorm:"primaryKey"`
	Name   string `gorm:"type:varchar(50);not null"`
	ApiKey string `gorm:"type:varchar(30);not null;uniqueIndex:idx_api_key"`

	Likes []*TweetLike `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}
