package model

// Follower 关注关系：Follower 关注了 UserID
type Follower struct {
	UserID   uint64 `gorm:"primaryKey;autoIncrement:false"`
	Follower uint64 `gorm:"primaryKey;autoIncrement:false;index:idx_follower"`

	Followee *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Fan      *User `gorm:"foreignKey:Follower;references:ID;constraint:OnDelete:CASCADE"`
}

func (Follower) TableName() string {
	return "user_followers"
}
