package model

type TweetLike struct {
	UserID  uint64 `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	TweetID uint64 `gorm:"primaryKey;autoIncrement:false;index:idx_like_tweet_id" json:"tweet_id"`
}

func (TweetLike) TableName() string {
	return "tweet_likes"
}
