package dto

// CreateTweetDTO 发推，tweet_media_ids 可以为空数组但不能缺省
type CreateTweetDTO struct {
	TweetData     *string  `json:"tweet_data" binding:"required" validate:"max=500"`
	TweetMediaIDs []uint64 `json:"tweet_media_ids" binding:"required" validate:"dive,min=1"`
}

type TweetLikeDTO struct {
	UserID  uint64 `json:"user_id"`
	TweetID uint64 `json:"tweet_id"`
}

type TweetDTO struct {
	ID          uint64          `json:"id"`
	Content     string          `json:"content"`
	Attachments []string        `json:"attachments"`
	Author      *UserBriefDTO   `json:"author"`
	Likes       []*TweetLikeDTO `json:"likes"`
}

type TweetListResponse struct {
	Response
	Tweets []*TweetDTO `json:"tweets"`
}

type CreateTweetResponse struct {
	Response
	TweetID uint64 `json:"tweet_id"`
}
