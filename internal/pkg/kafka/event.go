package kafka

import "time"

const (
	EventTweetCreated   = "tweet.created"
	EventTweetDeleted   = "tweet.deleted"
	EventTweetLiked     = "tweet.liked"
	EventTweetUnliked   = "tweet.unliked"
	EventUserFollowed   = "user.followed"
	EventUserUnfollowed = "user.unfollowed"
)

// Event 领域事件，UserID 为操作者，同一用户的事件落在同一分区
type Event struct {
	Type       string    `json:"type"`
	UserID     uint64    `json:"user_id"`
	TweetID    uint64    `json:"tweet_id,omitempty"`
	TargetID   uint64    `json:"target_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(eventType string, userID uint64) *Event {
	return &Event{
		Type:       eventType,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
}

func (e *Event) WithTweet(tweetID uint64) *Event {
	e.TweetID = tweetID
	return e
}

func (e *Event) WithTarget(targetID uint64) *Event {
	e.TargetID = targetID
	return e
}
