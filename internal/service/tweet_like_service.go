package service

import (
	"Microblog/internal/model"
	"Microblog/internal/pkg/kafka"
	"Microblog/internal/repository"
	"context"
)

type TweetLikeService interface {
	LikeTweet(ctx context.Context, tweetID, userID uint64) error
	UnlikeTweet(ctx context.Context, tweetID, userID uint64) error
}

type TweetLikeServiceImpl struct {
	tweetRepo     repository.TweetRepo
	tweetLikeRepo repository.TweetLikeRepo
	publisher     kafka.Publisher
}

func NewTweetLikeService(tweetRepo repository.TweetRepo, tweetLikeRepo repository.TweetLikeRepo, publisher kafka.Publisher) TweetLikeService {
	if publisher == nil {
		publisher = kafka.NopPublisher{}
	}
	return &TweetLikeServiceImpl{
		tweetRepo:     tweetRepo,
		tweetLikeRepo: tweetLikeRepo,
		publisher:     publisher,
	}
}

func (s *TweetLikeServiceImpl) LikeTweet(ctx context.Context, tweetID, userID uint64) error {
	tweet, err := s.tweetRepo.GetTweet(ctx, tweetID)
	if err != nil {
		return err
	}
	if tweet == nil {
		return NotFound("Tweet with id: %d does not exist.", tweetID)
	}

	exists, err := s.tweetLikeRepo.CheckLikeExists(ctx, userID, tweetID)
	if err != nil {
		return err
	}
	if exists {
		return likeConflict()
	}

	err = s.tweetLikeRepo.CreateLike(ctx, &model.TweetLike{UserID: userID, TweetID: tweetID})
	if err != nil {
		if repository.IsDuplicateError(err) {
			return likeConflict()
		}
		return err
	}

	s.publisher.Publish(ctx, kafka.NewEvent(kafka.EventTweetLiked, userID).WithTweet(tweetID).WithTarget(tweet.UserID))
	return nil
}

func (s *TweetLikeServiceImpl) UnlikeTweet(ctx context.Context, tweetID, userID uint64) error {
	affected, err := s.tweetLikeRepo.DeleteLike(ctx, userID, tweetID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return NotFound("Tweet_like does not exist.")
	}

	s.publisher.Publish(ctx, kafka.NewEvent(kafka.EventTweetUnliked, userID).WithTweet(tweetID))
	return nil
}

func likeConflict() error {
	return Conflict("You have already liked this tweet.")
}
