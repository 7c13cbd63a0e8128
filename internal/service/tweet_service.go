package service

import (
	"Microblog/internal/api/dto"
	"Microblog/internal/model"
	"Microblog/internal/pkg/kafka"
	"Microblog/internal/pkg/storage"
	"Microblog/internal/repository"
	"context"
)

type TweetService interface {
	CreateTweet(ctx context.Context, userID uint64, req *dto.CreateTweetDTO) (uint64, error)
	AttachMedia(ctx context.Context, tweetID uint64, mediaIDs []uint64) (int64, error)
	ListTweets(ctx context.Context) ([]*dto.TweetDTO, error)
	DeleteTweet(ctx context.Context, tweetID, userID uint64) error
}

type TweetServiceImpl struct {
	tweetRepo repository.TweetRepo
	mediaRepo repository.MediaRepo
	store     storage.Store
	publisher kafka.Publisher
}

func NewTweetService(
	tweetRepo repository.TweetRepo,
	mediaRepo repository.MediaRepo,
	store storage.Store,
	publisher kafka.Publisher,
) TweetService {
	if publisher == nil {
		publisher = kafka.NopPublisher{}
	}
	return &TweetServiceImpl{
		tweetRepo: tweetRepo,
		mediaRepo: mediaRepo,
		store:     store,
		publisher: publisher,
	}
}

// CreateTweet 写入推文，并把 media id 对应的图片挂载到新推文
func (s *TweetServiceImpl) CreateTweet(ctx context.Context, userID uint64, req *dto.CreateTweetDTO) (uint64, error) {
	tweet := &model.Tweet{UserID: userID}
	if req.TweetData != nil {
		tweet.Content = *req.TweetData
	}

	if err := s.tweetRepo.CreateTweet(ctx, tweet, req.TweetMediaIDs); err != nil {
		return 0, err
	}

	s.publisher.Publish(ctx, kafka.NewEvent(kafka.EventTweetCreated, userID).WithTweet(tweet.ID))
	return tweet.ID, nil
}

// AttachMedia 未知 id 忽略，已挂载的图片改挂到 tweetID
func (s *TweetServiceImpl) AttachMedia(ctx context.Context, tweetID uint64, mediaIDs []uint64) (int64, error) {
	return s.mediaRepo.AttachImages(ctx, tweetID, mediaIDs)
}

func (s *TweetServiceImpl) ListTweets(ctx context.Context) ([]*dto.TweetDTO, error) {
	tweets, err := s.tweetRepo.GetAllTweets(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TweetDTO, 0, len(tweets))
	for _, tweet := range tweets {
		res = append(res, toTweetDTO(tweet))
	}
	return res, nil
}

// DeleteTweet 只能删除自己的推文，附件文件尽力删除
func (s *TweetServiceImpl) DeleteTweet(ctx context.Context, tweetID, userID uint64) error {
	tweet, err := s.tweetRepo.GetUserTweet(ctx, tweetID, userID)
	if err != nil {
		return err
	}
	if tweet == nil {
		return NotFound("Tweet doesn't exist or doesn't belong to you")
	}

	if err = s.tweetRepo.DeleteTweet(ctx, tweetID); err != nil {
		return err
	}

	for _, image := range tweet.Attachments {
		removeUnreferencedFile(ctx, s.mediaRepo, s.store, image.Src)
	}

	s.publisher.Publish(ctx, kafka.NewEvent(kafka.EventTweetDeleted, userID).WithTweet(tweetID))
	return nil
}

func toTweetDTO(tweet *model.Tweet) *dto.TweetDTO {
	item := &dto.TweetDTO{
		ID:          tweet.ID,
		Content:     tweet.Content,
		Author:      toUserBrief(tweet.Author),
		Attachments: make([]string, 0, len(tweet.Attachments)),
		Likes:       make([]*dto.TweetLikeDTO, 0, len(tweet.Likes)),
	}
	for _, image := range tweet.Attachments {
		item.Attachments = append(item.Attachments, image.Src)
	}
	for _, like := range tweet.Likes {
		item.Likes = append(item.Likes, &dto.TweetLikeDTO{UserID: like.UserID, TweetID: like.TweetID})
	}
	return item
}
