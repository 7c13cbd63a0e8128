package service

import (
	"Microblog/internal/model"
	"Microblog/internal/pkg/kafka"
	"Microblog/internal/repository"
	"context"
)

type UserFollowService interface {
	Follow(ctx context.Context, followerID, followeeID uint64) error
	Unfollow(ctx context.Context, followerID, followeeID uint64) error
}

type UserFollowServiceImpl struct {
	userRepo       repository.UserRepo
	userFollowRepo repository.UserFollowRepo
	publisher      kafka.Publisher
}

func NewUserFollowService(userRepo repository.UserRepo, userFollowRepo repository.UserFollowRepo, publisher kafka.Publisher) UserFollowService {
	if publisher == nil {
		publisher = kafka.NopPublisher{}
	}
	return &UserFollowServiceImpl{
		userRepo:       userRepo,
		userFollowRepo: userFollowRepo,
		publisher:      publisher,
	}
}

// Follow followerID 关注 followeeID
func (s *UserFollowServiceImpl) Follow(ctx context.Context, followerID, followeeID uint64) error {
	if followerID == followeeID {
		return ValidationFailure("You cannot subscribe to yourself")
	}

	followee, err := s.userRepo.GetUserById(ctx, followeeID)
	if err != nil {
		return err
	}
	if followee == nil {
		return NotFound("User with id: %d not found", followeeID)
	}

	exist, err := s.userFollowRepo.GetUserFollow(ctx, followeeID, followerID)
	if err != nil {
		return err
	}
	if exist != nil {
		return followConflict(followeeID)
	}

	err = s.userFollowRepo.CreateUserFollow(ctx, &model.Follower{
		UserID:   followeeID,
		Follower: followerID,
	})
	if err != nil {
		// 并发下的重复关注由复合主键拦截
		if repository.IsDuplicateError(err) {
			return followConflict(followeeID)
		}
		return err
	}

	s.publisher.Publish(ctx, kafka.NewEvent(kafka.EventUserFollowed, followerID).WithTarget(followeeID))
	return nil
}

func (s *UserFollowServiceImpl) Unfollow(ctx context.Context, followerID, followeeID uint64) error {
	affected, err := s.userFollowRepo.DeleteUserFollow(ctx, followeeID, followerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return NotFound("You are not subscribed to a user with id %d", followeeID)
	}

	s.publisher.Publish(ctx, kafka.NewEvent(kafka.EventUserUnfollowed, followerID).WithTarget(followeeID))
	return nil
}

func followConflict(followeeID uint64) error {
	return Conflict("You have already subscribed to this user with id: %d", followeeID)
}
