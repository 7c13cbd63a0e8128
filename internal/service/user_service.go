package service

import (
	"Microblog/internal/api/dto"
	"Microblog/internal/model"
	"Microblog/internal/pkg/consts"
	"Microblog/internal/pkg/redis"
	"Microblog/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
)

const apiKeyCacheTTL = time.Hour

type UserService interface {
	GetUserByApiKey(ctx context.Context, apiKey string) (*model.User, error)
	GetUserProfile(ctx context.Context, id uint64) (*dto.UserProfileDTO, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	cache    *redis.Cache
}

func NewUserService(userRepo repository.UserRepo, cache *redis.Cache) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		cache:    cache,
	}
}

// GetUserByApiKey 解析 Api-Key，命中缓存时按 id 回表
func (s *UserServiceImpl) GetUserByApiKey(ctx context.Context, apiKey string) (*model.User, error) {
	key := consts.UserApiKeyKey + apiKey

	if cached, err := s.cache.GetValue(ctx, key); err != nil {
		log.WarnContext(ctx, "api key cache get failed", "err", err)
	} else if cached != "" {
		id, err := strconv.ParseUint(cached, 10, 64)
		if err == nil {
			user, err := s.userRepo.GetUserById(ctx, id)
			if err != nil {
				return nil, err
			}
			if user != nil && user.ApiKey == apiKey {
				return user, nil
			}
		}
		_ = s.cache.DeleteKey(ctx, key)
	}

	user, err := s.userRepo.GetUserByApiKey(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("User with api_key: %s not found", apiKey)
	}

	if err = s.cache.SetWithExpiration(ctx, key, strconv.FormatUint(user.ID, 10), apiKeyCacheTTL); err != nil {
		log.WarnContext(ctx, "api key cache set failed", "err", err)
	}
	return user, nil
}

func (s *UserServiceImpl) GetUserProfile(ctx context.Context, id uint64) (*dto.UserProfileDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("User with id: %d not found", id)
	}

	followers, err := s.userRepo.GetFollowers(ctx, id)
	if err != nil {
		return nil, err
	}
	following, err := s.userRepo.GetFollowing(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.UserProfileDTO{
		ID:        user.ID,
		Name:      user.Name,
		Followers: toUserBriefs(followers),
		Following: toUserBriefs(following),
	}, nil
}

func toUserBrief(user *model.User) *dto.UserBriefDTO {
	brief := &dto.UserBriefDTO{}
	if user == nil {
		return brief
	}
	_ = copier.Copy(brief, user)
	return brief
}

func toUserBriefs(users []*model.User) []*dto.UserBriefDTO {
	res := make([]*dto.UserBriefDTO, 0, len(users))
	for _, user := range users {
		res = append(res, toUserBrief(user))
	}
	return res
}
