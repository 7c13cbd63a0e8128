package handler

import (
	"Microblog/internal/api/middleware"
	"Microblog/internal/pkg/response"
	"Microblog/internal/service"

	"github.com/gin-gonic/gin"
)

type TweetActionHandler struct {
	likeSvc service.TweetLikeService
}

func NewTweetActionHandler(likeSvc service.TweetLikeService) *TweetActionHandler {
	return &TweetActionHandler{likeSvc: likeSvc}
}

// LikeTweet 点赞，重复点赞返回 409
func (s *TweetActionHandler) LikeTweet(c *gin.Context) {
	tweetID, ok := bindID(c)
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)

	if err := s.likeSvc.LikeTweet(c.Request.Context(), tweetID, user.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

func (s *TweetActionHandler) UnlikeTweet(c *gin.Context) {
	tweetID, ok := bindID(c)
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)

	if err := s.likeSvc.UnlikeTweet(c.Request.Context(), tweetID, user.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}
