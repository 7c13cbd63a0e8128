package handler

import (
	"Microblog/internal/api/dto"
	"Microblog/internal/api/middleware"
	"Microblog/internal/pkg/response"
	"Microblog/internal/pkg/util"
	"Microblog/internal/service"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	tweetSvc service.TweetService
}

func NewTweetHandler(tweetSvc service.TweetService) *TweetHandler {
	return &TweetHandler{tweetSvc: tweetSvc}
}

func (s *TweetHandler) ListTweets(c *gin.Context) {
	tweets, err := s.tweetSvc.ListTweets(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.TweetListResponse{
		Response: dto.Response{Result: true},
		Tweets:   tweets,
	})
}

func (s *TweetHandler) CreateTweet(c *gin.Context) {
	var req dto.CreateTweetDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.BindError(c, err)
		return
	}
	user := middleware.CurrentUser(c)

	tweetID, err := s.tweetSvc.CreateTweet(c.Request.Context(), user.ID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.CreateTweetResponse{
		Response: dto.Response{Result: true},
		TweetID:  tweetID,
	})
}

func (s *TweetHandler) DeleteTweet(c *gin.Context) {
	tweetID, ok := bindID(c)
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)

	if err := s.tweetSvc.DeleteTweet(c.Request.Context(), tweetID, user.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}
