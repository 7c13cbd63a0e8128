package handler

import (
	"Microblog/internal/api/middleware"
	"Microblog/internal/pkg/response"
	"Microblog/internal/service"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	userFollowSvc service.UserFollowService
}

func NewUserFollowHandler(userFollowSvc service.UserFollowService) *UserFollowHandler {
	return &UserFollowHandler{userFollowSvc: userFollowSvc}
}

func (s *UserFollowHandler) Follow(c *gin.Context) {
	followeeID, ok := bindID(c)
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)

	if err := s.userFollowSvc.Follow(c.Request.Context(), user.ID, followeeID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

func (s *UserFollowHandler) Unfollow(c *gin.Context) {
	followeeID, ok := bindID(c)
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)

	if err := s.userFollowSvc.Unfollow(c.Request.Context(), user.ID, followeeID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}
