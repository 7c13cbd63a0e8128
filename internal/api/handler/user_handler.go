package handler

import (
	"Microblog/internal/api/dto"
	"Microblog/internal/api/middleware"
	"Microblog/internal/pkg/response"
	"Microblog/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GetMe 当前 Api-Key 对应用户的主页
func (s *UserHandler) GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	s.writeProfile(c, user.ID)
}

func (s *UserHandler) GetUser(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	s.writeProfile(c, id)
}

func (s *UserHandler) writeProfile(c *gin.Context, id uint64) {
	profile, err := s.userSvc.GetUserProfile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.UserProfileResponse{
		Response: dto.Response{Result: true},
		User:     profile,
	})
}
