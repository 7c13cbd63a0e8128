package dto

// UserBriefDTO 作者、粉丝、关注列表中的用户
type UserBriefDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// UserProfileDTO 用户主页
type UserProfileDTO struct {
	ID        uint64          `json:"id"`
	Name      string          `json:"name"`
	Followers []*UserBriefDTO `json:"followers"`
	Following []*UserBriefDTO `json:"following"`
}

type UserProfileResponse struct {
	Response
	User *UserProfileDTO `json:"user"`
}
