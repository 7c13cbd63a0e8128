package dto

// Response 成功响应的公共字段
type Response struct {
	Result bool `json:"result"`
}

// ErrorResponse 统一错误响应
type ErrorResponse struct {
	Result       bool   `json:"result"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

// IDUri 路径参数 :id
type IDUri struct {
	ID uint64 `uri:"id" binding:"required" validate:"min=1"`
}
