package consts

const (
	UserApiKeyKey = "user:apikey:"
)
