package consts

const (
	ApiKeyHeader    = "Api-Key"
	ApiKeyMaxLength = 30
	CtxUserKey      = "current_user"
)

const (
	ImagesDir = "tweets_images"
)

// ImageExtensions 允许上传的图片扩展名（小写）
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff"}
