package dto

type MediaUploadResponse struct {
	Response
	MediaID uint64 `json:"media_id"`
}
