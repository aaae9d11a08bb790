package dto

type PresignUploadRequest struct {
	FileName    string `json:"file_name" validate:"required,max=255"`
	ContentType string `json:"content_type" validate:"required"`
	Size        int64  `json:"size" validate:"required,gt=0"`
}

type PresignUploadResponse struct {
	UploadID     string `json:"upload_id"`
	PresignedURL string `json:"presigned_url"`
	PublicURL    string `json:"public_url"`
	FileName     string `json:"file_name"`
}

type UploadResponse struct {
	ID           string `json:"id"`
	OriginalName string `json:"original_name"`
	URL          string `json:"url"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
	Status       string `json:"status"`
}
