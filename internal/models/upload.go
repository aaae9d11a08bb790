package models

// Upload tracks an object-storage file through the presigned-URL handshake:
// a row is created as pending when the URL is issued and flipped to uploaded
// when the client confirms. Pending rows older than the URL expiry are
// orphan candidates.
type Upload struct {
	BaseModel
	UserID          string       `gorm:"not null;index"`
	OriginalName    string       `gorm:"column:original_name"`
	Path            string       `gorm:"not null"`
	MimeType        string
	Size            int64
	Status          UploadStatus `gorm:"type:varchar(20);default:'pending'"`
	URL             string       `gorm:"column:url"`
	StorageProvider string       `gorm:"column:storage_provider;default:'local'"`
}
