package domain

import (
	"context"
	"time"
)

// CV is an uploaded resume document. FilePath is the asset-store key and is
// never serialized; clients get a short-lived presigned DownloadURL instead.
type CV struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	FilePath  string    `json:"-"`
	FileType  string    `json:"file_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DownloadURL string `json:"download_url,omitempty"`
}

// CVPatch carries a partial CV update. Nil means "leave unchanged".
type CVPatch struct {
	Title *string
	File  *FileUpload
}

type CVRepository interface {
	Create(ctx context.Context, cv *CV) error
	GetByID(ctx context.Context, id int64) (*CV, error)
	FetchByUserID(ctx context.Context, userID int64) ([]CV, error)
	Update(ctx context.Context, cv *CV) error
	Delete(ctx context.Context, id int64) error
}

type CVUsecase interface {
	Upload(ctx context.Context, actor Actor, title string, file FileUpload) (*CV, error)
	Get(ctx context.Context, actor Actor, id int64) (*CV, error)
	DownloadURL(ctx context.Context, actor Actor, id int64) (string, error)
	Update(ctx context.Context, actor Actor, id int64, patch CVPatch) (*CV, error)
	Delete(ctx context.Context, actor Actor, id int64) error
}
