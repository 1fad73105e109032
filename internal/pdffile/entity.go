package pdffile

import (
	"time"

	"github.com/google/uuid"
)

// PDFFile is the metadata row for the currently uploaded document. The
// application keeps a single active row; uploading replaces it.
type PDFFile struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Filename    string    `gorm:"type:text;not null" json:"filename"`
	FilePath    string    `gorm:"type:text;not null" json:"file_path"`
	ContentType string    `gorm:"type:text" json:"content_type"`
	Size        int64     `gorm:"not null;default:0" json:"size"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PDFFile) TableName() string {
	return "pdf_files"
}
