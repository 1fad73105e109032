package pdffile

import (
	"errors"

	"gorm.io/gorm"
)

type PDFFileRepository interface {
	Create(f *PDFFile) error
	Latest() (*PDFFile, error)
	Delete(id string) error
}

type pdfFileRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) PDFFileRepository {
	return &pdfFileRepository{db: db}
}

func (r *pdfFileRepository) Create(f *PDFFile) error {
	return r.db.Create(f).Error
}

// Latest returns the most recently created row, or nil when no document has
// been uploaded yet.
func (r *pdfFileRepository) Latest() (*PDFFile, error) {
	var f PDFFile
	if err := r.db.Order("created_at DESC").First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *pdfFileRepository) Delete(id string) error {
	return r.db.Delete(&PDFFile{}, "id = ?", id).Error
}
