package shorts

import (
	"errors"

	"gorm.io/gorm"
)

type ShortRepository interface {
	CreateShort(s *Short) error
	CreateQuestion(q *Question) error
	CreateOption(o *Option) error
	ListWithTree() ([]*Short, error)
	GetByID(id string) (*Short, error)
	UpdateStatus(id string, status ShortStatus) error
	DeleteAll() error

	CreateRun(run *GenerationRun) error
	SaveRun(run *GenerationRun) error
	LatestRun() (*GenerationRun, error)
}

type shortRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ShortRepository {
	return &shortRepository{db: db}
}

func (r *shortRepository) CreateShort(s *Short) error {
	return r.db.Omit("Questions").Create(s).Error
}

func (r *shortRepository) CreateQuestion(q *Question) error {
	return r.db.Omit("Options").Create(q).Error
}

func (r *shortRepository) CreateOption(o *Option) error {
	return r.db.Create(o).Error
}

func (r *shortRepository) ListWithTree() ([]*Short, error) {
	var out []*Short
	if err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *shortRepository) GetByID(id string) (*Short, error) {
	var s Short
	if err := r.db.Preload("Questions.Options").First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *shortRepository) UpdateStatus(id string, status ShortStatus) error {
	return r.db.Model(&Short{}).Where("id = ?", id).Update("status", status).Error
}

// DeleteAll wipes every short; questions and options go with them via the
// cascading foreign keys.
func (r *shortRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&Short{}).Error
}

func (r *shortRepository) CreateRun(run *GenerationRun) error {
	return r.db.Create(run).Error
}

func (r *shortRepository) SaveRun(run *GenerationRun) error {
	return r.db.Save(run).Error
}

func (r *shortRepository) LatestRun() (*GenerationRun, error) {
	var run GenerationRun
	if err := r.db.Order("created_at DESC").First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}
