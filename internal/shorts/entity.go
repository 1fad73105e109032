package shorts

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Short is one generated quiz topic. Shorts own their questions, questions
// own their options; deleting a parent cascades down the tree.
type Short struct {
	ID           uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TopicName    string      `gorm:"type:text;not null" json:"topic_name"`
	TopicSummary string      `gorm:"type:text;not null" json:"topic_summary"`
	Status       ShortStatus `gorm:"type:text;not null;default:'draft'" json:"status"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	Questions []Question `gorm:"foreignKey:ShortID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type Question struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ShortID      uuid.UUID `gorm:"type:uuid;not null;index" json:"short_id"`
	QuestionText string    `gorm:"type:text;not null" json:"question_text"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	Options []Option `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

type Option struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	OptionText string    `gorm:"type:text;not null" json:"option_text"`
	IsCorrect  bool      `gorm:"not null;default:false" json:"is_correct"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// GenerationRun records one pass of the generator, including the raw model
// payload and how much of it survived persistence. This is what the reader
// surface shows as completion state.
type GenerationRun struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Status           string         `gorm:"type:text;not null" json:"status"`
	Error            string         `gorm:"type:text" json:"error,omitempty"`
	ShortsCreated    int            `gorm:"not null;default:0" json:"shorts_created"`
	QuestionsCreated int            `gorm:"not null;default:0" json:"questions_created"`
	OptionsCreated   int            `gorm:"not null;default:0" json:"options_created"`
	FailedItems      int            `gorm:"not null;default:0" json:"failed_items"`
	RawPayload       datatypes.JSON `gorm:"type:jsonb" json:"raw_payload,omitempty"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

const (
	RunStarted   = "started"
	RunCompleted = "completed"
	RunFailed    = "failed"
)

func (GenerationRun) TableName() string {
	return "generation_runs"
}
