package upload

import "time"

type Kind string

const (
	KindBefore Kind = "before"
	KindAfter  Kind = "after"
)

// Upload is the metadata of a stored before/after photo. FilePath is the
// public path of the image, not the image itself.
type Upload struct {
	ID         int64     `gorm:"column:id;primaryKey" json:"id"`
	TraineeID  int64     `gorm:"column:trainee_id" json:"trainee_id"`
	Type       Kind      `gorm:"column:type" json:"type"`
	FilePath   string    `gorm:"column:filepath" json:"filepath"`
	UploadedAt time.Time `gorm:"column:uploaded_at" json:"uploaded_at"`
}

func (Upload) TableName() string { return "uploads" }
