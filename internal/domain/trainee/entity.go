package trainee

import "time"

// Trainee is a person enrolled for fitness tracking.
// Nullable columns are pointers so that an update can write NULL.
type Trainee struct {
	ID         int64     `gorm:"column:id;primaryKey" json:"id"`
	Name       *string   `gorm:"column:name" json:"name"`
	Email      string    `gorm:"column:email" json:"email"`
	Age        *int      `gorm:"column:age" json:"age"`
	Weight     *float64  `gorm:"column:weight" json:"weight"`
	Height     *float64  `gorm:"column:height" json:"height"`
	Goal       *string   `gorm:"column:goal" json:"goal"`
	Membership *string   `gorm:"column:membership" json:"membership"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Trainee) TableName() string { return "trainees" }

// ProgressEntry is a dated measurement snapshot. Rows are never updated.
type ProgressEntry struct {
	ID        int64    `gorm:"column:id;primaryKey" json:"id"`
	TraineeID int64    `gorm:"column:trainee_id" json:"trainee_id"`
	Date      string   `gorm:"column:date" json:"date"` // YYYY-MM-DD
	Weight    *float64 `gorm:"column:weight" json:"weight"`
	Chest     *float64 `gorm:"column:chest" json:"chest"`
	Back      *float64 `gorm:"column:back" json:"back"`
	Legs      *float64 `gorm:"column:legs" json:"legs"`
	Notes     string   `gorm:"column:notes" json:"notes"`
}

func (ProgressEntry) TableName() string { return "progress" }

// Profile is a trainee together with its progress log, oldest entry first.
type Profile struct {
	Trainee  *Trainee        `json:"trainee"`
	Progress []ProgressEntry `json:"progress"`
}
