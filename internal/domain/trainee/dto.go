package trainee

type CreateTraineeRequest struct {
	Name       string   `json:"name" validate:"required,max=120"`
	Email      string   `json:"email" validate:"required,email,max=254"`
	Age        *int     `json:"age" validate:"omitempty,gt=0,lt=150"`
	Weight     *float64 `json:"weight" validate:"omitempty,gt=0"`
	Height     *float64 `json:"height" validate:"omitempty,gt=0"`
	Goal       *string  `json:"goal" validate:"omitempty,max=500"`
	Membership *string  `json:"membership" validate:"omitempty,max=64"`
}

// UpdateTraineeRequest replaces every listed column. A field missing from the
// body is written as NULL; there is no partial update.
type UpdateTraineeRequest struct {
	Name       *string  `json:"name" validate:"omitempty,max=120"`
	Age        *int     `json:"age" validate:"omitempty,gt=0,lt=150"`
	Weight     *float64 `json:"weight" validate:"omitempty,gt=0"`
	Height     *float64 `json:"height" validate:"omitempty,gt=0"`
	Goal       *string  `json:"goal" validate:"omitempty,max=500"`
	Membership *string  `json:"membership" validate:"omitempty,max=64"`
}

type AddProgressRequest struct {
	Date   string   `json:"date" validate:"required,datetime=2006-01-02"`
	Weight *float64 `json:"weight" validate:"omitempty,gt=0"`
	Chest  *float64 `json:"chest" validate:"omitempty,gt=0"`
	Back   *float64 `json:"back" validate:"omitempty,gt=0"`
	Legs   *float64 `json:"legs" validate:"omitempty,gt=0"`
	Notes  *string  `json:"notes" validate:"omitempty,max=2000"`
}

type IDResponse struct {
	ID int64 `json:"id"`
}

type UpdatedResponse struct {
	Updated bool `json:"updated"`
}
