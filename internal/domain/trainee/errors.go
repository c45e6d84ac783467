package trainee

import "errors"

var (
	ErrTraineeNotFound = errors.New("trainee not found")
	ErrEmailExists     = errors.New("email already exists")
)
