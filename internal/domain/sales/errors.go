package sales

import "errors"

var (
	ErrRecordNotFound = errors.New("sales record not found")
	ErrDuplicateDay   = errors.New("a sales record already exists for this store and day")
)
