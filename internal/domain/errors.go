package domain

import "errors"

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrDegenerateWindow = errors.New("generation window starts after it ends")
)
