package container

import "errors"

var (
	ErrStackOverflow   = errors.New("stack is full")
	ErrStackUnderflow  = errors.New("stack is empty")
	ErrInvalidCapacity = errors.New("capacity must be positive")
)
