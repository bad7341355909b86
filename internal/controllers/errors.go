package controllers

import "errors"

// Ошибки, попадающие в тела ответов.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrInternal       = errors.New("internal error")
)
