package models

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrNoUsers         = errors.New("no users found")
	ErrNoPosts         = errors.New("no posts found")
	ErrInvalidPost     = errors.New("invalid post data")
	ErrUpdateFailed    = errors.New("failed to update the post")
	ErrPostCountUpdate = errors.New("failed to update user post count")
	ErrDuplicateMobile = errors.New("mobile number already registered")
)
