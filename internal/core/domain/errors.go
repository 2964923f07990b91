package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrSessionCorrupt = errors.New("session record corrupt")
var ErrUnauthorized = errors.New("unauthorized for active role")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrRoleNotAssigned = errors.New("role not assigned to user")
var ErrProjectNotFound = errors.New("project not found")
