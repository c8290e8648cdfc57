package service

import "errors"

var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamNameMismatch  = errors.New("team name does not match code")
	ErrAlreadyMember     = errors.New("user is already a team member")
	ErrMemberNotFound    = errors.New("member not found")
	ErrForbidden         = errors.New("not allowed to perform this action")
	ErrLastAdmin         = errors.New("team must keep at least one admin")
	ErrRoleUnchanged     = errors.New("role cannot change further")
	ErrSelfRoleChange    = errors.New("cannot change own role")
	ErrCodeExhausted     = errors.New("could not generate a unique team code")
	ErrDeviceNotFound    = errors.New("device not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidDevice     = errors.New("invalid device")
	ErrAmbiguousOwner    = errors.New("exactly one of email or team_code is required")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidMemberRole = errors.New("invalid member action")
)
