package timesheet

import "errors"

var (
	ErrMonthNotFound  = errors.New("timesheet month not found")
	ErrInvalidMonth   = errors.New("invalid month")
	ErrRowNotFound    = errors.New("timesheet row not found")
	ErrNoActiveSelect = errors.New("no active selection")
)
