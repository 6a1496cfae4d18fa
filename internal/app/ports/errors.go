package ports

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotFound         = errors.New("not found")
	// ErrConflict means a concurrent writer won; the operation is safe to retry.
	ErrConflict = errors.New("conflict")
	// ErrInsufficientQuantity is returned by conditional inventory decrements.
	ErrInsufficientQuantity = errors.New("insufficient quantity")
	// ErrNoLocationSelected rejects location-bound actions before travel.
	ErrNoLocationSelected = errors.New("no location selected")
)
