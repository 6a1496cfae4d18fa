package inventory

import "errors"

var ErrInvalidRequest = errors.New("invalid inventory request")
