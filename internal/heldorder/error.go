package heldorder

import "errors"

var ErrNotFound = errors.New("held order not found")
