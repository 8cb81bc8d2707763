package inmemory

import "errors"

var errDuplicate = errors.New("duplicate key")
