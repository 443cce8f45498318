package migration

import "errors"

var ErrSeedRejected = errors.New("seed check-in rejected")
