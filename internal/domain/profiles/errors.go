package profiles

import "errors"

// ErrProfileNotFound is returned by repositories when the user has not saved a profile yet
var ErrProfileNotFound = errors.New("profile not found")
