// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal indicates internal server error.
//
// Repositories return it in place of driver errors so storage details never
// reach the client.
var ErrInternal = errors.New("internal")
