package metrics

import "errors"

// ErrWriteTextfile is returned when the metrics snapshot cannot be written.
var ErrWriteTextfile = errors.New("write metrics textfile")
