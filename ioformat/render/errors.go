package render

import "errors"

// ErrUnknownFormat indicates a format name outside {plain, csv, latex}.
var ErrUnknownFormat = errors.New("render: unknown output format")
