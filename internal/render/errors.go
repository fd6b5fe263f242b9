package render

import "errors"

var errNilResult = errors.New("nil result")
