package hap

import "errors"

// ErrNegativePart indicates a hap whose part ends before it begins.
var ErrNegativePart = errors.New("hap part has negative length")
