package yacaption

import "errors"

// ErrCaptionTooLong is the cause carried by the error returned when
// StrategyError meets a caption longer than MaxCaptionLength. Test for it
// with errors.Is.
var ErrCaptionTooLong = errors.New("caption exceeds maximum length")
