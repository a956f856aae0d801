package gateway

import "errors"

// ErrPublisherDisabled is returned for messages that cannot be dropped silently
var ErrPublisherDisabled = errors.New("event publisher disabled")
