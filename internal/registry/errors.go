package registry

// sizeUnavailableError signals that a registry entry carries no recognized
// weight file or size metadata.
type sizeUnavailableError struct{ model string }

func (e sizeUnavailableError) Error() string {
	return "model size can't be obtained from the model repo: " + e.model
}

// ErrSizeUnavailable constructs a sizeUnavailableError.
func ErrSizeUnavailable(model string) error { return sizeUnavailableError{model: model} }

// IsSizeUnavailable reports whether err indicates missing size metadata.
func IsSizeUnavailable(err error) bool {
	_, ok := err.(sizeUnavailableError)
	return ok
}

// configUnavailableError signals that a registry entry has no configuration document.
type configUnavailableError struct{ model string }

func (e configUnavailableError) Error() string {
	return "config file not found in the model repo: " + e.model
}

// ErrConfigUnavailable constructs a configUnavailableError.
func ErrConfigUnavailable(model string) error { return configUnavailableError{model: model} }

// IsConfigUnavailable reports whether err indicates a missing configuration document.
func IsConfigUnavailable(err error) bool {
	_, ok := err.(configUnavailableError)
	return ok
}
