package appointment

import "errors"

var (
	errTutorWithoutUser    = errors.New("tutor has no linked user account")
	errProviderWithoutUser = errors.New("provider has no linked user account")
)
