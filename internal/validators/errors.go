package validators

import "errors"

var (
	ErrNoCodeLists = errors.New("code list registry is required")
)
