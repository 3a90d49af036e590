package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidCollection = errors.New("invalid collection name")
	ErrInvalidDocumentID = errors.New("invalid document id")
	ErrEmptyPayload      = errors.New("payload is required")
	ErrSchemaViolation   = errors.New("payload does not match collection schema")
	ErrLoadingSchema     = errors.New("cannot load collection schema")
)
