package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrAuthenticationFailed = ErrorResponse{
		Status:  "error",
		Error:   "authentication_failed",
		Details: "Invalid email or password",
	}

	ErrSingletonExists = ErrorResponse{
		Status:  "error",
		Error:   "singleton_violation",
		Details: "Only one instance of this record can exist",
	}

	ErrAlreadyExists = ErrorResponse{
		Status:  "error",
		Error:   "unique_violation",
		Details: "Record with this value already exists",
	}

	ErrNotFound = ErrorResponse{
		Status:  "error",
		Error:   "not_found",
		Details: "Record not found",
	}

	ErrInternal = ErrorResponse{
		Status:  "error",
		Error:   "internal_error",
		Details: "Internal server error",
	}
)
