package errors

import "net/http"

var (
	ErrAuthRequired = New(
		"AUTH_REQUIRED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = New(
		"INVALID_TOKEN",
		"Invalid or expired token",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"You do not own this resource",
		http.StatusForbidden,
	)

	ErrProfileNotFound = New(
		"PROFILE_NOT_FOUND",
		"Profile not found",
		http.StatusNotFound,
	)

	ErrListingNotFound = New(
		"LISTING_NOT_FOUND",
		"Listing not found",
		http.StatusNotFound,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"User not found",
		http.StatusNotFound,
	)

	ErrEmailTaken = New(
		"EMAIL_TAKEN",
		"An account with this email already exists",
		http.StatusConflict,
	)

	ErrValidationFailed = New(
		"VALIDATION_FAILED",
		"Request validation failed",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRating = New(
		"INVALID_RATING",
		"Rating must be an integer between 1 and 5",
		http.StatusBadRequest,
	)

	ErrInvalidCategory = New(
		"INVALID_CATEGORY",
		"Unknown establishment category",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrFetchFailed = New(
		"FETCH_FAILED",
		"Failed to fetch data",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrUploadFailed = New(
		"UPLOAD_FAILED",
		"File upload failed",
		http.StatusBadGateway,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
