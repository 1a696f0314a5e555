package utils

// Application constants
const (
	// Application name
	AppName = "Hotel Bombaat"

	// Hotel address lines printed on invoices and reports
	HotelAddress = "Indiranagar, Bengaluru, Karnataka, India"

	// Default port
	DefaultPort = "8080"

	// Session lifetime in seconds (1 day)
	SessionMaxAge = 60 * 60 * 24

	// Loyalty points earned per 100 currency units paid
	LoyaltyPointsDivisor = 100

	// Maximum file size for review image uploads (5MB)
	MaxFileSize = 5 * 1024 * 1024

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Minimum password length
	MinPasswordLength = 8

	// Maximum password length
	MaxPasswordLength = 64

	// Minimum rating
	MinRating = 1

	// Maximum rating
	MaxRating = 5
)

// Error messages
const (
	ErrInvalidCredentials = "Invalid email or password"
	ErrUnauthorized       = "You must be logged in to access this page"
	ErrForbidden          = "You do not have permission to access this page"
	ErrInvalidEmail       = "Invalid email format"
	ErrInvalidPhone       = "Invalid phone number format"
	ErrInvalidPassword    = "Password must be between 8 and 64 characters"
	ErrInvalidFileType    = "Invalid file type. Allowed types: jpg, jpeg, png, gif"
	ErrFileTooLarge       = "File size exceeds 5MB limit"
	ErrRecordNotFound     = "Record not found"
)
