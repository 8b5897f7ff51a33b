package errors

// ErrorCategory represents the broad category of an error for classification and reporting.
type ErrorCategory string

const (
	// CategoryUsage represents invalid command-line invocations.
	CategoryUsage      ErrorCategory = "usage"
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound represents a missing input file or directory.
	CategoryNotFound   ErrorCategory = "not_found"
	CategoryPermission ErrorCategory = "permission"
	CategoryFileSystem ErrorCategory = "filesystem"

	// CategoryTransform represents failures inside the minification library.
	CategoryTransform ErrorCategory = "transform"
	CategoryExternal  ErrorCategory = "external"
	CategoryInternal  ErrorCategory = "internal"
)

// ErrorSeverity indicates the impact level of an error.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution completely
	SeverityError   ErrorSeverity = "error"   // Fails the current operation
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// ErrorContext provides structured context for errors.
type ErrorContext map[string]any

// Set adds or updates a context value.
func (c ErrorContext) Set(key string, value any) ErrorContext {
	if c == nil {
		c = make(ErrorContext)
	}
	c[key] = value
	return c
}

// Get retrieves a context value.
func (c ErrorContext) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	value, exists := c[key]
	return value, exists
}

// GetString retrieves a string context value.
func (c ErrorContext) GetString(key string) (string, bool) {
	if value, exists := c.Get(key); exists {
		if str, ok := value.(string); ok {
			return str, true
		}
	}
	return "", false
}
