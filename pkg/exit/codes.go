// Package exit provides standard exit codes for nexctl commands.
package exit

// Standard exit codes used by nexctl commands.
const (
	// Success indicates successful execution.
	Success = 0

	// GeneralError indicates a general error occurred.
	GeneralError = 1

	// ValidationError indicates invalid input, such as an unknown
	// field key or an empty projection.
	ValidationError = 2

	// ConnectionError indicates the manager endpoint could not be
	// reached or failed mid-request.
	ConnectionError = 3

	// NotFound indicates the requested resource does not exist.
	NotFound = 4

	// IncompatibleServer indicates a strict-mode field check failed
	// against the connected server's version.
	IncompatibleServer = 5
)

// CodeDescriptions maps exit codes to their descriptions.
var CodeDescriptions = map[int]string{
	Success:            "Success",
	GeneralError:       "General error",
	ValidationError:    "Validation error",
	ConnectionError:    "Connection error",
	NotFound:           "Not found",
	IncompatibleServer: "Incompatible server version",
}

// GetDescription returns the description for an exit code.
func GetDescription(code int) string {
	if desc, ok := CodeDescriptions[code]; ok {
		return desc
	}
	return "Unknown error"
}
