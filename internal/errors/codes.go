package errors

// Error codes for the PJ front end.
// These codes appear in diagnostics printed by the CLI and published by the
// language server.
//
// Error code ranges:
// E0001-E0099: Semantic analysis errors
// E0100-E0199: Parser errors
// E0900-E0999: Tooling errors (tokenizer, token stream, tree input)

const (
	// E0001: Variable resolution errors
	ErrorUndeclaredVariable = "E0001"

	// E0002: Variable used on the line that declares it
	ErrorSelfReference = "E0002"

	// E0100: Token that cannot continue the current production
	ErrorUnexpectedToken = "E0100"

	// E0101: Input ended inside a production
	ErrorUnexpectedEnd = "E0101"

	// E0900: Source text could not be tokenized
	ErrorInvalidSource = "E0900"

	// E0901: Malformed token stream line
	ErrorInvalidTokenStream = "E0901"

	// E0902: Malformed linearized tree line
	ErrorInvalidTree = "E0902"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUndeclaredVariable:
		return "Variable is used but not declared in any enclosing scope"
	case ErrorSelfReference:
		return "Variable is used on the same line that declares it"
	case ErrorUnexpectedToken:
		return "Token cannot appear at this point of the program"
	case ErrorUnexpectedEnd:
		return "Program ended before the construct was complete"
	case ErrorInvalidSource:
		return "Source text could not be split into tokens"
	case ErrorInvalidTokenStream:
		return "Token stream line is malformed"
	case ErrorInvalidTree:
		return "Linearized tree line is malformed"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Semantic Analysis"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
