package user

// Fields a ValidationError may point at. An empty field means the error
// concerns the credentials as a whole.
const (
	FieldUsername = "username"
	FieldPassword = "password"
)

// ValidationError is a domain-expected failure from SignUp/SignIn,
// returned as a value. Callers extract it with errors.As to branch on
// the offending field; anything else coming out of the credential store
// is an infrastructure failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
