package usecase

// DomainError is a business-rule rejection (bad date, duplicate booking),
// not a system failure. Handlers map these to 4xx responses.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}
