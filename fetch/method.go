package fetch

// Method is a HTTP method the host can be asked to use.
type Method string

const (
	// MethodGet requests a representation of the resource.
	MethodGet Method = "GET"
	// MethodPost submits data to the resource.
	MethodPost Method = "POST"
	// MethodPut replaces the resource.
	MethodPut Method = "PUT"
	// MethodDelete removes the resource.
	MethodDelete Method = "DELETE"
	// MethodPatch partially modifies the resource.
	MethodPatch Method = "PATCH"
	// MethodHead is a GET without the response body.
	MethodHead Method = "HEAD"
	// MethodOptions asks which methods the resource allows.
	MethodOptions Method = "OPTIONS"
)

// String returns the upper-case name of the method.
func (m Method) String() string {
	return string(m)
}

// Valid determines whether the method is one of the known methods.
func (m Method) Valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch, MethodHead, MethodOptions:
		return true
	}
	return false
}
