//go:build !(js && wasm)

package fetch

// DefaultTransport uses http.DefaultClient.
var DefaultTransport Transport = NativeTransport{}
