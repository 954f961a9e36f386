//go:build js && wasm

package log

import (
	"fmt"
	"syscall/js"
)

// Console writes messages to the browser's console.
type Console struct {
	// Prefix is written before every message.
	Prefix string
}

// Console implements the Logger interface.
var _ Logger = Console{}

// Printf logs the formatted message with console.log.
func (c Console) Printf(format string, v ...interface{}) {
	console := js.Global().Get("console")
	console.Call("log", c.Prefix+fmt.Sprintf(format, v...))
}
