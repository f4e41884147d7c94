package rtx

// Proc is a resolved driver entry point.
type Proc interface {
	// Call invokes the entry point with GLuint arguments in order.
	Call(args ...uint32)
}

// Driver is the extension-query facility of the active graphics context.
// Implementations are only safe on the thread that owns the context.
type Driver interface {
	// ExtensionSupported reports whether the driver advertises the named extension.
	ExtensionSupported(name string) bool

	// ProcAddress resolves an entry point by its published symbol name.
	// It returns nil when the driver does not export the symbol.
	ProcAddress(name string) Proc
}
