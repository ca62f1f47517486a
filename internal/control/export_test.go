package control

// SetClipboardWrite replaces the clipboard write for the duration of a test.
func SetClipboardWrite(f func(string) error) (restore func()) {
	prev := clipboardWrite
	clipboardWrite = f
	return func() { clipboardWrite = prev }
}
