package clip

// unavailableSetter fails every operation with the reason the clipboard
// could not be reached. Returned when neither WSL interop nor a display
// environment is present.
type unavailableSetter struct {
	err error
}

func (unavailableSetter) Name() string { return "unavailable" }

func (u unavailableSetter) fail(op string) error {
	return &SetterError{Op: op, Err: u.err}
}

func (u unavailableSetter) TextStream() (TextStream, error) {
	return nil, u.fail("text stream")
}

func (u unavailableSetter) SetText(string) error { return u.fail("set text") }

func (u unavailableSetter) SetImage(string) error { return u.fail("set image") }

func (u unavailableSetter) SetFileDropList([]string) error {
	return u.fail("set file drop list")
}
