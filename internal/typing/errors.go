package typing

import "errors"

var (
	// ErrEmptyReferenceText is returned by Start when the provider yields "".
	ErrEmptyReferenceText = errors.New("reference text is empty")
	// ErrIndexOutOfRange is returned when classifying outside the reference.
	ErrIndexOutOfRange = errors.New("character index out of range")
	// ErrSessionFinished is returned when input is applied to a finished session.
	ErrSessionFinished = errors.New("session is finished")
	// ErrInputTooLong is returned when input is longer than the reference.
	ErrInputTooLong = errors.New("input is longer than the reference text")
)
