package service

import (
	"fmt"
	"strings"
)

// UnsupportedFileError is returned when an upload has an extension outside
// the allowed list.
type UnsupportedFileError struct {
	Filename string
	Allowed  []string
}

func (e *UnsupportedFileError) Error() string {
	return fmt.Sprintf("unsupported file %q: allowed extensions are %s", e.Filename, strings.Join(e.Allowed, ", "))
}

// FileTooLargeError is returned when an upload exceeds the size limit.
type FileTooLargeError struct {
	Size int64
	Max  int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file too large: %d bytes exceeds limit of %d bytes", e.Size, e.Max)
}

// DuplicateEmailError is returned when an uploaded resume carries an email
// that is already stored.
type DuplicateEmailError struct {
	Email    string
	ResumeID string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("a resume with email %s already exists (id %s)", e.Email, e.ResumeID)
}

// NotFoundError is returned when a resume or session does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// InvalidRequestError wraps request validation failures.
type InvalidRequestError struct {
	Message string
	Cause   error
}

func (e *InvalidRequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid request: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid request: %s", e.Message)
}

func (e *InvalidRequestError) Unwrap() error {
	return e.Cause
}

// SessionClosedError is returned when an answer or question is requested on
// a completed or abandoned session.
type SessionClosedError struct {
	SessionID string
	Status    string
}

func (e *SessionClosedError) Error() string {
	return fmt.Sprintf("session %s is %s", e.SessionID, e.Status)
}

// AnswerConflictError is returned when an answer targets a question that was
// already answered or is not the one currently being served. Current is ""
// when no question is waiting for an answer.
type AnswerConflictError struct {
	SessionID  string
	QuestionID string
	Answered   bool
	Current    string
}

func (e *AnswerConflictError) Error() string {
	switch {
	case e.Answered:
		return fmt.Sprintf("question %s in session %s is already answered", e.QuestionID, e.SessionID)
	case e.Current == "":
		return fmt.Sprintf("question %s in session %s is not being asked: request the next question first", e.QuestionID, e.SessionID)
	default:
		return fmt.Sprintf("question %s in session %s is out of order: current question is %s", e.QuestionID, e.SessionID, e.Current)
	}
}
