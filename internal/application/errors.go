package application

import "errors"

// Error codes surfaced as {code, details} pairs in the response envelope.
const (
	CodeMissingCredentials  = "MISSING_CREDENTIALS"
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeUserNotActive       = "USER_NOT_ACTIVE"
	CodeInvalidPassword     = "INVALID_PASSWORD"
	CodeInvalidToken        = "INVALID_TOKEN"
	CodeTokenNotFound       = "TOKEN_NOT_FOUND"
	CodeForbidden           = "FORBIDDEN"
	CodeRoleNotFound        = "ROLE_NOT_FOUND"
	CodeProjectNotFound     = "PROJECT_NOT_FOUND"
	CodeTaskNotFound        = "TASK_NOT_FOUND"
	CodeTeamNotFound        = "TEAM_NOT_FOUND"
	CodeCommentNotFound     = "COMMENT_NOT_FOUND"
	CodeMemberNotFound      = "MEMBER_NOT_FOUND"
	CodeAssignmentNotFound  = "ASSIGNMENT_NOT_FOUND"
	CodeRequestNotFound     = "REQUEST_NOT_FOUND"
	CodeAlreadyMember       = "ALREADY_MEMBER"
	CodeAlreadyAssigned     = "ALREADY_ASSIGNED"
	CodeInvalidStatus       = "INVALID_STATUS"
	CodeInvalidPriority     = "INVALID_PRIORITY"
	CodeInvalidContent      = "INVALID_CONTENT"
	CodeInvalidState        = "INVALID_STATE"
	CodeCannotRemoveManager = "CANNOT_REMOVE_MANAGER"
	CodeUsernameExists      = "USERNAME_EXISTS"
	CodeEmailExists         = "EMAIL_EXISTS"
	CodeValidation          = "VALIDATION_ERROR"
)

// CodedError is a locally recoverable failure: the caller gets a structured
// envelope and may correct input and retry. Anything else that escapes a
// service is treated as a store-level failure of the whole request.
type CodedError struct {
	Code    string
	Details string
	Message string
}

func (e *CodedError) Error() string {
	return e.Code + ": " + e.Details
}

// Coded builds a CodedError. message is the human-facing envelope message;
// when empty, details doubles as the message.
func Coded(code, details, message string) *CodedError {
	if message == "" {
		message = details
	}
	return &CodedError{Code: code, Details: details, Message: message}
}

// AsCoded unwraps a CodedError when err carries one.
func AsCoded(err error) (*CodedError, bool) {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
