package apperrors

// Common domain failures. Credential failures share one generic message so
// the API does not distinguish an unknown email from a wrong password.
var (
	ErrPasswordMismatch   = Validation(40002, "passwords do not match")
	ErrEmailTaken         = Conflict(40901, "user already exists")
	ErrInvalidCredentials = Auth(40101, "invalid email or password")
	ErrNotAdmin           = Auth(40102, "not authorized as admin")
	ErrTokenMissing       = Auth(40103, "missing token")
	ErrTokenExpired       = Auth(40104, "token expired")
	ErrTokenInvalid       = Auth(40105, "invalid token")

	ErrUserNotFound = NotFound(40401, "user not found")
	ErrNotSelf      = Forbidden(40301, "not allowed to modify another user")

	ErrTeamNotFound     = NotFound(40402, "team not found")
	ErrNotTeamMember    = Forbidden(40302, "not a member of this team")
	ErrNotTeamAdmin     = Forbidden(40303, "team admin role required")
	ErrAlreadyMember    = Conflict(40902, "user is already a team member")
	ErrMemberNotFound   = NotFound(40403, "user is not a team member")
	ErrProjectNotFound  = NotFound(40404, "project not found")
	ErrTaskNotFound     = NotFound(40405, "task not found")
	ErrNoteNotFound     = NotFound(40406, "note not found")
	ErrChannelNotFound  = NotFound(40407, "channel not found")
	ErrChannelNameEmpty = Validation(40003, "channel name is required")
	ErrBadTaskStatus    = Validation(40004, "invalid task status")
	ErrPostNotFound     = NotFound(40408, "post not found")
)
