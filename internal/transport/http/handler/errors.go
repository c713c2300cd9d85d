package handler

// Client-facing messages. Register/login failures go out under "error_msg",
// profile failures under "error".
const (
	errInternalServer  = "Server error"
	errEmailRegistered = "Email Id is already Registered"
	errInvalidLogin    = "Invalid user Login"
	errInvalidPassword = "Invalid Password"
	errUserNotFound    = "User not found"
	errUnauthorized    = "User unauthorized"
	errInvalidRequest  = "Invalid request body"

	msgUserCreated = "User created successfully"
)
