package request

// SignInRequest carries the sign-in form. Fields are not bound as required so
// that empty values reach the session use case and get its error code.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
