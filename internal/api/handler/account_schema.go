package handler

// --- Request types ---

type registerRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	PasswordRetype string `json:"password_retype"`
	Role           string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// updateProfileRequest serves both PUT (full replace, all editable fields
// required) and PATCH (absent fields stay untouched). Pointers distinguish
// "absent" from "empty".
type updateProfileRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type changePasswordRequest struct {
	Password       string `json:"password"`
	PasswordNew    string `json:"password_new"`
	PasswordRetype string `json:"password_retype"`
}

// --- Response types ---

// accountResponse is the transport view of an account. Roles carry names
// only; credential material is never serialized.
type accountResponse struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Roles     []string `json:"roles"`
}

type tokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type loginResponse struct {
	Access  string           `json:"access"`
	Refresh string           `json:"refresh"`
	User    *accountResponse `json:"user"`
}
