package model

import "fmt"

// AdminCreateRequest is the row inserted into the users table.
// Password is sent as typed; the companion client compares it verbatim.
type AdminCreateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

// NewAdminCreateRequest builds the request with the fixed admin role.
func NewAdminCreateRequest(email, password, fullName string) *AdminCreateRequest {
	return &AdminCreateRequest{
		Email:    email,
		Password: password,
		FullName: fullName,
		Role:     RoleAdmin,
	}
}

// AdminCreateOutcome is what came back from the insert.
type AdminCreateOutcome struct {
	Email      string
	StatusCode int
	Body       string
	Created    bool
}

// Message renders the outcome for the operator.
func (o *AdminCreateOutcome) Message() string {
	if o.Created {
		return fmt.Sprintf("✅ Admin created successfully: %s", o.Email)
	}
	return fmt.Sprintf("❌ Failed to create admin: %d\n%s", o.StatusCode, o.Body)
}
