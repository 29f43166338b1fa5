// Package models defines the data shapes exchanged with the lost-and-found
// backend. Apart from Session, the client moves these between the backend and
// the UI without interpreting fields beyond role and status.
package models

import "time"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
	RoleUser  Role = "USER"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleUser:
		return true
	}
	return false
}

type ItemStatus string

const (
	ItemLost    ItemStatus = "LOST"
	ItemFound   ItemStatus = "FOUND"
	ItemClaimed ItemStatus = "CLAIMED"
)

// NextStatuses lists the transitions the forms offer for an item in status s.
// The backend is the authority on legality; this only drives which actions
// the UI presents (LOST->FOUND, FOUND->CLAIMED, CLAIMED->FOUND as reversal).
func NextStatuses(s ItemStatus) []ItemStatus {
	switch s {
	case ItemLost:
		return []ItemStatus{ItemFound}
	case ItemFound:
		return []ItemStatus{ItemClaimed}
	case ItemClaimed:
		return []ItemStatus{ItemFound}
	}
	return nil
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// DisplayName returns the first name when present, else the username.
func (u User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}

type Item struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Location     string     `json:"location"`
	DateReported time.Time  `json:"dateReported"`
	Status       ItemStatus `json:"status"`
	ReportedBy   *User      `json:"reportedBy,omitempty"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	ContactInfo  string     `json:"contactInfo"`
}

type Request struct {
	ID          int64         `json:"id"`
	Item        *Item         `json:"item,omitempty"`
	RequestedBy *User         `json:"requestedBy,omitempty"`
	RequestDate time.Time     `json:"requestDate"`
	Status      RequestStatus `json:"status"`
	Notes       string        `json:"notes,omitempty"`
	ReviewedBy  *User         `json:"reviewedBy,omitempty"`
	ReviewDate  *time.Time    `json:"reviewDate,omitempty"`
}

// ItemForm is the create/update payload for items. Status is limited to
// LOST or FOUND on creation.
type ItemForm struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Location    string     `json:"location"`
	Status      ItemStatus `json:"status"`
	ContactInfo string     `json:"contactInfo"`
	ImageURL    string     `json:"imageUrl,omitempty"`
}

// Categories offered by the report form.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Books",
	"Personal Items",
	"Accessories",
	"Sports Equipment",
	"Bags",
	"Keys",
	"Documents",
	"Other",
}

// Session is the client's authentication state. The zero value is anonymous.
// Invariant: Token is non-empty exactly when User is non-nil.
type Session struct {
	Token string
	User  *User
}

// Authenticated reports whether the session holds a logged-in user.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// SignInRequest is the credentials payload for /auth/signin.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignUpRequest is the registration payload for /auth/signup.
// Role defaults to USER when empty.
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}

// AuthResponse is what both auth endpoints return.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
