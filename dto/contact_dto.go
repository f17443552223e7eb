package dto

// NewsletterRequest is the footer newsletter form
type NewsletterRequest struct {
	Email string `json:"email" form:"email"`
}

// ContactRequest is the contact page form. The page sends first and last
// name separately; older clients send a single name.
type ContactRequest struct {
	Name       string `json:"name" form:"name"`
	FirstName  string `json:"firstName" form:"firstName"`
	LastName   string `json:"lastName" form:"lastName"`
	Email      string `json:"email" form:"email"`
	Phone      string `json:"phone" form:"phone"`
	Subject    string `json:"subject" form:"subject"`
	Message    string `json:"message" form:"message"`
	Newsletter bool   `json:"newsletter" form:"newsletter"`
}
