package email

const (
	DefaultContactSubject = "Contact Form Submission"
	WelcomeCode           = "WELCOME10"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,min=1,max=1000"`
}

type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type FeedbackRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Feedback    string `json:"feedback" validate:"required,min=10,max=1000"`
	ProductName string `json:"productName,omitempty" validate:"max=200"`
}

// Result carries the provider ids of the mails a request produced.
type Result struct {
	Success       bool   `json:"success"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	AdminEmail    string `json:"adminEmail,omitempty"`
}
