package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"priyasi-storefront/internal/logger"
	"priyasi-storefront/internal/metrics"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Service renders and sends the storefront's transactional mails. Failures here
// never touch shopper state.
type Service struct {
	sender   Sender
	from     string
	admin    string
	validate *validator.Validate
}

func NewService(sender Sender, from, admin string) *Service {
	return &Service{
		sender:   sender,
		from:     from,
		admin:    admin,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// SendContact confirms receipt to the customer and forwards the message to the admin inbox.
func (s *Service) SendContact(ctx context.Context, req ContactRequest) (*Result, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if strings.TrimSpace(req.Subject) == "" {
		req.Subject = DefaultContactSubject
	}
	if err := s.check(req); err != nil {
		return nil, err
	}

	log := logger.FromCtx(ctx).With(zap.String("layer", "service"), zap.String("method", "SendContact"))
	log.Info("contact form submission", zap.String("email", req.Email))

	customerID, err := s.send(ctx, "contact_customer", req, Message{
		From:    s.from,
		To:      []string{req.Email},
		Subject: "We received your message - Priyasi",
	})
	if err != nil {
		return nil, err
	}

	adminID, err := s.send(ctx, "contact_admin", req, Message{
		From:    s.fromAs("Contact Form"),
		To:      []string{s.admin},
		Subject: "New Contact Form: " + req.Subject,
	})
	if err != nil {
		return nil, err
	}

	return &Result{Success: true, CustomerEmail: customerID, AdminEmail: adminID}, nil
}

// Subscribe sends the newsletter welcome mail with the first-order discount code.
func (s *Service) Subscribe(ctx context.Context, req NewsletterRequest) (*Result, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.check(req); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("newsletter subscription", zap.String("email", req.Email))

	id, err := s.send(ctx, "newsletter", struct{ Code string }{WelcomeCode}, Message{
		From:    s.from,
		To:      []string{req.Email},
		Subject: "Welcome to Priyasi - 10% Off Your First Order!",
	})
	if err != nil {
		return nil, err
	}
	return &Result{Success: true, CustomerEmail: id}, nil
}

// SendFeedback thanks the customer and notifies the admin inbox with the rating.
func (s *Service) SendFeedback(ctx context.Context, req FeedbackRequest) (*Result, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Feedback = strings.TrimSpace(req.Feedback)
	req.ProductName = strings.TrimSpace(req.ProductName)
	if err := s.check(req); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("feedback submission",
		zap.String("email", req.Email),
		zap.Int("rating", req.Rating),
	)

	customerID, err := s.send(ctx, "feedback_customer", req, Message{
		From:    s.from,
		To:      []string{req.Email},
		Subject: "Thank you for your feedback - Priyasi",
	})
	if err != nil {
		return nil, err
	}

	adminID, err := s.send(ctx, "feedback_admin", req, Message{
		From:    s.fromAs("Feedback"),
		To:      []string{s.admin},
		Subject: fmt.Sprintf("New Customer Feedback - %d stars", req.Rating),
	})
	if err != nil {
		return nil, err
	}

	return &Result{Success: true, CustomerEmail: customerID, AdminEmail: adminID}, nil
}

func (s *Service) check(req any) error {
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %s", ErrInvalidRequest, strings.ToLower(fe.Field()), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

func (s *Service) send(ctx context.Context, tmpl string, data any, msg Message) (string, error) {
	html, err := render(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl, err)
	}
	msg.HTML = html

	id, err := s.sender.Send(ctx, msg)
	if err != nil {
		metrics.EmailFailures.Inc()
		logger.FromCtx(ctx).Error("failed to send email",
			zap.String("template", tmpl),
			zap.Error(err),
		)
		return "", err
	}
	return id, nil
}

// fromAs turns "Priyasi <addr>" into "Priyasi <label> <addr>".
func (s *Service) fromAs(label string) string {
	name, addr, ok := strings.Cut(s.from, "<")
	if !ok {
		return s.from
	}
	return strings.TrimSpace(name) + " " + label + " <" + addr
}
