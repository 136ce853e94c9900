package services

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// maxMessageLen keeps contact submissions at a size a human wrote.
const maxMessageLen = 5000

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactSubmission is one contact-form submission.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactService validates contact submissions. Submissions are logged,
// not persisted, and no mail is sent.
type ContactService struct{}

// NewContactService creates a new ContactService
func NewContactService() *ContactService {
	return &ContactService{}
}

// Validate checks a submission and returns the first problem found.
func (s *ContactService) Validate(sub ContactSubmission) error {
	if strings.TrimSpace(sub.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(sub.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if !emailPattern.MatchString(strings.TrimSpace(sub.Email)) {
		return fmt.Errorf("email is not valid")
	}
	if strings.TrimSpace(sub.Message) == "" {
		return fmt.Errorf("message is required")
	}
	if len(sub.Message) > maxMessageLen {
		return fmt.Errorf("message is too long (max %d characters)", maxMessageLen)
	}
	return nil
}

// Submit validates the submission and returns a receipt ID.
func (s *ContactService) Submit(sub ContactSubmission) (string, error) {
	if err := s.Validate(sub); err != nil {
		return "", err
	}

	id := uuid.NewString()
	log.Printf("contact submission %s from %s <%s> (%d chars)",
		id, strings.TrimSpace(sub.Name), strings.TrimSpace(sub.Email), len(sub.Message))
	return id, nil
}
