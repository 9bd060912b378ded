package models

import (
	"encoding/csv"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Form field names as submitted by the contact page
const (
	FieldName    = "full-name"
	FieldEmail   = "email-address"
	FieldMessage = "message"
	FieldToken   = "g-recaptcha-response"
)

const (
	nameMinLen    = 1
	nameMaxLen    = 30
	messageMaxLen = 250
)

var (
	alphaSpaceRegex = regexp.MustCompile(`^[A-Za-z\s]+$`)

	// validate is the singleton validator instance
	validate = validator.New()
)

// ContactForm holds the raw, untrusted form fields of one request
type ContactForm struct {
	Name    string
	Email   string
	Message string
	Token   string
}

// FieldError describes a single violated validation rule
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Submission is a validated, normalized contact-form submission.
// It is immutable once produced and discarded after the pipeline completes.
type Submission struct {
	Name    string
	Email   string
	Message string
	Token   string
}

// LedgerRecord is the subset of a submission that is persisted
type LedgerRecord struct {
	Name    string
	Email   string
	Message string
}

// Validate checks every rule and returns either a clean Submission or the
// full ordered list of violations. All rules are evaluated; errors keep the
// field declaration order (name, email, message), one entry per broken rule.
func (f ContactForm) Validate() (*Submission, []FieldError) {
	name := strings.TrimSpace(f.Name)
	email := strings.TrimSpace(f.Email)
	message := strings.TrimSpace(f.Message)

	var errs []FieldError

	if n := utf8.RuneCountInString(name); n < nameMinLen || n > nameMaxLen {
		errs = append(errs, FieldError{Field: FieldName, Message: "Name must be between 1 and 30 characters."})
	}
	if !alphaSpaceRegex.MatchString(name) {
		errs = append(errs, FieldError{Field: FieldName, Message: "Name must be alphabetic."})
	}
	if err := validate.Var(email, "required,email"); err != nil {
		errs = append(errs, FieldError{Field: FieldEmail, Message: "Email must be a valid email address."})
	}
	if utf8.RuneCountInString(message) > messageMaxLen {
		errs = append(errs, FieldError{Field: FieldMessage, Message: "Message must be less than 250 characters."})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Submission{
		Name:    name,
		Email:   NormalizeEmail(email),
		Message: message,
		Token:   f.Token,
	}, nil
}

// NormalizeEmail canonicalizes an address before storage and use: the whole
// address is lower-cased and a "+tag" sub-address is stripped from the local
// part, so folded aliases of the same mailbox compare equal.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return email
	}
	local, domain := email[:at], email[at+1:]
	if plus := strings.Index(local, "+"); plus > 0 {
		local = local[:plus]
	}
	return local + "@" + domain
}

// Record returns the ledger view of the submission
func (s Submission) Record() LedgerRecord {
	return LedgerRecord{Name: s.Name, Email: s.Email, Message: s.Message}
}

// CSVLine serializes the record as one newline-terminated CSV line. Fields
// containing commas, quotes or newlines are double-quoted with embedded
// quotes doubled, matching the ledger's on-disk format.
func (r LedgerRecord) CSVLine() (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write([]string{r.Name, r.Email, r.Message}); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}
