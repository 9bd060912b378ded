package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() ContactForm {
	return ContactForm{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello there",
		Token:   "tok",
	}
}

func TestContactFormValidate(t *testing.T) {
	t.Run("valid form produces submission", func(t *testing.T) {
		sub, errs := validForm().Validate()
		require.Empty(t, errs)
		require.NotNil(t, sub)
		assert.Equal(t, "Jane Doe", sub.Name)
		assert.Equal(t, "jane@example.com", sub.Email)
		assert.Equal(t, "Hello there", sub.Message)
		assert.Equal(t, "tok", sub.Token)
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		form := validForm()
		form.Name = "  Jane Doe  "
		form.Message = " hi "

		sub, errs := form.Validate()
		require.Empty(t, errs)
		assert.Equal(t, "Jane Doe", sub.Name)
		assert.Equal(t, "hi", sub.Message)
	})

	t.Run("empty message is allowed", func(t *testing.T) {
		form := validForm()
		form.Message = ""

		sub, errs := form.Validate()
		require.Empty(t, errs)
		assert.Equal(t, "", sub.Message)
	})

	t.Run("name length violations name the full-name field", func(t *testing.T) {
		for _, name := range []string{"", "   ", strings.Repeat("a", 31)} {
			form := validForm()
			form.Name = name

			sub, errs := form.Validate()
			assert.Nil(t, sub)
			require.NotEmpty(t, errs, "name %q should be rejected", name)
			assert.Equal(t, FieldName, errs[0].Field)
		}
	})

	t.Run("non-alphabetic names are rejected", func(t *testing.T) {
		for _, name := range []string{"Jane42", "J@ne", "Jane-Doe", "名前"} {
			form := validForm()
			form.Name = name

			sub, errs := form.Validate()
			assert.Nil(t, sub, "name %q should be rejected", name)
			require.Len(t, errs, 1)
			assert.Equal(t, FieldName, errs[0].Field)
			assert.Equal(t, "Name must be alphabetic.", errs[0].Message)
		}
	})

	t.Run("empty name violates both name rules", func(t *testing.T) {
		form := validForm()
		form.Name = ""

		_, errs := form.Validate()
		require.Len(t, errs, 2)
		assert.Equal(t, "Name must be between 1 and 30 characters.", errs[0].Message)
		assert.Equal(t, "Name must be alphabetic.", errs[1].Message)
	})

	t.Run("malformed emails name the email-address field", func(t *testing.T) {
		for _, email := range []string{"", "not-an-email", "a@", "@b.com", "a b@c.com"} {
			form := validForm()
			form.Email = email

			sub, errs := form.Validate()
			assert.Nil(t, sub, "email %q should be rejected", email)
			require.Len(t, errs, 1)
			assert.Equal(t, FieldEmail, errs[0].Field)
		}
	})

	t.Run("message boundary lengths", func(t *testing.T) {
		form := validForm()
		form.Message = strings.Repeat("m", 250)
		sub, errs := form.Validate()
		require.Empty(t, errs)
		require.NotNil(t, sub)

		form.Message = strings.Repeat("m", 251)
		sub, errs = form.Validate()
		assert.Nil(t, sub)
		require.Len(t, errs, 1)
		assert.Equal(t, FieldMessage, errs[0].Field)
	})

	t.Run("all violated rules are reported in field order", func(t *testing.T) {
		form := ContactForm{Name: "x1", Email: "nope", Message: strings.Repeat("m", 300)}

		_, errs := form.Validate()
		require.Len(t, errs, 3)
		assert.Equal(t, FieldName, errs[0].Field)
		assert.Equal(t, FieldEmail, errs[1].Field)
		assert.Equal(t, FieldMessage, errs[2].Field)
	})
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jane@Example.COM", "jane@example.com"},
		{"jane+newsletter@example.com", "jane@example.com"},
		{"  jane@example.com ", "jane@example.com"},
		{"+weird@example.com", "+weird@example.com"}, // leading plus is kept
		{"no-at-sign", "no-at-sign"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.in), "input %q", tt.in)
	}
}

func TestLedgerRecordCSVLine(t *testing.T) {
	t.Run("embedded quotes are doubled", func(t *testing.T) {
		rec := LedgerRecord{Name: "Jane Doe", Email: "jane@example.com", Message: `He said "hi"`}

		line, err := rec.CSVLine()
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe,jane@example.com,\"He said \"\"hi\"\"\"\n", line)
	})

	t.Run("plain fields are not quoted", func(t *testing.T) {
		rec := LedgerRecord{Name: "Jane", Email: "jane@example.com", Message: "hello"}

		line, err := rec.CSVLine()
		require.NoError(t, err)
		assert.Equal(t, "Jane,jane@example.com,hello\n", line)
	})

	t.Run("commas force quoting", func(t *testing.T) {
		rec := LedgerRecord{Name: "Jane", Email: "jane@example.com", Message: "a,b"}

		line, err := rec.CSVLine()
		require.NoError(t, err)
		assert.Equal(t, "Jane,jane@example.com,\"a,b\"\n", line)
	})
}

func TestSubmissionRecord(t *testing.T) {
	sub := Submission{Name: "Jane", Email: "jane@example.com", Message: "hi", Token: "tok"}
	rec := sub.Record()
	assert.Equal(t, LedgerRecord{Name: "Jane", Email: "jane@example.com", Message: "hi"}, rec)
}
