// utils/validator.go - Input validation
package utils

import (
	"net/url"
	"regexp"
	"strings"

	"gyanpod-api/models"
)

// Classes lists the grade levels the platform serves.
var Classes = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}

// Subjects lists the subjects content can be filed under.
var Subjects = []string{
	"mathematics", "science", "physics", "chemistry", "biology",
	"english", "hindi", "social-science", "computer-science",
}

var contentTypes = []string{
	models.ContentTypeNotes,
	models.ContentTypeQuiz,
	models.ContentTypePaper,
	models.ContentTypeVideo,
}

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// ValidatePassword checks password strength
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters"
	}

	return true, ""
}

// ValidateURL checks that the value is a well-formed absolute http(s) URL.
func ValidateURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ValidateClass checks the grade level against the supported list.
func ValidateClass(class string) bool {
	for _, c := range Classes {
		if c == class {
			return true
		}
	}
	return false
}

// ValidateSubject checks the subject against the supported list.
func ValidateSubject(subject string) bool {
	for _, s := range Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// ValidateContentType checks the submission type against the supported kinds.
func ValidateContentType(contentType string) bool {
	for _, t := range contentTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}
