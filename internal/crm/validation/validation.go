// Package validation holds the per-entity scalar checks run on a candidate
// record after its references resolve and before it is persisted. Checks are
// pure, run in the declared field order of each entity, and report the first
// failure only.
package validation

import (
	"regexp"
	"strings"

	e "github.com/kolab/crm/internal/crm/errors"
	"github.com/kolab/crm/internal/crm/models"
)

// emailPattern requires one "@" with a non-empty local part and a domain
// containing at least one dot.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s.]+$`)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Industry checks an industry candidate.
func Industry(c *models.IndustryCandidate) error {
	if blank(c.Name) {
		return e.Validation("name", "industry name is required")
	}
	if n := len(strings.TrimSpace(c.Name)); n < 2 || n > 100 {
		return e.Validation("name", "industry name must be between 2 and 100 characters")
	}
	return nil
}

// Category checks a category candidate.
func Category(c *models.CategoryCandidate) error {
	if blank(c.Name) {
		return e.Validation("name", "category name is required")
	}
	if n := len(strings.TrimSpace(c.Name)); n < 2 || n > 50 {
		return e.Validation("name", "category name must be between 2 and 50 characters")
	}
	return nil
}

// User checks a user candidate.
func User(c *models.UserCandidate) error {
	if blank(c.Name) {
		return e.Validation("name", "name is required")
	}
	if blank(c.Surname) {
		return e.Validation("surname", "surname is required")
	}
	if blank(c.Email) {
		return e.Validation("email", "email is required")
	}
	if !validEmail(c.Email) {
		return e.Validation("email", "email format is invalid")
	}
	if c.Authorization == "" {
		return e.Validation("authorization", "authorization is required")
	}
	if !c.Authorization.Valid() {
		return e.Validation("authorization", "unknown authorization level")
	}
	return nil
}

// Company checks a company candidate. The industry reference is the
// resolver's concern, not checked here.
func Company(c *models.CompanyCandidate) error {
	if blank(c.Name) {
		return e.Validation("name", "name is required")
	}
	if c.Categorization == "" {
		return e.Validation("categorization", "categorization is required")
	}
	if !c.Categorization.Valid() {
		return e.Validation("categorization", "unknown categorization")
	}
	if c.BudgetPlanningMonth != nil && !c.BudgetPlanningMonth.Valid() {
		return e.Validation("budgetPlanningMonth", "unknown month")
	}
	if blank(c.Country) {
		return e.Validation("country", "country is required")
	}
	if c.Zip == nil {
		return e.Validation("zip", "zip code is required")
	}
	if blank(c.City) {
		return e.Validation("city", "city is required")
	}
	return nil
}

// Contact checks a contact candidate.
func Contact(c *models.ContactCandidate) error {
	if blank(c.FirstName) {
		return e.Validation("firstName", "first name is required")
	}
	if blank(c.LastName) {
		return e.Validation("lastName", "last name is required")
	}
	if blank(c.Position) {
		return e.Validation("position", "position is required")
	}
	if blank(c.Email) {
		return e.Validation("email", "email is required")
	}
	if !validEmail(c.Email) {
		return e.Validation("email", "email format is invalid")
	}
	return nil
}

// Project checks a project candidate.
func Project(c *models.ProjectCandidate) error {
	if blank(c.Name) {
		return e.Validation("name", "name is required")
	}
	if c.Type == "" {
		return e.Validation("type", "type is required")
	}
	if !c.Type.Valid() {
		return e.Validation("type", "unknown project type")
	}
	if c.StartDate == nil || c.StartDate.IsZero() {
		return e.Validation("startDate", "start date is required")
	}
	return nil
}

// Collaboration checks a collaboration candidate. Category and status are
// required enums with no default.
func Collaboration(c *models.CollaborationCandidate) error {
	if c.Category == "" {
		return e.Validation("category", "category is required")
	}
	if !c.Category.Valid() {
		return e.Validation("category", "unknown collaboration category")
	}
	if c.Status == "" {
		return e.Validation("status", "status is required")
	}
	if !c.Status.Valid() {
		return e.Validation("status", "unknown collaboration status")
	}
	return nil
}
