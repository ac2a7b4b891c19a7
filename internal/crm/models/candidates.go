package models

import (
	"time"

	"github.com/google/uuid"
)

// Candidate types are the flat, caller-supplied payloads for create and
// update operations. References to other entities appear as identifiers;
// pointer fields distinguish "absent" from a zero value where the entity
// treats the field as optional or requires its presence to be checked.
// Updates replace every mutable field of the stored record with the
// candidate's values.

// IndustryCandidate carries the fields of an industry to create or update.
type IndustryCandidate struct {
	Name string `json:"name"`
}

// CategoryCandidate carries the fields of a category to create or update.
type CategoryCandidate struct {
	Name string `json:"name"`
}

// UserCandidate carries the fields of a user to create or update.
type UserCandidate struct {
	Name          string            `json:"name"`
	Surname       string            `json:"surname"`
	Nickname      string            `json:"nickname"`
	Email         string            `json:"email"`
	Authorization UserAuthorization `json:"authorization"`
	Description   string            `json:"description"`
}

// CompanyCandidate carries the fields of a company to create or update.
type CompanyCandidate struct {
	IndustryID          *uuid.UUID            `json:"industryId"`
	Name                string                `json:"name"`
	Categorization      CompanyCategorization `json:"categorization"`
	BudgetPlanningMonth *Month                `json:"budgetPlanningMonth"`
	Country             string                `json:"country"`
	Zip                 *int64                `json:"zip"`
	City                string                `json:"city"`
	Address             string                `json:"address"`
	WebLink             string                `json:"webLink"`
	Description         string                `json:"description"`
	ContactInFuture     bool                  `json:"contactInFuture"`
}

// ContactCandidate carries the fields of a contact to create or update.
type ContactCandidate struct {
	CompanyID *uuid.UUID `json:"companyId"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Position  string     `json:"position"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
}

// ProjectCandidate carries the fields of a project to create or update.
type ProjectCandidate struct {
	CategoryID    *uuid.UUID  `json:"categoryId"`
	Name          string      `json:"name"`
	Type          ProjectType `json:"type"`
	StartDate     *time.Time  `json:"startDate"`
	EndDate       *time.Time  `json:"endDate"`
	Goal          *int64      `json:"goal"`
	ResponsibleID *uuid.UUID  `json:"responsibleId"`
}

// CollaborationCandidate carries the fields of a collaboration to create
// or update.
type CollaborationCandidate struct {
	ProjectID     *uuid.UUID            `json:"projectId"`
	CompanyID     *uuid.UUID            `json:"companyId"`
	ContactID     *uuid.UUID            `json:"contactId"`
	ResponsibleID *uuid.UUID            `json:"responsibleId"`
	Category      CollaborationCategory `json:"category"`
	Status        CollaborationStatus   `json:"status"`
	Comment       string                `json:"comment"`
	AchievedValue *float64              `json:"achievedValue"`
}
