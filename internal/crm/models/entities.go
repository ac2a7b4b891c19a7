// Package models defines the core domain entities of the CRM:
// industries, categories, users, companies, contacts, projects and the
// collaboration records that tie them together. Relations are held as
// foreign-key identifiers stored by value; the pointer fields next to them
// carry the resolved entity when it has been loaded, never a back-reference.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Industry is a business sector a company belongs to.
type Industry struct {
	// ID is the unique identifier, assigned on creation.
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	// Name is unique across all industries.
	Name string `gorm:"size:100;uniqueIndex" json:"name"`
}

// Category is an internal grouping for projects.
type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:50" json:"name"`
}

// User is a member of the organization running the CRM.
type User struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string    `json:"name"`
	Surname string    `json:"surname"`
	// Nickname is optional.
	Nickname string `json:"nickname,omitempty"`
	// Email is unique across all users and doubles as the login identity.
	Email         string            `gorm:"uniqueIndex" json:"email"`
	Authorization UserAuthorization `gorm:"column:auth" json:"authorization"`
	Description   string            `json:"description,omitempty"`
}

// Company is an external organization tracked for collaboration.
type Company struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	// IndustryID references the industry the company operates in.
	IndustryID uuid.UUID `gorm:"type:uuid" json:"industryId"`
	// Industry is the resolved industry, loaded on reads.
	Industry *Industry `gorm:"foreignKey:IndustryID" json:"industry,omitempty"`
	// Name is unique across all companies.
	Name           string                `gorm:"uniqueIndex" json:"name"`
	Categorization CompanyCategorization `json:"categorization"`
	// BudgetPlanningMonth is the month the company plans next year's budget,
	// if known.
	BudgetPlanningMonth *Month `json:"budgetPlanningMonth,omitempty"`
	Country             string `json:"country"`
	Zip                 int64  `json:"zip"`
	City                string `json:"city"`
	Address             string `json:"address,omitempty"`
	WebLink             string `json:"webLink,omitempty"`
	Description         string `json:"description,omitempty"`
	// ContactInFuture marks whether the company is worth approaching again.
	ContactInFuture bool `json:"contactInFuture"`
}

// Contact is a person working at a company.
type Contact struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid" json:"companyId"`
	Company   *Company  `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Position  string    `json:"position"`
	// Email is unique across all contacts.
	Email string `gorm:"uniqueIndex" json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Project is an internal undertaking that collaborations are collected under.
type Project struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryID uuid.UUID `gorm:"type:uuid" json:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	// Name is unique across all projects.
	Name      string      `gorm:"uniqueIndex" json:"name"`
	Type      ProjectType `json:"type"`
	StartDate time.Time   `json:"startDate"`
	EndDate   *time.Time  `json:"endDate,omitempty"`
	// Goal is the target amount the project aims to raise, if one is set.
	Goal          *int64    `json:"goal,omitempty"`
	ResponsibleID uuid.UUID `gorm:"type:uuid" json:"responsibleId"`
	Responsible   *User     `gorm:"foreignKey:ResponsibleID" json:"responsible,omitempty"`
}

// Collaboration links a project with a company, optionally through a
// specific contact person and a responsible user.
type Collaboration struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid" json:"projectId"`
	Project   *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	CompanyID uuid.UUID `gorm:"type:uuid" json:"companyId"`
	Company   *Company  `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	// ContactID is set when the collaboration runs through a known person.
	ContactID *uuid.UUID `gorm:"type:uuid" json:"contactId,omitempty"`
	Contact   *Contact   `gorm:"foreignKey:ContactID" json:"contact,omitempty"`
	// ResponsibleID is the user owning this collaboration, if assigned.
	ResponsibleID *uuid.UUID            `gorm:"type:uuid" json:"responsibleId,omitempty"`
	Responsible   *User                 `gorm:"foreignKey:ResponsibleID" json:"responsible,omitempty"`
	Category      CollaborationCategory `json:"category"`
	Status        CollaborationStatus   `json:"status"`
	Comment       string                `json:"comment,omitempty"`
	// AchievedValue is the amount obtained so far, if any.
	AchievedValue *float64 `json:"achievedValue,omitempty"`
}
