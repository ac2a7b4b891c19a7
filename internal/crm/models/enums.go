package models

// UserAuthorization is the access level assigned to a user.
type UserAuthorization string

const (
	AuthorizationUser          UserAuthorization = "USER"
	AuthorizationAdministrator UserAuthorization = "ADMINISTRATOR"
)

// Valid reports whether the value is a known authorization level.
func (a UserAuthorization) Valid() bool {
	switch a {
	case AuthorizationUser, AuthorizationAdministrator:
		return true
	}
	return false
}

// CompanyCategorization ranks a company by how promising it is.
type CompanyCategorization string

const (
	CategorizationA CompanyCategorization = "A"
	CategorizationB CompanyCategorization = "B"
	CategorizationC CompanyCategorization = "C"
)

func (c CompanyCategorization) Valid() bool {
	switch c {
	case CategorizationA, CategorizationB, CategorizationC:
		return true
	}
	return false
}

// Month names a calendar month, used for a company's budget planning month.
type Month string

const (
	January   Month = "JANUARY"
	February  Month = "FEBRUARY"
	March     Month = "MARCH"
	April     Month = "APRIL"
	May       Month = "MAY"
	June      Month = "JUNE"
	July      Month = "JULY"
	August    Month = "AUGUST"
	September Month = "SEPTEMBER"
	October   Month = "OCTOBER"
	November  Month = "NOVEMBER"
	December  Month = "DECEMBER"
)

func (m Month) Valid() bool {
	switch m {
	case January, February, March, April, May, June,
		July, August, September, October, November, December:
		return true
	}
	return false
}

// ProjectType distinguishes internal projects from ones run for externals.
type ProjectType string

const (
	ProjectInternal ProjectType = "INTERNAL"
	ProjectExternal ProjectType = "EXTERNAL"
)

func (t ProjectType) Valid() bool {
	switch t {
	case ProjectInternal, ProjectExternal:
		return true
	}
	return false
}

// CollaborationCategory describes what kind of support a collaboration is about.
type CollaborationCategory string

const (
	CategoryFinancial CollaborationCategory = "FINANCIAL"
	CategoryMaterial  CollaborationCategory = "MATERIAL"
	CategoryAcademic  CollaborationCategory = "ACADEMIC"
)

func (c CollaborationCategory) Valid() bool {
	switch c {
	case CategoryFinancial, CategoryMaterial, CategoryAcademic:
		return true
	}
	return false
}

// CollaborationStatus tracks how far a collaboration has progressed.
// It is a plain enumerated field: any value transition is permitted.
type CollaborationStatus string

const (
	StatusTodo         CollaborationStatus = "TODO"
	StatusContacted    CollaborationStatus = "CONTACTED"
	StatusPing         CollaborationStatus = "PING"
	StatusLetter       CollaborationStatus = "LETTER"
	StatusMeeting      CollaborationStatus = "MEETING"
	StatusSuccessful   CollaborationStatus = "SUCCESSFUL"
	StatusUnsuccessful CollaborationStatus = "UNSUCCESSFUL"
)

func (s CollaborationStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusContacted, StatusPing, StatusLetter,
		StatusMeeting, StatusSuccessful, StatusUnsuccessful:
		return true
	}
	return false
}
