package model

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"evtsched/internal/catalog"
)

// EmailDomain is the only mail domain contacts may use.
const EmailDomain = "rutgers.edu"

// Contact is the department organizing an event and the address it can be
// reached at. A nil Department means the department name did not resolve.
type Contact struct {
	Department *catalog.Department
	Email      string
}

// NewContact resolves departmentName against the catalog. The returned
// contact is invalid when the name is unknown.
func NewContact(departmentName, email string) Contact {
	c := Contact{Email: email}
	if d, ok := catalog.LookupDepartment(departmentName); ok {
		c.Department = &d
	}
	return c
}

// IsValid requires a known department whose key is exactly the local part
// of the email at EmailDomain. Both sides are lower-cased before comparing,
// so only simple case differences are tolerated.
func (c Contact) IsValid() bool {
	if c.Department == nil {
		return false
	}
	lower := cases.Lower(language.Und)
	return lower.String(c.Email) == lower.String(c.Department.Key+"@"+EmailDomain)
}

// DepartmentName is the display name of the department, or "" when unset.
func (c Contact) DepartmentName() string {
	if c.Department == nil {
		return ""
	}
	return c.Department.Name
}
