package catalog

// Department is an organizing department; Key doubles as the local part of
// its contact email.
type Department struct {
	Key  string
	Name string
}

var departments = []Department{
	{Key: "BAIT", Name: "Business Analytics and Information Technology"},
	{Key: "CS", Name: "Computer Science"},
	{Key: "EE", Name: "Electrical Engineering"},
	{Key: "ITI", Name: "Information Technology and Informatics"},
	{Key: "MATH", Name: "Mathematics"},
}

func LookupDepartment(name string) (Department, bool) {
	return lookup(departments, func(d Department) string { return d.Key }, name)
}

func Departments() []Department {
	return append([]Department(nil), departments...)
}
