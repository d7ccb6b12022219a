package models

// Employee is a single person row from the information database.
//
// The upper-case JSON field names mirror the column aliases of the HRIS
// export this API fronts; consumers of the original reports rely on them.
// Optional fields are omitted when a lookup does not select them (e.g. the
// by-NPK lookup carries no org unit columns).
type Employee struct {
	// NPK is the employee identifier in the HRIS row schema.
	NPK int64 `json:"NPK"`

	// Name is the employee's display name.
	Name string `json:"NAME"`

	// Username is the employee's directory account name.
	Username string `json:"USERNAME,omitempty"`

	// Email is the employee's corporate e-mail address.
	Email string `json:"EMAIL"`

	// Role is the free-text job title ("jabatan") used for head extraction.
	Role string `json:"ROLE"`

	// Directorate, Division and Department are the org unit names attached
	// to the row in the full directory listing.
	Directorate string `json:"Directorat,omitempty"`
	Division    string `json:"Division,omitempty"`
	Department  string `json:"Dept,omitempty"`
}

// TableName returns the name of the database table
// associated with the Employee model.
func (e Employee) TableName() string {
	return "hris_trad"
}
