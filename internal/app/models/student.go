package models

// Student represents a registered student account. RollNumber is the unique
// caller-supplied identifier; HashedPassword holds the bcrypt credential hash
// and is never serialized into API responses.
type Student struct {
	RollNumber     string        `json:"rollNumber"`
	MailID         string        `json:"mailId"`
	HashedPassword string        `json:"-"`
	StudentName    string        `json:"studentName"`
	StudentClass   string        `json:"studentClass,omitempty"`
	Department     string        `json:"department,omitempty"`
	YearOfPass     *int          `json:"yearOfPass,omitempty"`
	Percentage     *float64      `json:"percentage,omitempty"`
	Certificates   []Certificate `json:"certificates"`
}
