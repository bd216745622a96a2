package model

// Go models for the CV document. JSON tags match the wire format used by the
// persisted record and the portable backup file.

type Personal struct {
	FullName     string `json:"fullName"`
	JobTitle     string `json:"jobTitle"`
	Age          string `json:"age"`
	Location     string `json:"location"`
	ProfileImage string `json:"profileImage"`
}

type Contact struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
	Twitter  string `json:"twitter"`
}

type Experience struct {
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Achievements []string `json:"achievements"`
}

type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa"`
}

type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	DemoURL      string   `json:"demoUrl"`
	CodeURL      string   `json:"codeUrl"`
}

type Certification struct {
	Name         string  `json:"name"`
	Organization string  `json:"organization"`
	Year         string  `json:"year"`
	File         *string `json:"file"`
}

type Award struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Year         string `json:"year"`
}

type Design struct {
	Theme string `json:"theme"`
	Font  string `json:"font"`
}

// Document is the single CV record the whole application edits, persists and
// renders. Repeatable sections keep insertion order; there is no implicit
// sorting anywhere.
type Document struct {
	Personal        Personal        `json:"personal"`
	Contact         Contact         `json:"contact"`
	Summary         string          `json:"summary"`
	Experience      []Experience    `json:"experience"`
	Education       []Education     `json:"education"`
	TechnicalSkills []Skill         `json:"technicalSkills"`
	SoftSkills      []Skill         `json:"softSkills"`
	Projects        []Project       `json:"projects"`
	Certifications  []Certification `json:"certifications"`
	Awards          []Award         `json:"awards"`
	Design          Design          `json:"design"`
}

const (
	DefaultTheme = "default"
	DefaultFont  = "'Poppins', sans-serif"
)

// Clone returns a deep copy. Slices are copied element by element so mutating
// the copy never touches the original.
func (d *Document) Clone() *Document {
	c := *d

	c.Experience = make([]Experience, len(d.Experience))
	for i, e := range d.Experience {
		e.Achievements = append([]string(nil), e.Achievements...)
		c.Experience[i] = e
	}
	c.Education = append([]Education(nil), d.Education...)
	c.TechnicalSkills = append([]Skill(nil), d.TechnicalSkills...)
	c.SoftSkills = append([]Skill(nil), d.SoftSkills...)

	c.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		p.Technologies = append([]string(nil), p.Technologies...)
		c.Projects[i] = p
	}

	c.Certifications = make([]Certification, len(d.Certifications))
	for i, cert := range d.Certifications {
		if cert.File != nil {
			f := *cert.File
			cert.File = &f
		}
		c.Certifications[i] = cert
	}
	c.Awards = append([]Award(nil), d.Awards...)

	return &c
}

// Normalize defaults fields that may be absent from an older persisted record.
// The store trusts the record verbatim, so every consumer goes through here
// after a load.
func (d *Document) Normalize() {
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	for i := range d.Experience {
		if d.Experience[i].Achievements == nil {
			d.Experience[i].Achievements = []string{}
		}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.TechnicalSkills == nil {
		d.TechnicalSkills = []Skill{}
	}
	if d.SoftSkills == nil {
		d.SoftSkills = []Skill{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	for i := range d.Projects {
		if d.Projects[i].Technologies == nil {
			d.Projects[i].Technologies = []string{}
		}
	}
	if d.Certifications == nil {
		d.Certifications = []Certification{}
	}
	if d.Awards == nil {
		d.Awards = []Award{}
	}
	if d.Design.Theme == "" {
		d.Design.Theme = DefaultTheme
	}
	if d.Design.Font == "" {
		d.Design.Font = DefaultFont
	}
}
