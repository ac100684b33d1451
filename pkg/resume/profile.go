package resume

// Resume is the structured profile record the assistant answers from.
type Resume struct {
	Profile           Profile         `json:"profile"`
	Skills            Skills          `json:"skills"`
	WorkHistory       []Employment    `json:"work_history"`
	Projects          []Project       `json:"projects"`
	Education         []EducationItem `json:"education"`
	Certifications    []string        `json:"certifications"`
	AwardsRecognition []string        `json:"awards_recognition"`
	MostProudOf       []string        `json:"most_proud_of"`
}

type Profile struct {
	FullName      string    `json:"full_name"`
	CurrentTitles []string  `json:"current_titles"`
	Summary       string    `json:"summary"`
	Location      *Location `json:"location,omitempty"`
	Contact       *Contact  `json:"contact,omitempty"`
}

type Location struct {
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code,omitempty"`
	Area       string `json:"area,omitempty"`
}

type Contact struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Links *Links `json:"links,omitempty"`
}

type Links struct {
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

type Skills struct {
	Primary        []string `json:"primary"`
	Secondary      []string `json:"secondary"`
	Domains        []string `json:"domains"`
	ToolsPlatforms []string `json:"tools_platforms"`
}

// Employment is either a flat entry (Role, dates, highlights) or a
// company with several Roles.
type Employment struct {
	Company        string   `json:"company"`
	Role           string   `json:"role,omitempty"`
	Location       string   `json:"location,omitempty"`
	StartDate      string   `json:"start_date,omitempty"`
	EndDate        string   `json:"end_date,omitempty"` // empty means present
	EmploymentType string   `json:"employment_type,omitempty"`
	Highlights     []string `json:"highlights,omitempty"`
	TechStack      []string `json:"tech_stack,omitempty"`
	Roles          []Role   `json:"roles,omitempty"`
}

type Role struct {
	Title            string   `json:"title"`
	Location         string   `json:"location"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	Responsibilities []string `json:"responsibilities"`
}

type Project struct {
	Name          string   `json:"name"`
	Organization  string   `json:"organization"`
	Domain        string   `json:"domain"`
	Type          string   `json:"type"`
	TechStack     []string `json:"tech_stack"`
	Features      []string `json:"features"`
	Contributions []string `json:"contributions,omitempty"`
	Location      string   `json:"location"`
	Period        string   `json:"period"`
}

type EducationItem struct {
	Degree      string `json:"degree"`
	Discipline  string `json:"discipline"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	StartYear   int    `json:"start_year"`
	EndYear     int    `json:"end_year"`
}
