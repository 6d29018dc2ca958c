package domain

// TeamMember is a read-only roster entry.
type TeamMember struct {
	ID         int      `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Role       string   `json:"role" yaml:"role"`
	Bio        string   `json:"bio" yaml:"bio"`
	Initials   string   `json:"initials" yaml:"initials"`
	Expertise  []string `json:"expertise" yaml:"expertise"`
	Education  string   `json:"education" yaml:"education"`
	Experience string   `json:"experience" yaml:"experience"`
	LinkedIn   string   `json:"linkedin" yaml:"linkedin"`
}
