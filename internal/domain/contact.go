package domain

// ContactInfo is the static company contact record.
type ContactInfo struct {
	Company       string            `json:"company" yaml:"company"`
	Email         string            `json:"email" yaml:"email"`
	Phone         string            `json:"phone" yaml:"phone"`
	Location      string            `json:"location" yaml:"location"`
	Address       Address           `json:"address" yaml:"address"`
	SocialMedia   SocialMedia       `json:"socialMedia" yaml:"socialMedia"`
	BusinessHours map[string]string `json:"businessHours" yaml:"businessHours"`
	ResponseTime  string            `json:"responseTime" yaml:"responseTime"`
}

// Address is a postal address.
type Address struct {
	Street  string `json:"street" yaml:"street"`
	City    string `json:"city" yaml:"city"`
	State   string `json:"state" yaml:"state"`
	ZipCode string `json:"zipCode" yaml:"zipCode"`
	Country string `json:"country" yaml:"country"`
}

// SocialMedia lists public profile links.
type SocialMedia struct {
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
	Twitter  string `json:"twitter" yaml:"twitter"`
	GitHub   string `json:"github" yaml:"github"`
}
