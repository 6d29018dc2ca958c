package domain

// DefaultServicePrice is applied when a service is created without a price.
const DefaultServicePrice = "Contact for pricing"

// Service is an offering listed in the public catalog.
type Service struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Icon        string   `json:"icon" yaml:"icon"`
	Features    []string `json:"features" yaml:"features"`
	Price       string   `json:"price" yaml:"price"`
}

// Clone returns a copy that does not share the features slice.
func (s Service) Clone() Service {
	out := s
	out.Features = append([]string{}, s.Features...)
	return out
}
