package adoption

import "strconv"

// Pet es una mascota publicada para adopción (catálogo estático).
type Pet struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Type         string `json:"type" yaml:"type"` // Dog | Cat
	Breed        string `json:"breed" yaml:"breed"`
	AgeYears     int    `json:"age_years" yaml:"age_years"`
	Gender       string `json:"gender" yaml:"gender"`
	Size         string `json:"size" yaml:"size"` // Small | Medium | Large
	Location     string `json:"location" yaml:"location"`
	Image        string `json:"image" yaml:"image"`
	Description  string `json:"description" yaml:"description"`
	Vaccinated   bool   `json:"vaccinated" yaml:"vaccinated"`
	Neutered     bool   `json:"neutered" yaml:"neutered"`
	GoodWithKids bool   `json:"good_with_kids" yaml:"good_with_kids"`
	GoodWithPets bool   `json:"good_with_pets" yaml:"good_with_pets"`
}

// AgeLabel devuelve "1 year" / "N years".
func (p Pet) AgeLabel() string {
	if p.AgeYears == 1 {
		return "1 year"
	}
	return strconv.Itoa(p.AgeYears) + " years"
}
