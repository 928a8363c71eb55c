package catalog

// Category is the filter tag attached to every cat.
type Category string

const (
	CategoryAll    Category = "all"
	CategoryMale   Category = "male"
	CategoryFemale Category = "female"
)

// Gender of the animal.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Cat is one catalog record. Records are supplied by a source (bundled seed
// or the remote API) and treated as read-only until the next full reload.
type Cat struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Breed     string   `json:"breed"`
	Category  Category `json:"category"`
	AgeMonths int      `json:"age_months"`
	Gender    Gender   `json:"gender"`
	Price     int      `json:"price"` // rubles, whole units
	Color     string   `json:"color"`

	Vaccinated bool `json:"vaccinated"`
	Pedigree   bool `json:"pedigree"`
	Available  bool `json:"available"`

	Description string `json:"description"`
	Image       string `json:"image"`
}
