package content

// Design is one selectable invitation theme. The palette and font pairing
// drive the public page; thumbnails are served by the frontend asset bundle.
type Design struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Colors      DesignColors `json:"colors"`
	Fonts       DesignFonts  `json:"fonts"`
	Spacing     string       `json:"spacing"`
	Thumbnail   string       `json:"thumbnail"`
	Preview     string       `json:"preview"`
}

type DesignColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
}

type DesignFonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Deity is an optional devotional motif shown on the opening section.
type Deity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

// Language describes one supported invitation language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
	RTL        bool   `json:"rtl"`
}

// DefaultDesignID is applied when a profile is created without an explicit
// theme choice.
const DefaultDesignID = "royal_classic"

var designs = []Design{
	{
		ID:          "royal_classic",
		Name:        "Royal Classic",
		Description: "Elegant maroon and gold with traditional motifs",
		Colors:      DesignColors{Primary: "#7B1E26", Secondary: "#D4AF37", Accent: "#F3E5AB", Background: "#FFF8F0"},
		Fonts:       DesignFonts{Heading: "Playfair Display", Body: "Lora"},
		Spacing:     "classic",
		Thumbnail:   "/assets/designs/royal_classic_thumb.webp",
		Preview:     "/assets/designs/royal_classic_preview.webp",
	},
	{
		ID:          "floral_soft",
		Name:        "Floral Soft",
		Description: "Pastel pink with delicate floral patterns",
		Colors:      DesignColors{Primary: "#D98BA3", Secondary: "#F8C8DC", Accent: "#A3C9A8", Background: "#FFF5F7"},
		Fonts:       DesignFonts{Heading: "Cormorant Garamond", Body: "Poppins"},
		Spacing:     "airy",
		Thumbnail:   "/assets/designs/floral_soft_thumb.webp",
		Preview:     "/assets/designs/floral_soft_preview.webp",
	},
	{
		ID:          "divine_temple",
		Name:        "Divine Temple",
		Description: "Warm ivory and gold with sacred temple aesthetics",
		Colors:      DesignColors{Primary: "#8A5A00", Secondary: "#C9A227", Accent: "#7A3E2E", Background: "#FFFDF5"},
		Fonts:       DesignFonts{Heading: "Marcellus", Body: "Mukta"},
		Spacing:     "classic",
		Thumbnail:   "/assets/designs/divine_temple_thumb.webp",
		Preview:     "/assets/designs/divine_temple_preview.webp",
	},
	{
		ID:          "modern_minimal",
		Name:        "Modern Minimal",
		Description: "Clean white and gray with contemporary design",
		Colors:      DesignColors{Primary: "#2E2E2E", Secondary: "#8C8C8C", Accent: "#B08D57", Background: "#FFFFFF"},
		Fonts:       DesignFonts{Heading: "Montserrat", Body: "Open Sans"},
		Spacing:     "compact",
		Thumbnail:   "/assets/designs/modern_minimal_thumb.webp",
		Preview:     "/assets/designs/modern_minimal_preview.webp",
	},
	{
		ID:          "cinematic_luxury",
		Name:        "Cinematic Luxury",
		Description: "Dark gradient with gold accents and premium feel",
		Colors:      DesignColors{Primary: "#E0B942", Secondary: "#6C5B7B", Accent: "#C06C84", Background: "#1A1A2E"},
		Fonts:       DesignFonts{Heading: "Cinzel", Body: "Raleway"},
		Spacing:     "airy",
		Thumbnail:   "/assets/designs/cinematic_luxury_thumb.webp",
		Preview:     "/assets/designs/cinematic_luxury_preview.webp",
	},
}

var deities = []Deity{
	{
		ID:          "none",
		Name:        "No Religious Theme",
		Description: "Secular invitation without deity imagery",
		Thumbnail:   "/assets/deities/none.svg",
	},
	{
		ID:          "ganesha",
		Name:        "Lord Ganesha",
		Description: "Remover of obstacles, auspicious beginning",
		Thumbnail:   "/assets/deities/ganesha_thumb.webp",
	},
	{
		ID:          "venkateswara_padmavati",
		Name:        "Lord Venkateswara & Padmavati",
		Description: "Divine couple symbolizing eternal love",
		Thumbnail:   "/assets/deities/venkateswara_padmavati_thumb.webp",
	},
	{
		ID:          "shiva_parvati",
		Name:        "Lord Shiva & Parvati",
		Description: "Perfect union of masculine and feminine energy",
		Thumbnail:   "/assets/deities/shiva_parvati_thumb.webp",
	},
	{
		ID:          "lakshmi_vishnu",
		Name:        "Lakshmi & Vishnu",
		Description: "Wealth, prosperity, and harmony",
		Thumbnail:   "/assets/deities/lakshmi_vishnu_thumb.webp",
	},
}

var languages = []Language{
	{Code: "english", Name: "English", NativeName: "English"},
	{Code: "telugu", Name: "Telugu", NativeName: "తెలుగు"},
	{Code: "hindi", Name: "Hindi", NativeName: "हिन्दी"},
	{Code: "tamil", Name: "Tamil", NativeName: "தமிழ்"},
	{Code: "kannada", Name: "Kannada", NativeName: "ಕನ್ನಡ"},
	{Code: "malayalam", Name: "Malayalam", NativeName: "മലയാളം"},
}

// Designs returns the design catalog in display order.
func Designs() []Design {
	out := make([]Design, len(designs))
	copy(out, designs)
	return out
}

// DesignByID looks up a design by its identifier.
func DesignByID(id string) (Design, bool) {
	for _, d := range designs {
		if d.ID == id {
			return d, true
		}
	}
	return Design{}, false
}

// Deities returns the deity catalog in display order.
func Deities() []Deity {
	out := make([]Deity, len(deities))
	copy(out, deities)
	return out
}

// DeityByID looks up a deity by its identifier.
func DeityByID(id string) (Deity, bool) {
	for _, d := range deities {
		if d.ID == id {
			return d, true
		}
	}
	return Deity{}, false
}

// Languages returns the supported languages in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// LanguageByCode looks up a language by its platform code.
func LanguageByCode(code string) (Language, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}
