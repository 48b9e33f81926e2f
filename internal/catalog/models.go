package catalog

import "time"

// ImageSet groups a record's image references the way the storefront stores
// them: one main image plus a gallery.
type ImageSet struct {
	Main    []string `json:"main"`
	Gallery []string `json:"gallery,omitempty"`
}

// IdentifiedProduct is one mention attached to a record by analysis.
type IdentifiedProduct struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Role  string `json:"role"`
}

// Analysis is the metadata block a record gains once an annotation response
// has been matched to it.
type Analysis struct {
	Analyzed           bool                `json:"analyzed"`
	ProductsIdentified int                 `json:"products_identified"`
	Products           []IdentifiedProduct `json:"identified_products"`
	AnalyzedAt         time.Time           `json:"analysis_date"`
}

// Record is one product entry in the catalog.
type Record struct {
	ID           int64     `json:"id"`
	Handle       string    `json:"handle"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Images       ImageSet  `json:"images"`
	Brands       []string  `json:"brands"`
	PrimaryBrand string    `json:"primary_brand"`
	Analysis     *Analysis `json:"analysis,omitempty"`
}

// MainImage returns the record's primary image reference, if any.
func (r Record) MainImage() (string, bool) {
	if len(r.Images.Main) == 0 {
		return "", false
	}
	return r.Images.Main[0], true
}
