package models

// ===============================
// Gallery Categories
// ===============================

const (
	CategoryCut    = "cut"
	CategoryBeard  = "beard"
	CategoryDesign = "design"
	CategoryOther  = "other"
)

func IsValidCategory(c string) bool {
	switch c {
	case CategoryCut, CategoryBeard, CategoryDesign, CategoryOther:
		return true
	}
	return false
}

type GalleryPhoto struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StaffName   string `json:"staff_name"`
	Date        string `json:"date"`

	// URI opaca: pode ser um arquivo local servido em /media ou
	// qualquer referência externa.
	Image string `json:"image"`

	Category string `json:"category"`
	Likes    int    `json:"likes"`
}

type Gallery struct {
	Photos []GalleryPhoto `json:"photos"`
}
