package models

import "time"

// Note categories form a closed set; CategoryAll is the filter sentinel and is
// never stored on a note.
const (
	CategoryPribadi = "Pribadi"
	CategoryKerja   = "Kerja"
	CategoryKuliah  = "Kuliah"
	CategoryIde     = "Ide"
	CategoryLainnya = "Lainnya"

	CategoryAll = "Semua"
)

var Categories = []string{CategoryPribadi, CategoryKerja, CategoryKuliah, CategoryIde, CategoryLainnya}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type Note struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Category   string    `gorm:"size:32;not null" json:"category"`
	Color      string    `gorm:"size:7;not null" json:"color"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Image      string    `gorm:"type:text" json:"image,omitempty"` // base64, optional
	IsFavorite bool      `gorm:"not null;default:false" json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
}
