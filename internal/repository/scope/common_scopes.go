package scope

import "gorm.io/gorm"

func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

func OrderByUpdatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("updated_at DESC")
}

func OrderByPositionAsc(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// WithSoftDelete includes soft deleted rows. Deletes issued through it are hard deletes.
func WithSoftDelete(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}
