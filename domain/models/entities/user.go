package entities

import "time"

// User is a reseller identity. Store slugs are resolved against FullName with
// a case-insensitive pattern match, so FullName is not a unique key and slug
// lookups are best-effort.
type User struct {
	UserId       uint64     `bson:"userId"`
	FullName     string     `bson:"fullName"`
	Description  string     `bson:"description"`
	ProfileImage string     `bson:"profileImage"`
	CreatedAt    time.Time  `bson:"createdAt"`
	DeletedAt    *time.Time `bson:"deletedAt"`
}
