package models

type User struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	MobileNumber string  `json:"mobile_number" db:"mobile_number"`
	Address      *string `json:"address" db:"address"`
	PostCount    int64   `json:"post_count" db:"post_count"`
}

// UserSummary is the user part of the per-user posts listing.
type UserSummary struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	MobileNumber string `json:"mobile_number"`
	PostCount    int64  `json:"post_count"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:           u.ID,
		Name:         u.Name,
		MobileNumber: u.MobileNumber,
		PostCount:    u.PostCount,
	}
}

type Post struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	UserID      int64  `json:"user_id" db:"user_id"`
	Images      Images `json:"images" db:"images"`
}

type UserPosts struct {
	User  UserSummary `json:"user"`
	Posts []Post      `json:"posts"`
}
