package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	Password   string             `bson:"password"`
	City       string             `bson:"city"`
	Skills     []string           `bson:"skills"`
	Experience float64            `bson:"experience"`
	Portfolio  string             `bson:"portfolio"`
	ProfilePic string             `bson:"profilePic"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

// Profile is the outbound shape of a user record: the mongo _id is exposed
// as a uid hex string and there is no password member, so a hash can never
// end up in a response.
type Profile struct {
	UID        string    `json:"uid"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	City       string    `json:"city"`
	Skills     []string  `json:"skills"`
	Experience float64   `json:"experience"`
	Portfolio  string    `json:"portfolio"`
	ProfilePic string    `json:"profilePic"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (u *User) Profile() Profile {
	return Profile{
		UID:        u.ID.Hex(),
		Name:       u.Name,
		Email:      u.Email,
		City:       u.City,
		Skills:     u.Skills,
		Experience: u.Experience,
		Portfolio:  u.Portfolio,
		ProfilePic: u.ProfilePic,
		CreatedAt:  u.CreatedAt,
	}
}

// UpdateFields carries a partial profile update. Nil fields are left
// untouched in the stored record.
type UpdateFields struct {
	Name       *string
	City       *string
	Skills     []string
	Experience *float64
	Portfolio  *string
	ProfilePic *string
}
