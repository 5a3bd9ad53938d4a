package models

// UserProfile mirrors what the identity provider reports about a user.
// The document id is the provider's uid and the whole document is
// overwritten on every sign-in.
type UserProfile struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	DisplayName string `bson:"displayName" json:"displayName"`
	Email       string `bson:"email" json:"email"`
	PhotoURL    string `bson:"photoURL" json:"photoURL"`
}
