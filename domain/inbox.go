package domain

import "time"

// Subscription is a newsletter sign-up
type Subscription struct {
	Email        string    `bson:"_id" json:"email"`
	SubscribedAt time.Time `bson:"subscribed_at" json:"subscribedAt"`
}

// ContactMessage is a submission of the contact form
type ContactMessage struct {
	ID         string    `bson:"_id,omitempty" json:"id,omitempty"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Phone      string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject    string    `bson:"subject" json:"subject"`
	Message    string    `bson:"message" json:"message"`
	Newsletter bool      `bson:"newsletter" json:"newsletter"`
	ReceivedAt time.Time `bson:"received_at" json:"receivedAt"`
}
