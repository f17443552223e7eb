package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vishalpatil-45/Adventour/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	subscriptionsCollection = "newsletter_subscriptions"
	contactCollection       = "contact_messages"
)

// InboxRepository keeps what visitors send us: newsletter sign-ups and
// contact form messages.
type InboxRepository interface {
	Subscribe(ctx context.Context, sub domain.Subscription) error
	SaveContactMessage(ctx context.Context, msg *domain.ContactMessage) error
}

type inboxRepository struct {
	subscriptions *mongo.Collection
	messages      *mongo.Collection
}

// NewInboxRepository creates a MongoDB backed InboxRepository
func NewInboxRepository(db *mongo.Database) InboxRepository {
	return &inboxRepository{
		subscriptions: db.Collection(subscriptionsCollection),
		messages:      db.Collection(contactCollection),
	}
}

// Subscribe upserts on the email so subscribing twice keeps the first date
func (r *inboxRepository) Subscribe(ctx context.Context, sub domain.Subscription) error {
	_, err := r.subscriptions.UpdateOne(ctx,
		bson.M{"_id": sub.Email},
		bson.M{"$setOnInsert": bson.M{"subscribed_at": sub.SubscribedAt}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save subscription: %w", err)
	}
	return nil
}

func (r *inboxRepository) SaveContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if _, err := r.messages.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("save contact message: %w", err)
	}
	return nil
}
