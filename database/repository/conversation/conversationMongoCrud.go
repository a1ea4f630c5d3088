package conversationRepo

import (
	"fmt"
	"time"

	"vetchat/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetOrCreate fetches the conversation for sessionID, upserting an empty
// active one atomically so concurrent first messages cannot create duplicates.
func (r *MongoConversationRepo) GetOrCreate(sessionID string, context map[string]string) (*models.Conversation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"session_id": sessionID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"session_id": sessionID,
			"turns":      []models.Turn{},
			"context":    context,
			"active":     true,
			"created_at": now,
		},
		"$set": bson.M{"updated_at": now},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var conv models.Conversation
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&conv); err != nil {
		return nil, fmt.Errorf("failed to get or create conversation %s: %w", sessionID, err)
	}
	return &conv, nil
}

// AppendTurn appends a turn with a single $push update. The append is atomic
// per call, so two concurrent requests for the same session cannot lose turns.
func (r *MongoConversationRepo) AppendTurn(sessionID string, turn models.Turn) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"session_id": sessionID}
	update := bson.M{
		"$push": bson.M{"turns": turn},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to append turn to conversation %s: %w", sessionID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("conversation %s not found", sessionID)
	}
	return nil
}

// GetTurns returns the ordered turn sequence for a session.
func (r *MongoConversationRepo) GetTurns(sessionID string) ([]models.Turn, error) {
	conv, err := r.GetBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	return conv.Turns, nil
}

// GetBySessionID returns the full conversation document.
func (r *MongoConversationRepo) GetBySessionID(sessionID string) (*models.Conversation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var conv models.Conversation
	if err := r.coll.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&conv); err != nil {
		return nil, fmt.Errorf("failed to fetch conversation %s: %w", sessionID, err)
	}
	return &conv, nil
}

// GetActive lists active conversations, most recently updated first. The turn
// history is projected out to keep the listing light.
func (r *MongoConversationRepo) GetActive(limit int64) ([]models.Conversation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"turns": 0})

	cursor, err := r.coll.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve active conversations: %w", err)
	}
	defer cursor.Close(ctx)

	var convs []models.Conversation
	for cursor.Next(ctx) {
		var c models.Conversation
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode conversation: %w", err)
		}
		convs = append(convs, c)
	}
	return convs, nil
}

// Deactivate marks a conversation inactive.
func (r *MongoConversationRepo) Deactivate(sessionID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"session_id": sessionID}
	update := bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to deactivate conversation %s: %w", sessionID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("conversation %s not found", sessionID)
	}
	return nil
}
