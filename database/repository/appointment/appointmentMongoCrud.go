package appointmentRepo

import (
	"fmt"
	"time"

	"vetchat/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Insert persists a new appointment document.
func (r *MongoAppointmentRepo) Insert(appt *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, appt)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its unique ID.
func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

// FindBySession lists appointments for a session, newest first.
func (r *MongoAppointmentRepo) FindBySession(sessionID string) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments for session %s: %w", sessionID, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appts = append(appts, a)
	}
	return appts, nil
}

// UpdateStatus transitions an appointment to the given status.
func (r *MongoAppointmentRepo) UpdateStatus(id, status string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appt models.Appointment
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("appointment with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to update appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

// GetAll returns a page of appointments (newest first) plus the total count.
func (r *MongoAppointmentRepo) GetAll(page, limit int64) ([]models.Appointment, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count appointments: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, 0, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appts = append(appts, a)
	}
	return appts, total, nil
}

// Stats aggregates appointment counts per status plus a 30-day window.
func (r *MongoAppointmentRepo) Stats() (*models.AppointmentStats, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	stats := &models.AppointmentStats{}
	counts := []struct {
		filter bson.M
		dest   *int64
	}{
		{bson.M{}, &stats.Total},
		{bson.M{"status": models.StatusPending}, &stats.Pending},
		{bson.M{"status": models.StatusConfirmed}, &stats.Confirmed},
		{bson.M{"status": models.StatusCompleted}, &stats.Completed},
		{bson.M{"status": models.StatusCancelled}, &stats.Cancelled},
		{bson.M{"created_at": bson.M{"$gte": time.Now().AddDate(0, 0, -30)}}, &stats.Recent},
	}
	for _, c := range counts {
		n, err := r.coll.CountDocuments(ctx, c.filter)
		if err != nil {
			return nil, fmt.Errorf("failed to count appointments: %w", err)
		}
		*c.dest = n
	}
	return stats, nil
}
