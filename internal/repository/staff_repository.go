package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/waitlist-service/internal/domain/model"
)

// StaffRepository implements StaffRepositoryInterface using MongoDB.
type StaffRepository struct {
	collection *mongo.Collection
}

// NewStaffRepository creates a new staff repository.
func NewStaffRepository(db *MongoDB) *StaffRepository {
	return &StaffRepository{
		collection: db.Staff,
	}
}

// Create inserts a new staff account. Emails are stored lower-cased.
func (r *StaffRepository) Create(ctx context.Context, staff *model.Staff) error {
	now := time.Now()
	staff.CreatedAt = now
	staff.UpdatedAt = now
	staff.Email = strings.ToLower(staff.Email)
	if staff.ID.IsZero() {
		staff.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, staff)
	return err
}

// FindByEmail finds a staff account by email address.
func (r *StaffRepository) FindByEmail(ctx context.Context, email string) (*model.Staff, error) {
	var staff model.Staff
	err := r.collection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&staff)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &staff, nil
}
