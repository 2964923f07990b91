package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/febic/fair-platform/internal/core/domain"
)

const usersCollection = "users"

// UserRepository is the MongoDB-backed user directory.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type mongoRoleAssignment struct {
	Role       string     `bson:"role"`
	Status     string     `bson:"status"`
	ApprovedBy string     `bson:"approved_by,omitempty"`
	ApprovedAt *time.Time `bson:"approved_at,omitempty"`
	CreatedAt  time.Time  `bson:"created_at"`
}

type mongoUser struct {
	ID           primitive.ObjectID    `bson:"_id,omitempty"`
	Email        string                `bson:"email"`
	CPF          string                `bson:"cpf,omitempty"`
	Name         string                `bson:"name"`
	Phone        string                `bson:"phone,omitempty"`
	PasswordHash string                `bson:"password_hash"`
	IsActive     bool                  `bson:"is_active"`
	Profile      domain.Profile        `bson:"profile"`
	Roles        []mongoRoleAssignment `bson:"roles"`
	ActiveRole   string                `bson:"active_role,omitempty"`
	CreatedAt    int64                 `bson:"created_at"`
	UpdatedAt    int64                 `bson:"updated_at"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	_, err := r.coll.InsertOne(ctx, toMongoUser(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// fetch back to get ID
	return r.FindByEmail(ctx, user.Email)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"cpf": cpf})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	doc := toMongoUser(user)
	doc.UpdatedAt = time.Now().UTC().Unix()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return fromMongoUser(mu), nil
}

func toMongoUser(u *domain.User) mongoUser {
	roles := make([]mongoRoleAssignment, 0, len(u.Roles))
	for _, a := range u.Roles {
		roles = append(roles, mongoRoleAssignment{
			Role:       string(a.Role),
			Status:     string(a.Status),
			ApprovedBy: a.ApprovedBy,
			ApprovedAt: a.ApprovedAt,
			CreatedAt:  a.CreatedAt,
		})
	}
	return mongoUser{
		Email:        u.Email,
		CPF:          u.CPF,
		Name:         u.Name,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		Profile:      u.Profile,
		Roles:        roles,
		ActiveRole:   string(u.ActiveRole),
		CreatedAt:    u.CreatedAt.Unix(),
		UpdatedAt:    u.UpdatedAt.Unix(),
	}
}

func fromMongoUser(mu mongoUser) *domain.User {
	roles := make([]domain.RoleAssignment, 0, len(mu.Roles))
	for _, a := range mu.Roles {
		roles = append(roles, domain.RoleAssignment{
			Role:       domain.Role(a.Role),
			Status:     domain.RoleStatus(a.Status),
			ApprovedBy: a.ApprovedBy,
			ApprovedAt: a.ApprovedAt,
			CreatedAt:  a.CreatedAt,
		})
	}
	return &domain.User{
		ID:           mu.ID.Hex(),
		Email:        mu.Email,
		CPF:          mu.CPF,
		Name:         mu.Name,
		Phone:        mu.Phone,
		PasswordHash: mu.PasswordHash,
		IsActive:     mu.IsActive,
		Profile:      mu.Profile,
		Roles:        roles,
		ActiveRole:   domain.Role(mu.ActiveRole),
		CreatedAt:    unixToTime(mu.CreatedAt),
		UpdatedAt:    unixToTime(mu.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
