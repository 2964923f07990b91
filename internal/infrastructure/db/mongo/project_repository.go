package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/febic/fair-platform/internal/core/domain"
	"github.com/febic/fair-platform/internal/core/ports"
)

const projectsCollection = "projects"

// ProjectRepository is the MongoDB-backed project store.
type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(projectsCollection)}
}

// mongoProject shadows domain.Project so the ObjectID primary key stays an
// implementation detail of this package.
type mongoProject struct {
	ID primitive.ObjectID `bson:"_id,omitempty"`

	Title         string                 `bson:"title"`
	Abstract      string                 `bson:"abstract,omitempty"`
	Category      domain.ProjectCategory `bson:"category"`
	Status        domain.ProjectStatus   `bson:"status"`
	Members       []domain.ProjectMember `bson:"members"`
	FinalScore    float64                `bson:"final_score,omitempty"`
	PaymentStatus domain.PaymentStatus   `bson:"payment_status"`
	FeeAmount     float64                `bson:"fee_amount"`
	IsExempt      bool                   `bson:"is_exempt"`
	CreatedAt     time.Time              `bson:"created_at"`
	UpdatedAt     time.Time              `bson:"updated_at"`
}

func (mp mongoProject) toDomain() domain.Project {
	return domain.Project{
		ID:            mp.ID.Hex(),
		Title:         mp.Title,
		Abstract:      mp.Abstract,
		Category:      mp.Category,
		Status:        mp.Status,
		Members:       mp.Members,
		FinalScore:    mp.FinalScore,
		PaymentStatus: mp.PaymentStatus,
		FeeAmount:     mp.FeeAmount,
		IsExempt:      mp.IsExempt,
		CreatedAt:     mp.CreatedAt,
		UpdatedAt:     mp.UpdatedAt,
	}
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	var mp mongoProject
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	p := mp.toDomain()
	return &p, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	return r.find(ctx, bson.M{})
}

func (r *ProjectRepository) ListByMember(ctx context.Context, userID string) ([]domain.Project, error) {
	return r.find(ctx, bson.M{"members.user_id": userID})
}

func (r *ProjectRepository) find(ctx context.Context, filter bson.M) ([]domain.Project, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	var rows []mongoProject
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, row.toDomain())
	}
	return projects, nil
}

func (r *ProjectRepository) CountByStatus(ctx context.Context) (map[domain.ProjectStatus]int64, error) {
	rows, err := r.aggregateCounts(ctx, "$status")
	if err != nil {
		return nil, err
	}
	out := make(map[domain.ProjectStatus]int64, len(rows))
	for k, v := range rows {
		out[domain.ProjectStatus(k)] = v
	}
	return out, nil
}

func (r *ProjectRepository) CountByCategory(ctx context.Context) (map[domain.ProjectCategory]int64, error) {
	rows, err := r.aggregateCounts(ctx, "$category")
	if err != nil {
		return nil, err
	}
	out := make(map[domain.ProjectCategory]int64, len(rows))
	for k, v := range rows {
		out[domain.ProjectCategory(k)] = v
	}
	return out, nil
}

func (r *ProjectRepository) aggregateCounts(ctx context.Context, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate projects: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode aggregation: %w", err)
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.ID] = row.Count
	}
	return out, nil
}

func (r *ProjectRepository) PaymentTotals(ctx context.Context) (ports.PaymentTotals, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$payment_status"},
			{Key: "amount", Value: bson.D{{Key: "$sum", Value: "$fee_amount"}}},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return ports.PaymentTotals{}, fmt.Errorf("aggregate payments: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		ID     string  `bson:"_id"`
		Amount float64 `bson:"amount"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return ports.PaymentTotals{}, fmt.Errorf("decode payment totals: %w", err)
	}

	var totals ports.PaymentTotals
	for _, row := range rows {
		switch domain.PaymentStatus(row.ID) {
		case domain.PaymentPaid:
			totals.Revenue += row.Amount
		case domain.PaymentPending:
			totals.Pending += row.Amount
		case domain.PaymentOverdue:
			totals.Overdue += row.Amount
		case domain.PaymentExempt:
			totals.Exemptions += row.Amount
		}
	}
	return totals, nil
}
