package domain

import "time"

// ProjectCategory is the scientific category a project competes in.
type ProjectCategory string

const (
	CategoryExactSciences   ProjectCategory = "exact_sciences"
	CategoryBiology         ProjectCategory = "biological_sciences"
	CategoryHumanities      ProjectCategory = "humanities"
	CategorySocialSciences  ProjectCategory = "social_sciences"
	CategoryEngineering     ProjectCategory = "engineering"
	CategoryLinguisticsArts ProjectCategory = "linguistics_arts"
)

// ProjectStatus is the lifecycle state of a submission.
type ProjectStatus string

const (
	ProjectDraft     ProjectStatus = "draft"
	ProjectSubmitted ProjectStatus = "submitted"
	ProjectSelected  ProjectStatus = "selected"
	ProjectFinalist  ProjectStatus = "finalist"
	ProjectEvaluated ProjectStatus = "evaluated"
	ProjectAwarded   ProjectStatus = "awarded"
	ProjectRejected  ProjectStatus = "rejected"
)

// PaymentStatus tracks the registration fee for a project.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
	PaymentExempt  PaymentStatus = "exempt"
)

// ProjectMember references a user participating in a project.
type ProjectMember struct {
	UserID string `json:"user_id" bson:"user_id"`
	Name   string `json:"name" bson:"name"`
	Role   Role   `json:"role" bson:"role"`
}

// Project is a science-fair submission.
type Project struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Abstract      string          `json:"abstract,omitempty"`
	Category      ProjectCategory `json:"category"`
	Status        ProjectStatus   `json:"status"`
	Members       []ProjectMember `json:"members"`
	FinalScore    float64         `json:"final_score,omitempty"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	FeeAmount     float64         `json:"fee_amount"`
	IsExempt      bool            `json:"is_exempt"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// HasMember reports whether the user participates in the project.
func (p *Project) HasMember(userID string) bool {
	for _, m := range p.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
