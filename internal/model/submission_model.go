package model

// Submission is a single waitlist entry. Rows are append-only, never updated
// in place.
type Submission struct {
	ID              int64    `gorm:"column:id;primaryKey"`
	Email           string   `gorm:"column:email"`
	Pain            string   `gorm:"column:pain"`
	Pay             string   `gorm:"column:pay"`
	TargetPlatforms []string `gorm:"column:target_platforms;serializer:json"`
	DevOS           []string `gorm:"column:dev_os;serializer:json"`
	MaxAgents       int64    `gorm:"column:max_agents"`
	CreatedAt       int64    `gorm:"column:created_at;autoCreateTime"`
}

func (Submission) TableName() string {
	return "waitlist"
}
