package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User is the single persisted record: identity plus gamified progress.
// Password is stored and compared in plain text to match the existing
// frontend contract.
type User struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Username              string         `gorm:"uniqueIndex;not null;column:username" json:"username"`
	Password              string         `gorm:"not null;column:password" json:"-"`
	Avatar                string         `gorm:"column:avatar;default:default_url" json:"avatar"`
	TotalXP               int            `gorm:"column:total_xp;not null;default:0" json:"total_xp"`
	Level                 int            `gorm:"column:level;not null;default:1" json:"level"`
	Rank                  string         `gorm:"column:rank;not null;default:Beginner" json:"rank"`
	TopicsCompleted       int            `gorm:"column:topics_completed;not null;default:0" json:"topics_completed"`
	CompletedTopicsInRank datatypes.JSON `gorm:"column:completed_topics_in_rank" json:"completed_topics_in_rank"`
	School                *string        `gorm:"column:school" json:"school"`
	Description           *string        `gorm:"column:description" json:"description"`
	CreatedAt             time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// CompletedTopics decodes the per-rank topic list. A missing or corrupt
// column reads as an empty list rather than an error.
func (u *User) CompletedTopics() []string {
	var topics []string
	if len(u.CompletedTopicsInRank) == 0 {
		return []string{}
	}
	if err := json.Unmarshal(u.CompletedTopicsInRank, &topics); err != nil {
		return []string{}
	}
	if topics == nil {
		return []string{}
	}
	return topics
}

func (u *User) SetCompletedTopics(topics []string) {
	if topics == nil {
		topics = []string{}
	}
	raw, err := json.Marshal(topics)
	if err != nil {
		raw = []byte("[]")
	}
	u.CompletedTopicsInRank = datatypes.JSON(raw)
}

// Public is the serialized user shape every endpoint returns.
func (u *User) Public() map[string]any {
	return map[string]any{
		"id":                       u.ID,
		"username":                 u.Username,
		"avatar":                   u.Avatar,
		"total_xp":                 u.TotalXP,
		"level":                    u.Level,
		"rank":                     u.Rank,
		"topics_completed":         u.TopicsCompleted,
		"completed_topics_in_rank": u.CompletedTopics(),
		"school":                   u.School,
		"description":              u.Description,
	}
}
