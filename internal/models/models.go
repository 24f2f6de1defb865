package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList is stored as a JSON-encoded text column so the same model
// works against postgres and the in-memory sqlite used in tests.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `gorm:"not null"             json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type Word struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"     json:"id"`
	UserID              uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	User                User       `gorm:"foreignKey:UserID"        json:"-"`
	Words               StringList `gorm:"type:text;not null"       json:"words"`
	Definitions         StringList `gorm:"type:text"                json:"definitions"`
	Images              StringList `gorm:"type:text"                json:"images"`
	Audio               StringList `gorm:"type:text"                json:"audio"`
	ListenHighScore     int        `gorm:"default:0"                json:"listenhighscore"`
	ImageHighScore      int        `gorm:"default:0"                json:"imagehighscore"`
	DefinitionHighScore int        `gorm:"default:0"                json:"definitionhighscore"`
}

func (w *Word) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
