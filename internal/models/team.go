package models

import "time"

type Team struct {
	ID         int         `gorm:"primaryKey"`
	Name       string      `gorm:"size:100;not null;uniqueIndex"`
	Players    []Player    `gorm:"foreignKey:TeamID"` // Связь has-many
	Statistics []Statistic `gorm:"foreignKey:TeamID"` // Связь has-many
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Team) TableName() string { return "team" }

func (t Team) String() string { return t.Name }
