package models

import "time"

type Player struct {
	ID        int    `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Number    int    `gorm:"not null"`                                       // номер на футболке
	TeamID    int    `gorm:"not null;index"`                                 // ID команды (внешний ключ)
	Team      *Team  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"` // Связь belongs-to
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Player) TableName() string { return "player" }

func (p Player) String() string { return p.Name }
