// models/player.go
package models

import "time"

// Position is the on-pitch role a player fills.
type Position string

const (
	PositionStriker    Position = "Striker"
	PositionMidfielder Position = "Midfielder"
	PositionDefender   Position = "Defender"
	PositionGoalkeeper Position = "Goalkeeper"
)

// Positions lists every allowed position value, used for validation
// and error messages.
var Positions = []Position{
	PositionStriker,
	PositionMidfielder,
	PositionDefender,
	PositionGoalkeeper,
}

// Valid reports whether p is one of the enumerated positions.
func (p Position) Valid() bool {
	for _, known := range Positions {
		if p == known {
			return true
		}
	}
	return false
}

type Player struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Position  Position  `json:"position" gorm:"not null;size:20"`
	IsCaptain bool      `json:"isCaptain" gorm:"default:false"`
	TeamName  string    `json:"teamName" gorm:"default:''"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Player) TableName() string {
	return "players"
}
