// models/team.go
package models

import "time"

// Team is a persisted grouping of players under a captain. The stored row
// keeps only references; Players is filled in by the service when a team is
// read back expanded. Slot order of team_players rows preserves the order
// the caller submitted.
type Team struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	CaptainID uint      `json:"captainId" gorm:"not null;index"`
	Captain   *Player   `json:"captain,omitempty" gorm:"foreignKey:CaptainID"`
	Players   []Player  `json:"players" gorm:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Team) TableName() string {
	return "teams"
}

// TeamPlayer is one membership row. A player may appear in several teams,
// or more than once in the same team; nothing deduplicates the list.
type TeamPlayer struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	TeamID   uint `json:"teamId" gorm:"not null;index"`
	PlayerID uint `json:"playerId" gorm:"not null;index"`
	Slot     int  `json:"slot" gorm:"not null"`
}

func (TeamPlayer) TableName() string {
	return "team_players"
}
