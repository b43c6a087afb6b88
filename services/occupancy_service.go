package services

import (
	"github.com/adisyonqr/restaurant-app/models"
	"gorm.io/gorm"
)

type TableOccupancy struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Capacity      int    `json:"capacity"`
	IsOccupied    bool   `json:"is_occupied"`
	HasReadyOrder bool   `json:"has_ready_order"`
	ActiveOrderID *uint  `json:"active_order_id"`
}

type GroupOccupancy struct {
	ID     uint             `json:"id"`
	Name   string           `json:"name"`
	Tables []TableOccupancy `json:"tables"`
}

// ProjectOccupancy derives the waiter floor view from current order
// state. It holds no state of its own; correctness is only guaranteed
// at the instant of the read.
func ProjectOccupancy(db *gorm.DB) ([]GroupOccupancy, error) {
	var groups []models.TableGroup
	if err := db.Where("is_active = ?", true).
		Preload("Tables", "is_active = ?", true).
		Order("sort_order ASC").
		Find(&groups).Error; err != nil {
		return nil, err
	}

	result := make([]GroupOccupancy, 0, len(groups))
	for _, group := range groups {
		g := GroupOccupancy{
			ID:     group.ID,
			Name:   group.Name,
			Tables: make([]TableOccupancy, 0, len(group.Tables)),
		}
		for _, table := range group.Tables {
			occ, err := projectTable(db, table)
			if err != nil {
				return nil, err
			}
			g.Tables = append(g.Tables, occ)
		}
		result = append(result, g)
	}
	return result, nil
}

func projectTable(db *gorm.DB, table models.Table) (TableOccupancy, error) {
	var open []models.Order
	// Oldest open order first: it is the one the table is "on".
	if err := db.Where("table_id = ? AND status IN ?", table.ID, models.NonTerminalStatuses).
		Order("created_at ASC, id ASC").
		Find(&open).Error; err != nil {
		return TableOccupancy{}, err
	}

	occ := TableOccupancy{
		ID:         table.ID,
		Name:       table.Name,
		Capacity:   table.Capacity,
		IsOccupied: len(open) > 0,
	}
	for _, order := range open {
		if order.Status == models.StatusReady {
			occ.HasReadyOrder = true
		}
	}
	if len(open) > 0 {
		id := open[0].ID
		occ.ActiveOrderID = &id
	}
	return occ, nil
}
