package models

type TicketModel struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"size:120;not null"`
	Description *string `gorm:"type:text"`
	Status      string  `gorm:"size:50;not null;default:open;index"`
	Priority    string  `gorm:"size:50;not null;default:medium;index"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}
