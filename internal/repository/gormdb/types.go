package gormdb

// TaskModel 任务表
type TaskModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Position  int    `gorm:"index;not null"`
	Name      string `gorm:"size:512;not null"`
	Timestamp int64  `gorm:"index;not null"` // Unix 秒
}

func (TaskModel) TableName() string {
	return "tasks"
}

// AllModels returns every model handled by AutoMigrate
func AllModels() []any {
	return []any{
		&TaskModel{},
	}
}
