package models

import "time"

// EmployeeAccess is one append-only entry of the access log.
type EmployeeAccess struct {
	ID         string    `gorm:"column:AccessID;primaryKey" json:"id"`
	Employee   string    `gorm:"column:NamaKaryawan;not null" json:"employee"`
	AccessedAt time.Time `gorm:"column:WaktuAkses;not null" json:"accessed_at"`
}

func (EmployeeAccess) TableName() string { return "EmployeeAccess" }
