package models

type Supplier struct {
	ID      string `gorm:"column:SupplierID;primaryKey" json:"id"`
	Name    string `gorm:"column:NamaSupplier;not null" json:"name"`
	Address string `gorm:"column:Alamat;not null" json:"address"`
	Email   string `gorm:"column:Email;not null" json:"email"`
	Phone   string `gorm:"column:Telepon;not null" json:"phone"`
}

func (Supplier) TableName() string {
	return "Supplier"
}
