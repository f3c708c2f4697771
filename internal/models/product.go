package models

type Product struct {
	ID           string  `gorm:"column:ProductID;primaryKey" json:"id"`
	Brand        string  `gorm:"column:Merek;not null" json:"brand"`
	Model        string  `gorm:"column:Model;not null" json:"model"`
	Type         string  `gorm:"column:Type;not null" json:"type"`
	Color        string  `gorm:"column:Color" json:"color"`
	Size         string  `gorm:"column:Size" json:"size"`
	Stock        int     `gorm:"column:Stok;not null" json:"stock"`
	BuyPrice     float64 `gorm:"column:HargaBeli;not null" json:"buy_price"`
	SellPrice    float64 `gorm:"column:HargaJual;not null" json:"sell_price"`
	SupplierCode string  `gorm:"column:KodeSupplier;not null" json:"supplier_id"`
}

func (Product) TableName() string {
	return "Product"
}
