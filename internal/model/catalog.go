package model

import (
	"time"
)

// SupplierModel 面料供应商
type SupplierModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserId int64  `json:"user_id" gorm:"not null;index"` // 供应商账号的用户ID
	Name   string `json:"name" gorm:"not null"`
}

// TableName 自定义表名
func (SupplierModel) TableName() string {
	return "supplier"
}

// MaterialModel 面料
type MaterialModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SupplierId *int64 `json:"supplier_id"`
	Name       string `json:"name" gorm:"not null"`

	// 关联
	Supplier *SupplierModel `json:"supplier,omitempty" gorm:"foreignKey:SupplierId"`
}

// TableName 自定义表名
func (MaterialModel) TableName() string {
	return "material"
}

// DesignerProfileModel 设计师档案
type DesignerProfileModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserId int64  `json:"user_id" gorm:"not null;index"` // 设计师账号的用户ID
	Name   string `json:"name" gorm:"not null"`
}

// TableName 自定义表名
func (DesignerProfileModel) TableName() string {
	return "designer_profile"
}

// DesignModel 设计作品
type DesignModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DesignerProfileId *int64 `json:"designer_profile_id"`
	Title             string `json:"title" gorm:"not null"`

	// 关联
	DesignerProfile *DesignerProfileModel `json:"designer_profile,omitempty" gorm:"foreignKey:DesignerProfileId"`
}

// TableName 自定义表名
func (DesignModel) TableName() string {
	return "design"
}

// ProductModel 成衣商品
type ProductModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DesignId *int64 `json:"design_id"`
	Name     string `json:"name" gorm:"not null"`

	// 关联
	Design *DesignModel `json:"design,omitempty" gorm:"foreignKey:DesignId"`
}

// TableName 自定义表名
func (ProductModel) TableName() string {
	return "product"
}
