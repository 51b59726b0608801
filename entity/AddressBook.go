package entity

import (
	"gorm.io/gorm"
)

type AddressBook struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	Consignee    string `json:"consignee"`
	Phone        string `json:"phone"`
	ProvinceName string `json:"provinceName"`
	CityName     string `json:"cityName"`
	DistrictName string `json:"districtName"`
	Detail       string `json:"detail"`
	IsDefault    bool   `json:"isDefault"`
}
