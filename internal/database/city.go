package database

import "gorm.io/gorm"

// City 重名城市的一个候选，同名城市按 id 顺序展示
type City struct {
	gorm.Model
	Name     string `gorm:"column:name;not null;index"`
	Province string `gorm:"column:province;not null"`
	Leader   string `gorm:"column:leader;not null"`
	CityId   string `gorm:"column:city_id;not null;unique"`
}
