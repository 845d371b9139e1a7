package database

import (
	"WhaleBot/internal/log"
	"WhaleBot/internal/model"
	weatherService "WhaleBot/internal/service/weather"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

//go:embed cities.json
var seedCities []byte

type seedEntry struct {
	Data []model.CityCandidate `json:"data"`
}

// LoadSeed 解析内置的重名城市数据
func LoadSeed() (map[string][]model.CityCandidate, error) {
	var raw map[string]seedEntry
	if err := json.Unmarshal(seedCities, &raw); err != nil {
		return nil, fmt.Errorf("解析内置城市数据失败: %w", err)
	}
	return lo.MapValues(raw, func(entry seedEntry, _ string) []model.CityCandidate {
		return entry.Data
	}), nil
}

// LoadCityTable 有数据库时从城市表读取，表为空先写入内置数据
func LoadCityTable() (weatherService.CityTable, error) {
	seed, err := LoadSeed()
	if err != nil {
		return weatherService.CityTable{}, err
	}
	if DB.DataBase == nil {
		log.Log.WithFields(logrus.Fields{
			"names": len(seed),
		}).Warn("未配置数据库，城市表只收录内置的常见重名区县")
		return weatherService.NewCityTable(seed), nil
	}
	var count int64
	if err := DB.DataBase.Model(&City{}).Count(&count).Error; err != nil {
		return weatherService.CityTable{}, err
	}
	if count == 0 {
		if err := seedDataBase(seed); err != nil {
			return weatherService.CityTable{}, err
		}
	}
	var cities []City
	if err := DB.DataBase.Order("id").Find(&cities).Error; err != nil {
		return weatherService.CityTable{}, err
	}
	log.Log.WithFields(logrus.Fields{
		"rows": len(cities),
	}).Info("城市表加载成功")
	return weatherService.NewCityTable(groupCities(cities)), nil
}

func seedDataBase(seed map[string][]model.CityCandidate) error {
	rows := toRows(seed)
	if err := DB.DataBase.CreateInBatches(rows, 100).Error; err != nil {
		log.Log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("写入内置城市数据失败")
		return err
	}
	log.Log.WithFields(logrus.Fields{
		"rows": len(rows),
	}).Info("写入内置城市数据")
	return nil
}

// toRows 城市名排序后展开，保证写入顺序稳定
func toRows(seed map[string][]model.CityCandidate) []City {
	names := lo.Keys(seed)
	sort.Strings(names)
	var rows []City
	for _, name := range names {
		for _, candidate := range seed[name] {
			rows = append(rows, City{
				Name:     name,
				Province: candidate.Province,
				Leader:   candidate.Leader,
				CityId:   candidate.CityId,
			})
		}
	}
	return rows
}

func groupCities(cities []City) map[string][]model.CityCandidate {
	grouped := lo.GroupBy(cities, func(c City) string {
		return c.Name
	})
	return lo.MapValues(grouped, func(rows []City, _ string) []model.CityCandidate {
		return lo.Map(rows, func(c City, _ int) model.CityCandidate {
			return model.CityCandidate{Province: c.Province, Leader: c.Leader, CityId: c.CityId}
		})
	})
}
