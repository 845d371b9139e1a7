package service

import "WhaleBot/internal/model"

// CityTable 重名城市表，构建后只读
type CityTable struct {
	entries map[string][]model.CityCandidate
}

// NewCityTable 复制一份输入，外部修改不会影响表内容
func NewCityTable(entries map[string][]model.CityCandidate) CityTable {
	copied := make(map[string][]model.CityCandidate, len(entries))
	for name, candidates := range entries {
		copied[name] = append([]model.CityCandidate(nil), candidates...)
	}
	return CityTable{entries: copied}
}

func (t CityTable) Lookup(name string) []model.CityCandidate {
	return append([]model.CityCandidate(nil), t.entries[name]...)
}

func (t CityTable) Len() int {
	return len(t.entries)
}
