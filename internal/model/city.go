package model

// CityCandidate 重名城市中的一个候选
type CityCandidate struct {
	Province string `json:"province"`
	Leader   string `json:"leader"`
	CityId   string `json:"city_id"`
}
