package domain

// CityRecommendation is one scored candidate city with per-dimension
// rationale strings. Score is clamped to [15, 99].
type CityRecommendation struct {
	Name      string  `yaml:"name" json:"name"`
	Province  string  `yaml:"province" json:"province"`
	Direction string  `yaml:"direction" json:"direction"`
	Element   Element `yaml:"element" json:"element"`
	Score     int     `yaml:"score" json:"score"`

	Reason        string   `yaml:"reason" json:"reason"`
	Features      []string `yaml:"features" json:"features"`
	BaziMatch     string   `yaml:"bazi_match" json:"bazi_match"`
	ZiweiMatch    string   `yaml:"ziwei_match" json:"ziwei_match"`
	Fengshui      string   `yaml:"fengshui" json:"fengshui"`
	HetuAnalysis  string   `yaml:"hetu_analysis" json:"hetu_analysis"`
	NayinMatch    string   `yaml:"nayin_match" json:"nayin_match"`
	ShenShaAdvice string   `yaml:"shensha_advice" json:"shensha_advice"`
	DaYunAdvice   string   `yaml:"dayun_advice" json:"dayun_advice"`
	ClassicQuote  string   `yaml:"classic_quote" json:"classic_quote"`
	CareerMatch   string   `yaml:"career_match" json:"career_match"`
}
