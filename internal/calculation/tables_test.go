package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tianming/city-selector/internal/domain"
)

func TestNayinCoversAllSixtyPairs(t *testing.T) {
	// Valid sexagenary pairs share stem/branch parity; all 60 must resolve.
	found := 0
	for si, stem := range domain.HeavenlyStems {
		for bi, branch := range domain.EarthlyBranches {
			if si%2 != bi%2 {
				continue
			}
			ny := Nayin(stem, branch)
			assert.NotEqual(t, "未知", ny.Name, "pair %s%s", stem, branch)
			found++
		}
	}
	assert.Equal(t, 60, found)
}

func TestNayinKnownValues(t *testing.T) {
	assert.Equal(t, "海中金", Nayin("甲", "子").Name)
	assert.Equal(t, domain.Metal, Nayin("甲", "子").Element)
	assert.Equal(t, "大海水", Nayin("壬", "戌").Name)
	assert.Equal(t, "大林木", Nayin("己", "巳").Name)
}

func TestNayinDegradesUnknownPair(t *testing.T) {
	// 甲丑 has mismatched parity and never occurs in the cycle.
	ny := Nayin("甲", "丑")
	assert.Equal(t, "未知", ny.Name)
	assert.Equal(t, domain.Earth, ny.Element)
}

func TestTenGodIsTotalOverStemPairs(t *testing.T) {
	for _, dm := range domain.HeavenlyStems {
		for _, target := range domain.HeavenlyStems {
			god := TenGod(dm, target)
			assert.NotEqual(t, "未知", god, "%s vs %s", dm, target)
		}
		assert.Equal(t, "比肩", TenGod(dm, dm), "a stem is its own 比肩")
	}
}

func TestTenGodKnownRelations(t *testing.T) {
	assert.Equal(t, "正官", TenGod("甲", "辛"))
	assert.Equal(t, "七杀", TenGod("庚", "丙"))
	assert.Equal(t, "食神", TenGod("壬", "甲"))
	assert.Equal(t, "正财", TenGod("甲", "己"))
	assert.Equal(t, "未知", TenGod("x", "甲"))
}

func TestStemAndBranchElements(t *testing.T) {
	assert.Equal(t, domain.Wood, StemElement("甲"))
	assert.Equal(t, domain.Water, StemElement("癸"))
	assert.Equal(t, domain.Earth, StemElement("?"), "unknown stems degrade to Earth")

	assert.Equal(t, domain.Water, BranchElement("子"))
	assert.Equal(t, domain.Fire, BranchElement("午"))
	assert.Equal(t, domain.Earth, BranchElement("?"))
}
