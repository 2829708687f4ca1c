package domain

// StarCategory classifies a Zi Wei star.
type StarCategory string

const (
	MainStar    StarCategory = "主星"
	AssistStar  StarCategory = "辅星"
	MaleficStar StarCategory = "煞星"
)

// PalaceNames lists the twelve palaces in assignment order, walked backward
// through the branches starting from the Life Palace.
var PalaceNames = [12]string{
	"命宫", "兄弟宫", "夫妻宫", "子女宫", "财帛宫", "疾厄宫",
	"迁移宫", "交友宫", "事业宫", "田宅宫", "福德宫", "父母宫",
}

// ZiweiStar is one placed star.
type ZiweiStar struct {
	Name       string       `yaml:"name" json:"name"`
	Palace     string       `yaml:"palace" json:"palace"`
	Element    Element      `yaml:"element" json:"element"`
	Meaning    string       `yaml:"meaning" json:"meaning"`
	Brightness string       `yaml:"brightness" json:"brightness"` // 庙/旺/得/利/平/不/陷
	Category   StarCategory `yaml:"category" json:"category"`
}

// PalaceAssignment binds a palace name to its branch, its own stem and the
// first main star seated there (empty when the seat is vacant).
type PalaceAssignment struct {
	Palace     string       `yaml:"palace" json:"palace"`
	Star       string       `yaml:"star" json:"star"`
	Element    Element      `yaml:"element" json:"element"`
	Brightness string       `yaml:"brightness" json:"brightness"`
	Category   StarCategory `yaml:"category" json:"category"`
	Meaning    string       `yaml:"meaning" json:"meaning"`
	BranchName string       `yaml:"branch_name" json:"branch_name"`
}

// SiHuaKind is one of the four transformations.
type SiHuaKind string

const (
	HuaLu   SiHuaKind = "化禄" // prosperity
	HuaQuan SiHuaKind = "化权" // authority
	HuaKe   SiHuaKind = "化科" // merit
	HuaJi   SiHuaKind = "化忌" // obstacle
)

// SiHua is one year-stem transformation resolved to the palace currently
// holding the transformed star.
type SiHua struct {
	Star      string    `yaml:"star" json:"star"`
	Transform SiHuaKind `yaml:"transform" json:"transform"`
	Palace    string    `yaml:"palace" json:"palace"`
	Meaning   string    `yaml:"meaning" json:"meaning"`
}

// FlyingSiHua is a palace-stem self-transformation: the given palace's own
// stem sends the obstacle transformation to the palace holding the star.
type FlyingSiHua struct {
	FromPalace string    `yaml:"from_palace" json:"from_palace"`
	Transform  SiHuaKind `yaml:"transform" json:"transform"`
	ToPalace   string    `yaml:"to_palace" json:"to_palace"`
	Star       string    `yaml:"star" json:"star"`
}

// Bureau is the five-element bureau derived from the Life Palace nayin.
type Bureau struct {
	Number  int     `yaml:"number" json:"number"` // 水2 木3 金4 土5 火6
	Element Element `yaml:"element" json:"element"`
}

// ZiweiChart is the complete star-chart result graph.
type ZiweiChart struct {
	MainStar          ZiweiStar          `yaml:"main_star" json:"main_star"`
	Stars             []ZiweiStar        `yaml:"stars" json:"stars"`
	PalaceAssignments []PalaceAssignment `yaml:"palace_assignments" json:"palace_assignments"`
	LifePalaceBranch  string             `yaml:"life_palace_branch" json:"life_palace_branch"`
	BodyPalaceBranch  string             `yaml:"body_palace_branch" json:"body_palace_branch"`
	LifePalaceStem    string             `yaml:"life_palace_stem" json:"life_palace_stem"`
	FiveElementBureau Bureau             `yaml:"five_element_bureau" json:"five_element_bureau"`
	ZiweiPosition     string             `yaml:"ziwei_position" json:"ziwei_position"`
	SiHua             []SiHua            `yaml:"sihua" json:"sihua"`
	FlyingSiHua       []FlyingSiHua      `yaml:"flying_sihua" json:"flying_sihua"`
	ClashNote         string             `yaml:"clash_note" json:"clash_note"`
	HetuNote          string             `yaml:"hetu_note" json:"hetu_note"`
	MigrationPalace   *PalaceAssignment  `yaml:"migration_palace,omitempty" json:"migration_palace,omitempty"`
	MigrationStars    []ZiweiStar        `yaml:"migration_stars" json:"migration_stars"`
	CareerPalace      *PalaceAssignment  `yaml:"career_palace,omitempty" json:"career_palace,omitempty"`
}

// CareerPalaceStar adapts the career palace assignment into the shape the
// career analyzer folds in, or nil when the palace has no seated star.
func (z *ZiweiChart) CareerPalaceStar() *ZiweiStar {
	if z.CareerPalace == nil || z.CareerPalace.Star == "" {
		return nil
	}
	return &ZiweiStar{
		Name:       z.CareerPalace.Star,
		Palace:     z.CareerPalace.Palace,
		Element:    z.CareerPalace.Element,
		Meaning:    z.CareerPalace.Meaning,
		Brightness: z.CareerPalace.Brightness,
		Category:   z.CareerPalace.Category,
	}
}

// StarsIn returns all stars seated in the named palace.
func (z *ZiweiChart) StarsIn(palace string) []ZiweiStar {
	var out []ZiweiStar
	for _, s := range z.Stars {
		if s.Palace == palace {
			out = append(out, s)
		}
	}
	return out
}

// SiHuaIn returns the year-stem transformation landing in the named palace,
// or nil.
func (z *ZiweiChart) SiHuaIn(palace string) *SiHua {
	for i := range z.SiHua {
		if z.SiHua[i].Palace == palace {
			return &z.SiHua[i]
		}
	}
	return nil
}
