package shoot

// Module selects the production context: which shot catalog applies and
// which prompt persona the compiler emits.
type Module string

const (
	ModuleLookbook  Module = "lookbook"
	ModuleCampaign  Module = "campaign"
	ModuleStillLife Module = "still_life"
)

func (m Module) Valid() bool {
	switch m {
	case ModuleLookbook, ModuleCampaign, ModuleStillLife:
		return true
	}
	return false
}

// ProductCategory drives which shot set a lookbook or still-life query maps to.
type ProductCategory string

const (
	CategoryDress       ProductCategory = "dress"
	CategoryTop         ProductCategory = "top"
	CategoryPants       ProductCategory = "pants"
	CategorySkirt       ProductCategory = "skirt"
	CategoryShorts      ProductCategory = "shorts"
	CategoryCoat        ProductCategory = "coat"
	CategoryMatchingSet ProductCategory = "matching_set"
)

// Environment distinguishes studio from street lookbook backdrops.
type Environment string

const (
	EnvIndoor  Environment = "indoor"
	EnvOutdoor Environment = "outdoor"
)

// Pack is a distribution channel toggle. Only the standard pack currently
// contributes shots; vip is modeled for future shot sets and is a no-op.
type Pack string

const (
	PackStandard Pack = "standard"
	PackVIP      Pack = "vip"
)

// ShotCategory classifies a shot within its set.
type ShotCategory string

const (
	ShotBasic      ShotCategory = "basic"
	ShotStandard   ShotCategory = "standard"
	ShotCreative   ShotCategory = "creative"
	ShotSupplement ShotCategory = "supplement"
)

// ShotDefinition is one immutable catalog entry. Catalog queries return
// copies with the {environment} placeholder already resolved; the backing
// tables are never mutated.
type ShotDefinition struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Category       ShotCategory `json:"category"`
	Pack           Pack         `json:"pack,omitempty"`
	AspectRatio    string       `json:"aspectRatio"`
	Description    string       `json:"description"`
	PromptTemplate string       `json:"promptTemplate"`
}
