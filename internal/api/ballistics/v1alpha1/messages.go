// Package v1alpha1 defines the wire contract of the ballistics gRPC service.
// Messages are plain structs carried by the json codec registered in codec.go.
package v1alpha1

// Weapon is a catalog entry with the options a client may select for it
type Weapon struct {
	Name      string   `json:"name"`
	Damage    int32    `json:"damage"`
	Flags     string   `json:"flags"`
	Variants  []string `json:"variants,omitempty"`
	AmmoTypes []string `json:"ammo_types,omitempty"`
	Bodyparts []string `json:"bodyparts,omitempty"`
}

// GetName returns the weapon name
func (w *Weapon) GetName() string {
	if w == nil {
		return ""
	}
	return w.Name
}

type ListWeaponsRequest struct {
	Caliber string `json:"caliber,omitempty"`
}

type ListWeaponsResponse struct {
	Weapons        []*Weapon `json:"weapons"`
	CatalogVersion string    `json:"catalog_version"`
}

type GetWeaponRequest struct {
	Name string `json:"name"`
}

// GetName returns the requested weapon name
func (r *GetWeaponRequest) GetName() string {
	if r == nil {
		return ""
	}
	return r.Name
}

type GetWeaponResponse struct {
	Weapon *Weapon `json:"weapon"`
}

type ListObstaclesRequest struct{}

type ListObstaclesResponse struct {
	Obstacles []string `json:"obstacles"`
}

type ListBodypartsRequest struct {
	WeaponName string   `json:"weapon_name,omitempty"`
	Variants   []string `json:"variants,omitempty"`
}

type ListBodypartsResponse struct {
	Bodyparts []string `json:"bodyparts"`
}

type CalculateDamageRequest struct {
	WeaponName   string   `json:"weapon_name"`
	Variants     []string `json:"variants,omitempty"`
	Distance     float64  `json:"distance"`
	Bodypart     string   `json:"bodypart"`
	Obstacle     string   `json:"obstacle,omitempty"`
	TargetHealth int32    `json:"target_health,omitempty"`
}

// GetWeaponName returns the requested weapon name
func (r *CalculateDamageRequest) GetWeaponName() string {
	if r == nil {
		return ""
	}
	return r.WeaponName
}

// GetBodypart returns the requested body part
func (r *CalculateDamageRequest) GetBodypart() string {
	if r == nil {
		return ""
	}
	return r.Bodypart
}

type CalculateDamageResponse struct {
	WeaponName        string  `json:"weapon_name"`
	AmmoType          string  `json:"ammo_type"`
	Flags             string  `json:"flags"`
	FalloffMultiplier float64 `json:"falloff_multiplier"`
	BodypartModifier  float64 `json:"bodypart_modifier"`
	PenetrationFactor float64 `json:"penetration_factor"`
	Damage            int32   `json:"damage"`
	ShotsToKill       int32   `json:"shots_to_kill,omitempty"`
}

type GetDamageProfileRequest struct {
	WeaponName  string   `json:"weapon_name"`
	Variants    []string `json:"variants,omitempty"`
	MaxDistance float64  `json:"max_distance,omitempty"`
	Bodypart    string   `json:"bodypart"`
	Obstacle    string   `json:"obstacle,omitempty"`
}

// GetWeaponName returns the requested weapon name
func (r *GetDamageProfileRequest) GetWeaponName() string {
	if r == nil {
		return ""
	}
	return r.WeaponName
}

// GetBodypart returns the requested body part
func (r *GetDamageProfileRequest) GetBodypart() string {
	if r == nil {
		return ""
	}
	return r.Bodypart
}

type DamageSample struct {
	Distance float64 `json:"distance"`
	Damage   int32   `json:"damage"`
}

// HealthBandRange is the stretch of a profile whose damage falls inside a band
type HealthBandRange struct {
	Name         string  `json:"name"`
	Color        string  `json:"color"`
	High         int32   `json:"high"`
	Low          int32   `json:"low"`
	StartIndex   int32   `json:"start_index"`
	EndIndex     int32   `json:"end_index"`
	FromDistance float64 `json:"from_distance"`
	ToDistance   float64 `json:"to_distance"`
}

type GetDamageProfileResponse struct {
	WeaponName  string             `json:"weapon_name"`
	AmmoType    string             `json:"ammo_type"`
	Interval    float64            `json:"interval"`
	MaxDistance float64            `json:"max_distance"`
	Samples     []*DamageSample    `json:"samples"`
	Bands       []*HealthBandRange `json:"bands"`
}

type FindLethalCombinationsRequest struct {
	Distance     float64 `json:"distance"`
	TargetHealth int32   `json:"target_health"`
	Bodypart     string  `json:"bodypart"`
	Obstacle     string  `json:"obstacle,omitempty"`
	MaxShots     int32   `json:"max_shots,omitempty"`
}

// GetBodypart returns the requested body part
func (r *FindLethalCombinationsRequest) GetBodypart() string {
	if r == nil {
		return ""
	}
	return r.Bodypart
}

type LethalCombination struct {
	WeaponName       string  `json:"weapon_name"`
	AmmoType         string  `json:"ammo_type"`
	Damage           int32   `json:"damage"`
	PenetratedDamage float64 `json:"penetrated_damage"`
	ShotsToKill      int32   `json:"shots_to_kill"`
}

type FindLethalCombinationsResponse struct {
	Matches        []*LethalCombination `json:"matches"`
	CatalogVersion string               `json:"catalog_version"`
	Cached         bool                 `json:"cached"`
}
