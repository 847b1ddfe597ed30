package weapons

import (
	"bytes"
	_ "embed"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// EmbeddedCatalog returns the catalog shipped with the binary
func EmbeddedCatalog() []byte {
	out := make([]byte, len(embeddedCatalog))
	copy(out, embeddedCatalog)
	return out
}

type catalogFile struct {
	Weapons []weaponRecord `yaml:"weapons"`
}

type weaponRecord struct {
	Name     string   `yaml:"name"`
	Damage   int      `yaml:"damage"`
	Ammo     []string `yaml:"ammo"`
	Variants []string `yaml:"variants"`
}

// Catalog is a parsed and validated weapon list
type Catalog struct {
	Weapons []*hunt.Weapon
	Version string
}

// ReadCatalogFile loads a catalog from path
func ReadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) // #nosec G304 operator supplied path
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read catalog file").
			WithMeta("path", path)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return catalog, nil
}

// ParseCatalog decodes YAML catalog data and validates every weapon. Unknown
// keys, duplicate names and unregistered ammunition combinations are errors.
func ParseCatalog(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog")
	}
	if len(file.Weapons) == 0 {
		return nil, errors.InvalidArgument("catalog has no weapons")
	}

	seen := make(map[string]int, len(file.Weapons))
	weapons := make([]*hunt.Weapon, 0, len(file.Weapons))
	for i, record := range file.Weapons {
		weapon, err := record.toWeapon()
		if err != nil {
			return nil, errors.Wrapf(err, "weapon #%d", i+1)
		}
		if prev, dup := seen[weapon.Name]; dup {
			return nil, errors.InvalidArgumentf("weapon %q listed twice (#%d and #%d)", weapon.Name, prev+1, i+1).
				WithReason(hunt.ReasonInvalidWeapon)
		}
		seen[weapon.Name] = i
		weapons = append(weapons, weapon)
	}

	return &Catalog{
		Weapons: weapons,
		Version: strconv.FormatUint(xxhash.Sum64(data), 16),
	}, nil
}

func (r weaponRecord) toWeapon() (*hunt.Weapon, error) {
	weapon := &hunt.Weapon{Name: r.Name, Damage: r.Damage}

	for _, name := range r.Ammo {
		flag, err := hunt.ParseAmmoFlag(name)
		if err != nil {
			return nil, errors.Wrapf(err, "weapon %q ammo", r.Name).WithReason(hunt.ReasonInvalidWeapon)
		}
		weapon.Flags |= flag
	}
	for _, name := range r.Variants {
		flag, err := hunt.ParseVariantFlag(name)
		if err != nil {
			return nil, errors.Wrapf(err, "weapon %q variants", r.Name).WithReason(hunt.ReasonInvalidWeapon)
		}
		weapon.Variants |= flag
	}

	if err := weapon.Validate(); err != nil {
		return nil, err
	}
	return weapon, nil
}
