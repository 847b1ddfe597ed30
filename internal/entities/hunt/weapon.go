package hunt

import (
	"math/bits"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
)

// EntityTypeWeapon is the toolkit entity type of catalog weapons.
const EntityTypeWeapon = "weapon"

// Weapon is one catalog entry. Flags holds the fixed caliber identity (plus
// Pistol for handguns); Variants holds the modifier bits the weapon may toggle.
type Weapon struct {
	Name     string
	Damage   int
	Flags    AmmoFlag
	Variants AmmoFlag
}

var _ core.Entity = (*Weapon)(nil)

// GetID returns the weapon name, which is unique within a catalog.
func (w *Weapon) GetID() string {
	return w.Name
}

// GetType returns the entity type for rpg-toolkit
func (w *Weapon) GetType() string {
	return EntityTypeWeapon
}

// IsShotgun reports whether the weapon fires shotgun shells.
func (w *Weapon) IsShotgun() bool {
	return w.Flags.Has(AmmoFlagShotgun)
}

// HasVariants reports whether the weapon declares any optional flags.
func (w *Weapon) HasVariants() bool {
	return w.Variants != 0
}

// CanEnableVariant is true iff the weapon declares variants and every bit of
// variant is among them.
func CanEnableVariant(w *Weapon, variant AmmoFlag) bool {
	if w == nil || !w.HasVariants() {
		return false
	}
	return w.Variants&variant == variant
}

// EnabledVariants lists the individual variant bits in increasing order.
func (w *Weapon) EnabledVariants() []AmmoFlag {
	return w.Variants.Bits()
}

// EffectiveFlags unions the base flags with an active selection. The active
// selection may repeat base bits but must not contain undeclared ones.
func (w *Weapon) EffectiveFlags(active AmmoFlag) (AmmoFlag, error) {
	if stray := active &^ (w.Flags | w.Variants); stray != 0 {
		return 0, errors.InvalidArgumentf("%s does not support %s", w.Name, stray).
			WithMeta("weapon", w.Name).
			WithMeta("flags", stray.String())
	}
	return w.Flags | active, nil
}

// VariantCombinations returns the base flags unioned with every subset of the
// variant bits. Bits are applied in increasing order and each one doubles the
// list, so the base configuration is always first.
func (w *Weapon) VariantCombinations() []AmmoFlag {
	combinations := make([]AmmoFlag, 1, 1<<bits.OnesCount16(uint16(w.Variants)))
	combinations[0] = w.Flags
	for _, bit := range w.Variants.Bits() {
		for _, existing := range combinations {
			combinations = append(combinations, existing|bit)
		}
	}
	return combinations
}

// Validate checks the catalog invariants: a name, positive damage, exactly one
// caliber bit in Flags, no caliber bit in Variants, and a registered ammunition
// type for every combination the weapon can produce.
func (w *Weapon) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", w.Name, vb)
	if w.Damage <= 0 {
		vb.Fieldf("damage", "must be positive, got %d", w.Damage)
	}
	if bits.OnesCount16(uint16(w.Flags.Caliber())) != 1 {
		vb.Fieldf("flags", "must contain exactly one caliber, got %s", w.Flags)
	}
	if w.Variants.Caliber() != 0 {
		vb.Fieldf("variants", "must not contain a caliber, got %s", w.Variants)
	}

	var unmapped []string
	for _, combination := range w.VariantCombinations() {
		if _, err := TypeForFlags(combination); err != nil {
			unmapped = append(unmapped, combination.String())
		}
	}
	if len(unmapped) > 0 {
		vb.Fieldf("variants", "no ammunition type for %s", strings.Join(unmapped, ", "))
	}

	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "invalid weapon %q", w.Name).WithReason(ReasonInvalidWeapon)
	}
	return nil
}
