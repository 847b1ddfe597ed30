package testutils

import (
	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
)

// CatalogWeapons returns a fresh copy of the shipped weapon catalog in catalog
// order. Tests may mutate the result.
func CatalogWeapons() []*hunt.Weapon {
	return []*hunt.Weapon{
		{Name: "Berthier MLE 1892", Damage: 130, Flags: hunt.AmmoFlagLong, Variants: hunt.AmmoFlagSpitzer},
		{Name: "Bornheim No. 3", Damage: 74, Flags: hunt.AmmoFlagCompact | hunt.AmmoFlagPistol, Variants: hunt.AmmoFlagSilenced},
		{Name: "Caldwell 92 New Army", Damage: 97, Flags: hunt.AmmoFlagCompact | hunt.AmmoFlagPistol, Variants: hunt.AmmoFlagFMJ},
		{Name: "Caldwell Conversion Pistol", Damage: 104, Flags: hunt.AmmoFlagCompact | hunt.AmmoFlagPistol, Variants: hunt.AmmoFlagFMJ},
		{Name: "Caldwell Conversion Uppercut", Damage: 126, Flags: hunt.AmmoFlagLong | hunt.AmmoFlagPistol},
		{Name: "Caldwell Pax", Damage: 110, Flags: hunt.AmmoFlagMedium | hunt.AmmoFlagPistol, Variants: hunt.AmmoFlagFMJ},
		{Name: "Caldwell Rival 78", Damage: 190, Flags: hunt.AmmoFlagShotgun},
		{Name: "Caldwell Rival 78 Handcannon", Damage: 105, Flags: hunt.AmmoFlagShotgun},
		{Name: "Crown & King Auto-5", Damage: 194, Flags: hunt.AmmoFlagShotgun},
		{Name: "Drilling", Damage: 120, Flags: hunt.AmmoFlagMedium, Variants: hunt.AmmoFlagFMJ},
		{Name: "Lebel 1886", Damage: 132, Flags: hunt.AmmoFlagLong, Variants: hunt.AmmoFlagSpitzer},
		{Name: "LeMat Mark II Carbine", Damage: 107, Flags: hunt.AmmoFlagMedium, Variants: hunt.AmmoFlagFMJ},
		{Name: "LeMat Mark II Revolver", Damage: 97, Flags: hunt.AmmoFlagMedium | hunt.AmmoFlagPistol, Variants: hunt.AmmoFlagFMJ},
		{Name: "LeMat Mark II UpperMat", Damage: 120, Flags: hunt.AmmoFlagLong | hunt.AmmoFlagPistol, Variants: hunt.AmmoFlagFMJ},
		{Name: "Martini-Henry IC1", Damage: 143, Flags: hunt.AmmoFlagLong, Variants: hunt.AmmoFlagFMJ},
		{Name: "Mosin-Nagant M1891", Damage: 136, Flags: hunt.AmmoFlagLong, Variants: hunt.AmmoFlagSpitzer},
		{Name: "Mosin-Nagant M1891 Obrez", Damage: 133, Flags: hunt.AmmoFlagLong, Variants: hunt.AmmoFlagSpitzer},
		{Name: "Nagant M1895", Damage: 91, Flags: hunt.AmmoFlagCompact | hunt.AmmoFlagPistol, Variants: hunt.AmmoFlagSilenced},
		{Name: "Nagant M1895 Officer", Damage: 91, Flags: hunt.AmmoFlagCompact | hunt.AmmoFlagPistol},
		{Name: "Nagant M1895 Officer Carbine", Damage: 104, Flags: hunt.AmmoFlagCompact},
		{Name: "Nitro Express Rifle", Damage: 364, Flags: hunt.AmmoFlagNitro},
		{Name: "Romero 77", Damage: 218, Flags: hunt.AmmoFlagShotgun},
		{Name: "Romero 77 Handcannon", Damage: 145, Flags: hunt.AmmoFlagShotgun},
		{Name: "Scottfield Model 3", Damage: 107, Flags: hunt.AmmoFlagMedium | hunt.AmmoFlagPistol, Variants: hunt.AmmoFlagFMJ},
		{Name: "Sparks LRR", Damage: 149, Flags: hunt.AmmoFlagLong, Variants: hunt.AmmoFlagSilenced | hunt.AmmoFlagFMJ},
		{Name: "Sparks LRR Pistol", Damage: 149, Flags: hunt.AmmoFlagLong | hunt.AmmoFlagPistol, Variants: hunt.AmmoFlagFMJ},
		{Name: "Specter 1882", Damage: 210, Flags: hunt.AmmoFlagShotgun},
		{Name: "Specter 1882 Compact", Damage: 113, Flags: hunt.AmmoFlagCompact},
		{Name: "Springfield 1866", Damage: 132, Flags: hunt.AmmoFlagMedium},
		{Name: "Springfield 1866 Compact", Damage: 130, Flags: hunt.AmmoFlagMedium},
		{Name: "Springfield M1892 Krag", Damage: 124, Flags: hunt.AmmoFlagLong, Variants: hunt.AmmoFlagFMJ},
		{Name: "Vetterli 71 Karabiner", Damage: 130, Flags: hunt.AmmoFlagMedium, Variants: hunt.AmmoFlagSilenced | hunt.AmmoFlagFMJ},
		{Name: "Vetterli 71 Karabiner Cyclone", Damage: 124, Flags: hunt.AmmoFlagMedium, Variants: hunt.AmmoFlagFMJ},
		{Name: "Winfield 1887 Terminus", Damage: 190, Flags: hunt.AmmoFlagShotgun},
		{Name: "Winfield 1887 Terminus Handcannon", Damage: 105, Flags: hunt.AmmoFlagShotgun},
		{Name: "Winfield 1893 Slate", Damage: 203, Flags: hunt.AmmoFlagShotgun},
		{Name: "Winfield M1873", Damage: 110, Flags: hunt.AmmoFlagCompact, Variants: hunt.AmmoFlagFMJ},
		{Name: "Winfield M1873C", Damage: 110, Flags: hunt.AmmoFlagCompact, Variants: hunt.AmmoFlagSilenced | hunt.AmmoFlagFMJ},
		{Name: "Winfield M1873C Vandal", Damage: 107, Flags: hunt.AmmoFlagCompact, Variants: hunt.AmmoFlagFMJ},
		{Name: "Winfield M1876 Centennial", Damage: 123, Flags: hunt.AmmoFlagMedium, Variants: hunt.AmmoFlagFMJ},
		{Name: "Winfield M1876 Centennial Shorty", Damage: 120, Flags: hunt.AmmoFlagMedium, Variants: hunt.AmmoFlagSilenced | hunt.AmmoFlagFMJ},
	}
}
