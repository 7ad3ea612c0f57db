package randomname

import (
	"sync"

	"github.com/dmitrymomot/fantasyname/pkg/namegen"
)

var (
	wholeTree  = sync.OnceValue(func() *namegen.Generator { return namegen.MustCompile(namegen.WholeName) })
	maleTree   = sync.OnceValue(func() *namegen.Generator { return namegen.MustCompile(namegen.MaleName) })
	femaleTree = sync.OnceValue(func() *namegen.Generator { return namegen.MustCompile(namegen.FemaleName) })
)

// Whole returns a given name of either gender and a surname, e.g.
// "Elowen Frostbane".
func Whole() string { return wholeTree().Sample() }

// Male returns a male given name and a surname.
func Male() string { return maleTree().Sample() }

// Female returns a female given name and a surname.
func Female() string { return femaleTree().Sample() }

// Slug returns a whole name as a slug with a Hex6 suffix, e.g.
// "elowen-frostbane-a3f21b", for labelling resources.
func Slug() string {
	g := &Generator{tree: wholeTree(), opts: Options{Slug: true, Suffix: Hex6}.withDefaults()}
	name, err := g.Next()
	if err != nil {
		return Hex6.format(namegen.DefaultSource())
	}
	return name
}
