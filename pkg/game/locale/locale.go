// Package locale installs the embedded message catalogue used for every
// user-facing string. Strings are looked up by key with gotext.Get.
package locale

import (
	_ "embed"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// Domain is the gettext domain the catalogue is registered under
const Domain = "default"

//go:embed en.po
var enCatalogue []byte

var once sync.Once

// Init registers the English catalogue as the global gotext storage.
// It is safe to call more than once.
func Init() {
	once.Do(func() {
		po := gotext.NewPo()
		po.Parse(enCatalogue)

		l := gotext.NewLocale("", "en")
		l.AddTranslator(Domain, po)

		gotext.SetStorage(l)
	})
}
