package asvsim

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// newComponentLogger builds a go-kit logfmt logger tagged with a component
// and name, grounded on the teacher's SCLogInit (spacecraft.go).
func newComponentLogger(component, name string) kitlog.Logger {
	l := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	l = kitlog.With(l, "component", component, "name", name)
	return l
}
