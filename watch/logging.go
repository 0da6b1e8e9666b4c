package watch

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("watch", "node graph watch endpoint")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
