package mutate

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("mutate", "Node Graph Mutation Engine")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
