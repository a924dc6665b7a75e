package colour

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed names.json
var namesJSON []byte

// cssNames decodes the embedded CSS named colour table once.
var cssNames = sync.OnceValue(func() MapTable {
	table := make(MapTable)
	if err := json.Unmarshal(namesJSON, &table); err != nil {
		panic("colour: invalid embedded names.json: " + err.Error())
	}
	return table
})

// CSSNames returns the CSS named colour table (e.g. "rebeccapurple").
// The returned table is shared and must not be modified.
func CSSNames() MapTable {
	return cssNames()
}
