//go:build unix

// plugin_unix.go -- tier-2 dynamic hash-function discovery via the
// standard library's plugin package.
//
// (c) 2024 opencoff contributors

package rtcrack

import (
	"fmt"
	"path/filepath"
	"plugin"
)

// maxPluginIndex bounds the hashlib<N>.so scan per spec: N in [0,10).
const maxPluginIndex = 10

// LoadPlugins scans dir for files named hashlib0.so through
// hashlib9.so, opens each one that exists, and registers every Entry
// exported under the symbol HashFuncArray whose name isn't already
// taken by a builtin or an earlier plug-in. The array is terminated by
// a zero-value Entry (empty Name). Missing files and missing symbols
// are silently skipped -- a plug-in directory is optional scaffolding,
// not a required one.
func LoadPlugins(dir string) error {
	for n := 0; n < maxPluginIndex; n++ {
		path := filepath.Join(dir, fmt.Sprintf("hashlib%d.so", n))

		p, err := plugin.Open(path)
		if err != nil {
			continue
		}

		sym, err := p.Lookup("HashFuncArray")
		if err != nil {
			continue
		}

		entries, ok := sym.(*[]Entry)
		if !ok {
			continue
		}

		for _, e := range *entries {
			if e.Name == "" {
				break
			}
			registerIfAbsent(e)
		}
	}
	return nil
}
