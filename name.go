// name.go -- encode/decode table parameters into/out of filenames
//
// (c) 2024 opencoff contributors

package rtcrack

import (
	"fmt"
	"strconv"
	"strings"
)

// tableSuffix is the fixed filename extension for a generated table.
const tableSuffix = ".rt"

// EncodeTableName builds the filename a table with the given
// parameters is stored under: "<hash>.<chainNum>.<chainLen>.<index>.rt".
// hashName may contain any byte except '.'; the encoder does not
// escape, so a caller that violates that constraint will produce a
// name DecodeTableName cannot parse back.
func EncodeTableName(hashName string, chainNum, chainLen uint64, index uint) string {
	return fmt.Sprintf("%s.%d.%d.%d%s", hashName, chainNum, chainLen, index, tableSuffix)
}

// DecodeTableName parses a table's basename into its hash name, chain
// count and chain length. index is intentionally not returned: the
// Lookup Engine never needs it once a table file is open.
//
// Unlike the sscanf-with-space-injection trick of older
// implementations, this just splits the name on '.' and parses each
// numeric field directly -- no hidden temporaries to leak.
func DecodeTableName(name string) (hashName string, chainNum, chainLen uint64, err error) {
	if !strings.HasSuffix(name, tableSuffix) {
		return "", 0, 0, ErrBadTableName
	}

	trimmed := strings.TrimSuffix(name, tableSuffix)
	parts := strings.Split(trimmed, ".")
	if len(parts) != 4 {
		return "", 0, 0, ErrBadTableName
	}

	hashName = parts[0]
	if hashName == "" {
		return "", 0, 0, ErrBadTableName
	}

	chainNum, err = strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return "", 0, 0, ErrBadTableName
	}

	chainLen, err = strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return "", 0, 0, ErrBadTableName
	}

	if _, err = strconv.ParseUint(parts[3], 10, 64); err != nil {
		return "", 0, 0, ErrBadTableName
	}

	return hashName, chainNum, chainLen, nil
}
