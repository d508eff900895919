// Package configs holds the default application properties and message catalog.
// Both files are embedded so the binaries run without a config directory; the
// PROPERTIES_FILE_PATH and MESSAGES_FILE_PATH variables point at overrides.
package configs

import _ "embed"

//go:embed application.yml
var Application []byte

//go:embed messages.yml
var Messages []byte
