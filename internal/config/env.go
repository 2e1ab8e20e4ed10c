package config

import "strings"

// envKeyReplacer maps nested keys to environment names:
// search.timeout -> RIDERCTL_SEARCH_TIMEOUT.
var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_")
