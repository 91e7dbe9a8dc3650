//go:build !production

package config

// DevBypassCompiled is false in binaries built with -tags production.
const DevBypassCompiled = true
