//go:build production

package config

const DevBypassCompiled = false
