package config

// Environment is injected into the acceptance use case at construction instead
// of each handler reading mode flags on its own.
type Environment struct {
	Mode           Mode
	AllowDevBypass bool
}

func (e Environment) IsMock() bool {
	return e.Mode == ModeMock
}

// DevBypassEnabled reports whether the fixed development OTP is accepted.
// Production builds always return false.
func (e Environment) DevBypassEnabled() bool {
	return DevBypassCompiled && e.AllowDevBypass
}
