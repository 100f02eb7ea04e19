package env

import "freecast-workers/src/lib/cerr"

type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
)

// Decode lets envconfig reject anything other than a known environment.
func (e *Environment) Decode(value string) error {
	parsed, err := Parse(value)
	if err != nil {
		return err
	}

	*e = parsed
	return nil
}

func Parse(value string) (Environment, error) {
	switch value {
	case string(Production):
		return Production, nil
	case string(Development):
		return Development, nil
	default:
		return "", cerr.Field("environment", value).Error("Invalid environment is set")
	}
}
