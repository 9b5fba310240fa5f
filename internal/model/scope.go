package model

// Scope carries the caller identity through the request pipeline.
type Scope struct {
	SessionID string
	UserID    string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
