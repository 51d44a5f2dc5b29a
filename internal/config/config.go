// Package config holds the central configuration that the host platform supplies to this helper. It is created once
// by the caller and treated as read-only everywhere else.
package config

// Central is the configuration handed to us by the surrounding Copado function. The env tags match the environment
// variables that Copado sets on the job container.
type Central struct {
	// ConfigFilePath points to the persisted mcdev configuration file describing known credentials and their
	// business units.
	ConfigFilePath string `env:"configFilePath" envDefault:"/tmp/.mcdevrc.json"`

	// McdevVersion selects the mcdev version to install. A leading '#' marks a branch of the mcdev repository
	// instead of a published npm version.
	McdevVersion string `env:"mcdevVersion"`

	// InstallMcdevLocally controls whether mcdev is installed into the job workspace. When false, the container
	// image is expected to provide it.
	InstallMcdevLocally bool `env:"installMcdevLocally"`

	// MainBranch is the branch that deployments are promoted from.
	MainBranch string `env:"mainBranch" envDefault:"master"`

	Debug bool `env:"debug"`
}
