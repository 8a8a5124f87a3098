package flags

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Config holds all command-line configuration
type Config struct {
	Port       string
	ConfigFile string
	Help       bool
}

// DefaultConfig returns default configuration values
func DefaultConfig() Config {
	return Config{
		Port:       "8080",
		ConfigFile: "config.yaml",
		Help:       false,
	}
}

// Parse parses command-line flags and returns configuration
func Parse() Config {
	config := DefaultConfig()

	var (
		port       = flag.String("port", config.Port, "Port number")
		configFile = flag.String("config", config.ConfigFile, "Path to config file")
		help       = flag.Bool("help", false, "Show this screen")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Local Connect Marketplace\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  localconnect [--port <N>] [--config <path>]\n")
		fmt.Fprintf(os.Stderr, "  localconnect --help\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fmt.Fprintf(os.Stderr, "  --help          Show this screen.\n")
		fmt.Fprintf(os.Stderr, "  --port N        Port number (1-65535).\n")
		fmt.Fprintf(os.Stderr, "  --config path   Path to YAML config file.\n")
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	if err := validatePort(*port); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	return Config{
		Port:       *port,
		ConfigFile: *configFile,
		Help:       *help,
	}
}

// validatePort validates the port number
func validatePort(port string) error {
	if port == "" {
		return fmt.Errorf("port cannot be empty")
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid port number '%s': must be a number", port)
	}

	if portNum < 1 || portNum > 65535 {
		return fmt.Errorf("port number %d is out of range: must be between 1 and 65535", portNum)
	}

	if portNum < 1024 {
		fmt.Fprintf(os.Stderr, "Warning: Port %d is a privileged port (1-1023). You may need administrator privileges.\n", portNum)
	}

	return nil
}

// Validate validates the parsed configuration
func (c Config) Validate() error {
	return validatePort(c.Port)
}
