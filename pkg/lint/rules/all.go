package rules

// Import all check subpackages to register them with the global registry.
// This file triggers all init() functions in the check packages.
import (
	// Import check categories - each registers its checks via init()
	_ "github.com/javalint/javalint/pkg/lint/rules/blocks"
)
